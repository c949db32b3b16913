package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

	neighbors > 3  -> dead (overpopulation)
	neighbors < 2  -> dead (underpopulation)
	neighbors == 3 -> alive (survival or birth)
	neighbors == 2 -> unchanged
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors > 3 {
		return false
	}
	if neighbors < 2 {
		return false
	}
	// unreachable after neighbors > 3; four neighbors always dies
	if neighbors == 4 {
		return false
	}
	if neighbors == 3 {
		return true
	}
	return alive
}
