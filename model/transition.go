package model

import "github.com/sheikhrachel/go-gol-torus/rules"

// NextCellState applies Conway's rules to one cell given its neighbours
func NextCellState(current Cell, neighbours Neighbours) Cell {
	if rules.ApplyConwayRules(neighbours.AliveCount(), current == Alive) {
		return Alive
	}
	return Dead
}

// NextBoardState returns a freshly allocated board holding the next generation
func NextBoardState(b *Board) *Board {
	return b.NextGeneration(nil)
}

// NextGeneration calculates the next generation into a new board, taken from
// the pool when one is given. Every cell is computed from b alone and b is
// never written, so the result must not share storage with it.
func (b *Board) NextGeneration(pool *BoardPool) *Board {
	var next *Board
	if pool != nil {
		next = pool.Get(b.width, b.height)
	} else {
		next = newBoard(b.width, b.height)
	}

	for i, current := range b.cells {
		next.cells[i] = NextCellState(current, b.Neighbours(i))
	}

	return next
}
