package model

// Cell is the state of one board position.
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

// String returns the pattern glyph for the cell, as used by ParseBoard
func (c Cell) String() string {
	if c == Alive {
		return string(aliveRune)
	}
	return string(deadRune)
}
