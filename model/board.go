package model

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
)

const (
	aliveRune = '#'
	deadRune  = '.'
)

// ErrInvalidDimensions is returned when a board would have no rows or no columns
var ErrInvalidDimensions = errors.New("board dimensions must be positive")

// Board holds one generation of the game. Cells are stored row-major, so the
// cell at column x and row y lives at index y*width + x.
//
// A Board is never modified after it has been handed to a caller; the next
// generation is always a separate Board.
type Board struct {
	width  int
	height int
	cells  []Cell
}

// NewBoard creates a board from a copy of the given row-major cells
func NewBoard(width, height int, cells []Cell) (*Board, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewBoard]")
	}
	if len(cells) != width*height {
		return nil, errors.Errorf("[NewBoard] got %d cells for a %dx%d board, want %d",
			len(cells), width, height, width*height)
	}

	b := newBoard(width, height)
	copy(b.cells, cells)
	return b, nil
}

// NewRandomBoard creates a board where every cell is alive with even odds
func NewRandomBoard(width, height int, rng *rand.Rand) (*Board, error) {
	if err := validateDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "[NewRandomBoard]")
	}

	b := newBoard(width, height)
	for i := range b.cells {
		if rng.Intn(2) == 1 {
			b.cells[i] = Alive
		}
	}
	return b, nil
}

// ParseBoard builds a board from rows of '#' (alive) and '.' (dead)
func ParseBoard(rows ...string) (*Board, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrInvalidDimensions, "[ParseBoard] no rows")
	}

	width := len(rows[0])
	cells := make([]Cell, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Errorf("[ParseBoard] row %d has %d cells, want %d", y, len(row), width)
		}
		for x, r := range row {
			switch r {
			case aliveRune:
				cells = append(cells, Alive)
			case deadRune:
				cells = append(cells, Dead)
			default:
				return nil, errors.Errorf("[ParseBoard] unexpected %q at column %d of row %d", r, x, y)
			}
		}
	}

	return NewBoard(width, len(rows), cells)
}

func newBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
}

func validateDimensions(width, height int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "width=%d height=%d", width, height)
	}
	return nil
}

// reset resizes the board and kills every cell
func (b *Board) reset(width, height int) {
	b.width = width
	b.height = height

	if cap(b.cells) < width*height {
		b.cells = make([]Cell, width*height)
		return
	}
	b.cells = b.cells[:width*height]
	for i := range b.cells {
		b.cells[i] = Dead
	}
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Len returns the number of cells, width * height
func (b *Board) Len() int {
	return len(b.cells)
}

// Cell returns the state at a row-major index
func (b *Board) Cell(i int) Cell {
	return b.cells[i]
}

// At returns the state at column x, row y. Positions off the board are dead.
func (b *Board) At(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Dead
	}
	return b.cells[y*b.width+x]
}

// Cells returns a copy of the row-major cell states
func (b *Board) Cells() []Cell {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return cells
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, c := range b.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Equal reports whether both boards have the same dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// String renders the board in the ParseBoard format, one line per row
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y := 0; y < b.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range b.cells[y*b.width : (y+1)*b.width] {
			sb.WriteString(c.String())
		}
	}
	return sb.String()
}
