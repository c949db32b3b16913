package model

import "testing"

func TestTop(t *testing.T) {
	b := mustParse(t, ".", "#", "#")
	for i, want := range []int{2, 0, 1} {
		if got := b.Top(i); got != want {
			t.Errorf("Top(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestBottom(t *testing.T) {
	b := mustParse(t, "..", "#.", "#.")
	for i, want := range map[int]int{0: 2, 2: 4, 4: 0, 5: 1} {
		if got := b.Bottom(i); got != want {
			t.Errorf("Bottom(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestLeft(t *testing.T) {
	b := mustParse(t, ".##")
	for i, want := range []int{2, 0, 1} {
		if got := b.Left(i); got != want {
			t.Errorf("Left(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestRight(t *testing.T) {
	b := mustParse(t, ".##")
	for i, want := range []int{1, 2, 0} {
		if got := b.Right(i); got != want {
			t.Errorf("Right(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestSingleColumnAndRowWrapOntoThemselves(t *testing.T) {
	column := mustParse(t, "#", ".", "#")
	for i := 0; i < column.Len(); i++ {
		if column.Left(i) != i || column.Right(i) != i {
			t.Errorf("one column board: Left(%d)=%d Right(%d)=%d, want %d", i, column.Left(i), i, column.Right(i), i)
		}
	}

	row := mustParse(t, "#.#")
	for i := 0; i < row.Len(); i++ {
		if row.Top(i) != i || row.Bottom(i) != i {
			t.Errorf("one row board: Top(%d)=%d Bottom(%d)=%d, want %d", i, row.Top(i), i, row.Bottom(i), i)
		}
	}
}

func TestNeighboursWrapAroundEdges(t *testing.T) {
	b := mustParse(t,
		"#.#.",
		".#.#",
		"#.#.",
		".#.#",
	)

	var (
		a = Alive
		d = Dead
	)
	tests := []struct {
		index int
		want  Neighbours
	}{
		{0, Neighbours{a, d, a, d, d, a, d, a}},
		{4, Neighbours{d, a, d, a, a, d, a, d}},
		{8, Neighbours{a, d, a, d, d, a, d, a}},
		{12, Neighbours{d, a, d, a, a, d, a, d}},
	}

	for _, tt := range tests {
		if got := b.Neighbours(tt.index); got != tt.want {
			t.Errorf("Neighbours(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
}

func TestNeighboursOfBlock(t *testing.T) {
	b := mustParse(t,
		"....",
		".##.",
		".##.",
		"....",
	)

	var (
		a = Alive
		d = Dead
	)
	tests := []struct {
		name  string
		index int
		want  Neighbours
	}{
		{"top left of block", 5, Neighbours{d, d, d, d, a, d, a, a}},
		{"top right of block", 6, Neighbours{d, d, d, a, d, a, a, d}},
		{"bottom left of block", 9, Neighbours{d, a, a, d, a, d, d, d}},
		{"bottom right of block", 10, Neighbours{a, a, d, a, d, d, d, d}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Neighbours(tt.index); got != tt.want {
				t.Errorf("Neighbours(%d) = %v, want %v", tt.index, got, tt.want)
			}
		})
	}
}

func TestCornerWrap(t *testing.T) {
	b, err := NewBoard(5, 3, make([]Cell, 15))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}

	if got := b.Left(0); got != 4 {
		t.Errorf("Left(0) = %d, want last cell of first row 4", got)
	}
	if got := b.Top(0); got != 10 {
		t.Errorf("Top(0) = %d, want first cell of last row 10", got)
	}
	if got := b.TopLeft(0); got != 14 {
		t.Errorf("TopLeft(0) = %d, want last cell 14", got)
	}
	if got := b.BottomRight(14); got != 0 {
		t.Errorf("BottomRight(14) = %d, want 0", got)
	}
}

// Every neighbour index must agree with plain modular wrapping and stay on the board.
func TestNeighbourIndicesProperties(t *testing.T) {
	offsets := [8][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}

	for width := 1; width <= 6; width++ {
		for height := 1; height <= 6; height++ {
			b, err := NewBoard(width, height, make([]Cell, width*height))
			if err != nil {
				t.Fatalf("NewBoard(%d, %d): %v", width, height, err)
			}

			for i := 0; i < b.Len(); i++ {
				x, y := i%width, i/width
				for k, idx := range b.NeighbourIndices(i) {
					if idx < 0 || idx >= b.Len() {
						t.Fatalf("%dx%d: neighbour %d of %d is %d, off the board", width, height, k, i, idx)
					}
					nx := (x + offsets[k][0] + width) % width
					ny := (y + offsets[k][1] + height) % height
					if want := ny*width + nx; idx != want {
						t.Errorf("%dx%d: neighbour %d of %d is %d, want %d", width, height, k, i, idx, want)
					}
				}

				if b.Right(b.Left(i)) != i || b.Left(b.Right(i)) != i {
					t.Errorf("%dx%d: left and right do not invert at %d", width, height, i)
				}
				if b.Top(b.Bottom(i)) != i || b.Bottom(b.Top(i)) != i {
					t.Errorf("%dx%d: top and bottom do not invert at %d", width, height, i)
				}
			}
		}
	}
}

func TestAliveCount(t *testing.T) {
	n := Neighbours{Alive, Dead, Alive, Dead, Dead, Dead, Alive, Dead}
	if got := n.AliveCount(); got != 3 {
		t.Errorf("AliveCount() = %d, want 3", got)
	}
}
