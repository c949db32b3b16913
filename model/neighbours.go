package model

// Neighbours holds the states around a cell in the order
// top left, top, top right, left, right, bottom left, bottom, bottom right.
type Neighbours [8]Cell

// AliveCount returns how many of the neighbours are alive
func (n Neighbours) AliveCount() (count int) {
	for _, c := range n {
		if c == Alive {
			count++
		}
	}
	return
}

// The board is a torus: every index in [0, width*height) maps to another
// index in that range, wrapping across the opposite edge.

// Top returns the index of the cell above i, wrapping to the bottom row
func (b *Board) Top(i int) int {
	if i < b.width {
		return i + b.width*(b.height-1)
	}
	return i - b.width
}

// Bottom returns the index of the cell below i, wrapping to the top row
func (b *Board) Bottom(i int) int {
	if i+b.width >= b.width*b.height {
		return i - b.width*(b.height-1)
	}
	return i + b.width
}

// Left returns the index of the cell left of i, wrapping to the last column
func (b *Board) Left(i int) int {
	// column 0; on a one column board every cell is its own left neighbour
	if i%b.width == 0 {
		return i + b.width - 1
	}
	return i - 1
}

// Right returns the index of the cell right of i, wrapping to the first column
func (b *Board) Right(i int) int {
	if i+1 == b.width*b.height || (i+1)%b.width == 0 {
		return i + 1 - b.width
	}
	return i + 1
}

func (b *Board) TopLeft(i int) int {
	return b.Left(b.Top(i))
}

func (b *Board) TopRight(i int) int {
	return b.Right(b.Top(i))
}

func (b *Board) BottomLeft(i int) int {
	return b.Bottom(b.Left(i))
}

func (b *Board) BottomRight(i int) int {
	return b.Bottom(b.Right(i))
}

// NeighbourIndices returns the indices of the eight cells around i, in Neighbours order
func (b *Board) NeighbourIndices(i int) [8]int {
	return [8]int{
		b.TopLeft(i),
		b.Top(i),
		b.TopRight(i),
		b.Left(i),
		b.Right(i),
		b.BottomLeft(i),
		b.Bottom(i),
		b.BottomRight(i),
	}
}

// Neighbours returns the states of the eight cells around i
func (b *Board) Neighbours(i int) (n Neighbours) {
	for k, idx := range b.NeighbourIndices(i) {
		n[k] = b.cells[idx]
	}
	return
}
