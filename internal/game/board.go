package game

import "errors"

var (
	ErrInvalidSize      = errors.New("board size must be 11 or 13")
	ErrAlreadyAllocated = errors.New("board grid already allocated")
)

// Allocate creates the cell grid for the board's size. It fails if the
// size is not a playable one or if a grid already exists, so a caller
// cannot silently leak a live game behind a re-allocation.
func (b *Board) Allocate() error {
	if !b.Size.Valid() {
		return ErrInvalidSize
	}
	if b.Cells != nil {
		return ErrAlreadyAllocated
	}
	n := int(b.Size)
	cells := make([][]Cell, n)
	for i := range cells {
		cells[i] = make([]Cell, n)
	}
	b.Cells = cells
	return nil
}

// Release drops the grid. Safe to call on a never-allocated or
// already-released board.
func (b *Board) Release() {
	b.Cells = nil
}

// Init sets up the canonical opening position: fortresses in the four
// corners, the castle with the king at the center, 12 shields around the
// king and 24 swords clustered at the edge midpoints. Calling it again
// discards whatever was on the board and rebuilds the same layout.
func (b *Board) Init() {
	n := int(b.Size)
	c := n / 2

	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			cell := &b.Cells[row][col]
			cell.Piece = None
			switch {
			case row == c && col == c:
				cell.Type = Castle
			case (row == 0 || row == n-1) && (col == 0 || col == n-1):
				cell.Type = Fortress
			default:
				cell.Type = Normal
			}
		}
	}

	b.Cells[c][c].Piece = King

	// Shields form a cross around the king: arms of length 2 on the
	// little board plus the four diagonal cells, arms of length 3 on the
	// big board. Both total 12.
	reach := 2
	if b.Size == Big {
		reach = 3
	}
	for d := 1; d <= reach; d++ {
		b.Cells[c][c-d].Piece = Shield
		b.Cells[c][c+d].Piece = Shield
		b.Cells[c-d][c].Piece = Shield
		b.Cells[c+d][c].Piece = Shield
	}
	if b.Size == Little {
		for _, dr := range [2]int{-1, 1} {
			for _, dc := range [2]int{-1, 1} {
				b.Cells[c+dr][c+dc].Piece = Shield
			}
		}
	}

	// Swords: a run of five centered on each edge midpoint, plus one more
	// per edge pushed in toward the center. Both sizes total 24.
	for d := -2; d <= 2; d++ {
		b.Cells[0][c+d].Piece = Sword
		b.Cells[n-1][c+d].Piece = Sword
		b.Cells[c+d][0].Piece = Sword
		b.Cells[c+d][n-1].Piece = Sword
	}
	off := 4
	if b.Size == Big {
		off = 5
	}
	b.Cells[c][c-off].Piece = Sword
	b.Cells[c][c+off].Piece = Sword
	b.Cells[c-off][c].Piece = Sword
	b.Cells[c+off][c].Piece = Sword
}

// InBounds reports whether p addresses a cell of the board.
func (b *Board) InBounds(p Position) bool {
	n := int(b.Size)
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

// At returns the cell at p. p must be in bounds.
func (b *Board) At(p Position) Cell {
	return b.Cells[p.Row][p.Col]
}

// Empty reports whether the cell at p holds no piece. Terrain does not
// matter here.
func (b *Board) Empty(p Position) bool {
	return b.Cells[p.Row][p.Col].Piece == None
}
