package game

import "testing"

// emptyBoard allocates and initializes a board, then strips every piece
// so scenarios can place exactly what they need.
func emptyBoard(t *testing.T, size BoardSize) *Board {
	t.Helper()
	b := &Board{Size: size}
	if err := b.Allocate(); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	b.Init()
	clearPieces(b)
	return b
}

func clearPieces(b *Board) {
	n := int(b.Size)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			b.Cells[row][col].Piece = None
		}
	}
}

func place(b *Board, row, col int, p PieceType) {
	b.Cells[row][col].Piece = p
}

func TestAllocate(t *testing.T) {
	b := &Board{Size: 9}
	if err := b.Allocate(); err == nil {
		t.Fatal("expected error for size 9")
	}

	b = &Board{Size: Little}
	if err := b.Allocate(); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	if err := b.Allocate(); err == nil {
		t.Fatal("expected error on double allocation")
	}

	b.Release()
	b.Release() // must stay a safe no-op
	if err := b.Allocate(); err != nil {
		t.Fatalf("Allocate after Release: %v", err)
	}
}

func TestInitCounts(t *testing.T) {
	for _, size := range []BoardSize{Little, Big} {
		b := &Board{Size: size}
		if err := b.Allocate(); err != nil {
			t.Fatalf("Allocate: %v", err)
		}
		b.Init()
		checkCanonicalLayout(t, b)
	}
}

func TestInitIdempotent(t *testing.T) {
	b := &Board{Size: Little}
	if err := b.Allocate(); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	b.Init()
	// scramble the position, then re-init
	b.Cells[0][3].Piece = None
	b.Cells[2][2].Piece = Sword
	b.Cells[5][5].Piece = None
	b.Init()
	checkCanonicalLayout(t, b)
}

func checkCanonicalLayout(t *testing.T, b *Board) {
	t.Helper()
	n := int(b.Size)
	pieces := map[PieceType]int{}
	terrain := map[CellType]int{}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			pieces[b.Cells[row][col].Piece]++
			terrain[b.Cells[row][col].Type]++
		}
	}
	if pieces[King] != 1 || pieces[Shield] != 12 || pieces[Sword] != 24 {
		t.Errorf("size %d: got %d kings, %d shields, %d swords; want 1, 12, 24",
			n, pieces[King], pieces[Shield], pieces[Sword])
	}
	if terrain[Fortress] != 4 || terrain[Castle] != 1 {
		t.Errorf("size %d: got %d fortresses, %d castles; want 4, 1",
			n, terrain[Fortress], terrain[Castle])
	}
	if got := pieces[None]; got != n*n-37 {
		t.Errorf("size %d: got %d empty cells, want %d", n, got, n*n-37)
	}
	if b.Cells[n/2][n/2].Piece != King {
		t.Errorf("size %d: king not at center", n)
	}
}

func TestInBounds(t *testing.T) {
	b := &Board{Size: Little}
	if err := b.Allocate(); err != nil {
		t.Fatalf("Allocate: %v", err)
	}
	cases := []struct {
		pos  Position
		want bool
	}{
		{Position{0, 0}, true},
		{Position{10, 10}, true},
		{Position{11, 0}, false},
		{Position{0, 11}, false},
		{Position{-1, 5}, false},
		{Position{5, -1}, false},
	}
	for _, tc := range cases {
		if got := b.InBounds(tc.pos); got != tc.want {
			t.Errorf("InBounds(%v) = %v, want %v", tc.pos, got, tc.want)
		}
	}
}

func TestEmpty(t *testing.T) {
	b := emptyBoard(t, Little)
	if !b.Empty(Position{5, 5}) {
		t.Error("cleared castle cell should read empty")
	}
	place(b, 5, 5, King)
	if b.Empty(Position{5, 5}) {
		t.Error("occupied cell should not read empty")
	}
}
