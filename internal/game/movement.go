package game

// MoveReason is the outcome of validating a move. MoveOK means the move
// is legal; every other value names the first rule the move broke. The
// presentation layer decides how to word it, the validator never prints.
type MoveReason int

const (
	MoveOK MoveReason = iota
	MoveOutOfBounds
	MoveNotYourPiece
	MoveRestrictedCell
	MoveNotStraight
	MoveBlocked
)

func (r MoveReason) String() string {
	switch r {
	case MoveOK:
		return "ok"
	case MoveOutOfBounds:
		return "position out of bounds"
	case MoveNotYourPiece:
		return "no piece of yours on the start cell"
	case MoveRestrictedCell:
		return "only the king may enter a fortress or the castle"
	case MoveNotStraight:
		return "pieces move in straight lines only"
	case MoveBlocked:
		return "path or destination is blocked"
	}
	return "invalid move"
}

// ValidateMove checks mv against the full rule set for the game's current
// player. It is a pure query: no board state changes, so an interactive
// loop may call it repeatedly while re-prompting.
func ValidateMove(g *Game, mv Move) MoveReason {
	b := &g.Board
	if !b.InBounds(mv.From) || !b.InBounds(mv.To) {
		return MoveOutOfBounds
	}

	piece := b.At(mv.From).Piece
	switch g.CurrentPlayer().Role {
	case Attack:
		if piece != Sword {
			return MoveNotYourPiece
		}
	case Defense:
		if piece != Shield && piece != King {
			return MoveNotYourPiece
		}
	}

	// Fortresses and the castle are reserved: only the king may finish a
	// move there, and nobody may pass through one in transit.
	if piece != King && b.At(mv.To).Type != Normal {
		return MoveRestrictedCell
	}

	if mv.From == mv.To {
		return MoveNotStraight
	}
	if mv.From.Row != mv.To.Row && mv.From.Col != mv.To.Col {
		return MoveNotStraight
	}

	if !b.Empty(mv.To) {
		return MoveBlocked
	}
	for _, p := range between(mv.From, mv.To) {
		if !b.Empty(p) || b.At(p).Type != Normal {
			return MoveBlocked
		}
	}
	return MoveOK
}

// IsValidMove is the boolean form of ValidateMove.
func IsValidMove(g *Game, mv Move) bool {
	return ValidateMove(g, mv) == MoveOK
}

// between lists the positions strictly between two cells that share a row
// or a column.
func between(from, to Position) []Position {
	var out []Position
	if from.Row == to.Row {
		lo, hi := from.Col, to.Col
		if lo > hi {
			lo, hi = hi, lo
		}
		for col := lo + 1; col < hi; col++ {
			out = append(out, Position{Row: from.Row, Col: col})
		}
		return out
	}
	lo, hi := from.Row, to.Row
	if lo > hi {
		lo, hi = hi, lo
	}
	for row := lo + 1; row < hi; row++ {
		out = append(out, Position{Row: row, Col: from.Col})
	}
	return out
}

// ApplyMove relocates the piece at mv.From to mv.To, clearing the start
// cell. Terrain is untouched on both ends. The move must already have
// passed ValidateMove; ApplyMove does not re-check it.
func ApplyMove(g *Game, mv Move) {
	cells := g.Board.Cells
	piece := cells[mv.From.Row][mv.From.Col].Piece
	cells[mv.From.Row][mv.From.Col].Piece = None
	cells[mv.To.Row][mv.To.Col].Piece = piece
}

// LegalMoves enumerates every legal move for the current player. Used by
// the API's move probe; the engine itself never needs the full list.
func LegalMoves(g *Game) []Move {
	n := int(g.Board.Size)
	var out []Move
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			from := Position{Row: row, Col: col}
			for r := 0; r < n; r++ {
				if r == row {
					continue
				}
				mv := Move{From: from, To: Position{Row: r, Col: col}}
				if IsValidMove(g, mv) {
					out = append(out, mv)
				}
			}
			for c := 0; c < n; c++ {
				if c == col {
					continue
				}
				mv := Move{From: from, To: Position{Row: row, Col: c}}
				if IsValidMove(g, mv) {
					out = append(out, mv)
				}
			}
		}
	}
	return out
}
