package game

// cardinal step offsets, shared by the capture scan and both
// king-capture policies.
var directions = [4]Position{{Row: 0, Col: -1}, {Row: 0, Col: 1}, {Row: -1, Col: 0}, {Row: 1, Col: 0}}

// ApplyCaptures removes enemy pieces flanked by the move that just landed
// on mv.To. Each of the four directions is judged independently, so one
// move can capture up to four pieces. Must run right after ApplyMove,
// while the mover is still the current player.
func ApplyCaptures(g *Game, mv Move) {
	b := &g.Board
	prey := Shield
	if g.CurrentPlayer().Role == Defense {
		prey = Sword
	}
	for _, d := range directions {
		adjacent := Position{Row: mv.To.Row + d.Row, Col: mv.To.Col + d.Col}
		if !b.InBounds(adjacent) {
			continue
		}
		if b.At(adjacent).Piece != prey {
			continue
		}
		beyond := Position{Row: mv.To.Row + 2*d.Row, Col: mv.To.Col + 2*d.Col}
		if hostileFlank(b, prey, beyond) {
			b.Cells[adjacent.Row][adjacent.Col].Piece = None
		}
	}
}

// hostileFlank reports whether the cell past a candidate capture pins it:
// the board edge, an enemy piece, a fortress, or an empty castle. An
// occupied castle is not hostile, and a piece of the captured side's own
// team never confirms a capture.
func hostileFlank(b *Board, prey PieceType, beyond Position) bool {
	if !b.InBounds(beyond) {
		return true
	}
	cell := b.At(beyond)
	switch prey {
	case Sword:
		if cell.Piece == Shield || cell.Piece == King {
			return true
		}
	case Shield:
		if cell.Piece == Sword {
			return true
		}
	}
	if cell.Type == Fortress {
		return true
	}
	return cell.Type == Castle && cell.Piece == None
}

// KingCapturedSimple applies the four-neighbor rule: the king is captured
// when every orthogonal neighbor is hostile (off-board, a sword, the
// castle, or a fortress). A single empty normal cell or shield next to
// the king keeps him alive under this policy.
func KingCapturedSimple(b *Board) bool {
	kp := KingPosition(b)
	if kp.Row == -1 {
		return false
	}
	for _, d := range directions {
		n := Position{Row: kp.Row + d.Row, Col: kp.Col + d.Col}
		if !hostileToKing(b, n) {
			return false
		}
	}
	return true
}

func hostileToKing(b *Board, p Position) bool {
	if !b.InBounds(p) {
		return true
	}
	cell := b.At(p)
	return cell.Piece == Sword || cell.Type == Castle || cell.Type == Fortress
}

// KingCapturedRecursive extends the simple rule to a shield wall: the
// king plus every shield orthogonally connected to him count as one
// region, captured only when the whole region's boundary is hostile. Any
// empty normal cell reachable on the frontier is treated as an escape —
// even one that is itself walled in further out. That matches the
// historical behavior of this rule set and is pinned by a regression
// test; do not "fix" it here.
func KingCapturedRecursive(b *Board) bool {
	kp := KingPosition(b)
	if kp.Row == -1 {
		return false
	}
	n := int(b.Size)
	visited := make([][]bool, n)
	for i := range visited {
		visited[i] = make([]bool, n)
	}
	return regionEnclosed(b, kp, visited)
}

// regionEnclosed walks the connected king/shield region from p and
// reports whether no frontier cell offers an escape. The visited matrix
// lives only for one KingCapturedRecursive call.
func regionEnclosed(b *Board, p Position, visited [][]bool) bool {
	visited[p.Row][p.Col] = true
	for _, d := range directions {
		next := Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if !b.InBounds(next) {
			continue // the edge pins, keep looking
		}
		if visited[next.Row][next.Col] {
			continue
		}
		cell := b.At(next)
		switch {
		case cell.Piece == Shield || cell.Piece == King:
			if !regionEnclosed(b, next, visited) {
				return false
			}
		case cell.Piece == Sword, cell.Type == Fortress, cell.Type == Castle:
			// hostile boundary cell
		default:
			// empty normal cell: escape route
			return false
		}
	}
	return true
}
