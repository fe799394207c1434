package game

// KingPosition scans for the king and returns (-1,-1) if he is gone.
func KingPosition(b *Board) Position {
	n := int(b.Size)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.Cells[row][col].Piece == King {
				return Position{Row: row, Col: col}
			}
		}
	}
	return Position{Row: -1, Col: -1}
}

// HasSwordLeft reports whether any attacker piece remains.
func HasSwordLeft(b *Board) bool {
	n := int(b.Size)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if b.Cells[row][col].Piece == Sword {
				return true
			}
		}
	}
	return false
}

// KingEscaped reports whether the king stands on a fortress cell.
func KingEscaped(b *Board) bool {
	kp := KingPosition(b)
	if kp.Row == -1 {
		return false
	}
	return b.At(kp).Type == Fortress
}

// IsGameOver reports whether any terminal condition holds: king captured
// under the simple policy, king escaped, or no swords left. It must be
// checked right after each capture phase, before the player switch.
func IsGameOver(g *Game) bool {
	return KingCapturedSimple(&g.Board) || KingEscaped(&g.Board) || !HasSwordLeft(&g.Board)
}

// Winner resolves the winning player. Call only once IsGameOver is true;
// capture outranks the defense conditions, so a position where the king
// is taken and the swords are gone still goes to the attacker. Returns
// nil when no terminal condition holds.
func Winner(g *Game) *Player {
	if KingCapturedSimple(&g.Board) {
		return &g.Players[0]
	}
	if !HasSwordLeft(&g.Board) {
		return &g.Players[1]
	}
	if KingEscaped(&g.Board) {
		return &g.Players[1]
	}
	return nil
}

// SwitchCurrentPlayer hands the turn to the other player.
func SwitchCurrentPlayer(g *Game) {
	g.Current = 1 - g.Current
}
