package game

import "testing"

func TestKingPosition(t *testing.T) {
	b := emptyBoard(t, Little)
	if got := KingPosition(b); got.Row != -1 || got.Col != -1 {
		t.Errorf("KingPosition on empty board = %v, want (-1,-1)", got)
	}
	place(b, 7, 3, King)
	if got := KingPosition(b); got != (Position{7, 3}) {
		t.Errorf("KingPosition = %v, want (7,3)", got)
	}
}

func TestKingEscaped(t *testing.T) {
	b := emptyBoard(t, Little)
	place(b, 4, 4, King)
	if KingEscaped(b) {
		t.Error("king on normal terrain has not escaped")
	}
	clearPieces(b)
	place(b, 0, 0, King)
	if !KingEscaped(b) {
		t.Error("king on a fortress has escaped")
	}
}

func TestGameOverAndWinner(t *testing.T) {
	t.Run("opening position is not terminal", func(t *testing.T) {
		g, err := NewGame(Little, "", "")
		if err != nil {
			t.Fatalf("NewGame: %v", err)
		}
		if IsGameOver(g) {
			t.Error("fresh game reports game over")
		}
	})

	t.Run("king captured wins for attack", func(t *testing.T) {
		g := scenarioGame(t, Attack)
		place(&g.Board, 2, 2, King)
		place(&g.Board, 1, 2, Sword)
		place(&g.Board, 3, 2, Sword)
		place(&g.Board, 2, 1, Sword)
		place(&g.Board, 2, 3, Sword)

		if !IsGameOver(g) {
			t.Fatal("captured king should end the game")
		}
		if w := Winner(g); w == nil || w.Role != Attack {
			t.Errorf("winner = %+v, want the attacker", w)
		}
	})

	t.Run("king escape wins for defense", func(t *testing.T) {
		g := scenarioGame(t, Defense)
		place(&g.Board, 0, 0, King)
		place(&g.Board, 9, 9, Sword)

		if !IsGameOver(g) {
			t.Fatal("escaped king should end the game")
		}
		if w := Winner(g); w == nil || w.Role != Defense {
			t.Errorf("winner = %+v, want the defense", w)
		}
	})

	t.Run("no swords left wins for defense", func(t *testing.T) {
		g := scenarioGame(t, Attack)
		place(&g.Board, 4, 4, King)

		if !IsGameOver(g) {
			t.Fatal("sword-free board should end the game")
		}
		if w := Winner(g); w == nil || w.Role != Defense {
			t.Errorf("winner = %+v, want the defense", w)
		}
	})

	t.Run("capture outranks sword elimination", func(t *testing.T) {
		// No swords anywhere, but the king is walled in by hostile
		// terrain, so both conditions hold at once. Capture must win.
		g := scenarioGame(t, Attack)
		place(&g.Board, 2, 2, King)
		for _, p := range [][2]int{{1, 2}, {3, 2}, {2, 1}, {2, 3}} {
			g.Board.Cells[p[0]][p[1]].Type = Fortress
		}

		if !KingCapturedSimple(&g.Board) {
			t.Fatal("king ringed by fortresses should read captured")
		}
		if HasSwordLeft(&g.Board) {
			t.Fatal("scenario requires an empty attacker side")
		}
		if w := Winner(g); w == nil || w.Role != Attack {
			t.Errorf("winner = %+v, want the attacker", w)
		}
	})
}

func TestSwitchCurrentPlayer(t *testing.T) {
	g, err := NewGame(Little, "", "")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	if g.CurrentPlayer().Role != Attack {
		t.Fatal("attacker moves first")
	}
	SwitchCurrentPlayer(g)
	if g.CurrentPlayer().Role != Defense {
		t.Error("switch should hand the turn to the defense")
	}
	SwitchCurrentPlayer(g)
	if g.CurrentPlayer().Role != Attack {
		t.Error("second switch should hand the turn back")
	}
	if g.Players[0].Role != Attack || g.Players[1].Role != Defense {
		t.Error("switching turns must not touch roles")
	}
}
