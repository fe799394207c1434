package game

import (
	"errors"
	"fmt"
)

// Snapshot is the complete resumable state of a game: board size, the
// occupant of every cell, and whose turn it is. Terrain is not stored —
// it derives from the size via the corner/center rule.
type Snapshot struct {
	Size    BoardSize     `json:"size"`
	Cells   [][]PieceType `json:"cells"`
	Turn    PlayerRole    `json:"turn"`
	Players [2]string     `json:"players"` // names, attacker first
}

var ErrCorruptSnapshot = errors.New("corrupt snapshot")

// TakeSnapshot captures the game state for persistence or rendering.
func TakeSnapshot(g *Game) Snapshot {
	n := int(g.Board.Size)
	cells := make([][]PieceType, n)
	for row := 0; row < n; row++ {
		cells[row] = make([]PieceType, n)
		for col := 0; col < n; col++ {
			cells[row][col] = g.Board.Cells[row][col].Piece
		}
	}
	return Snapshot{
		Size:    g.Board.Size,
		Cells:   cells,
		Turn:    g.CurrentPlayer().Role,
		Players: [2]string{g.Players[0].Name, g.Players[1].Name},
	}
}

// RestoreSnapshot rebuilds a game from externally supplied state. The
// snapshot is rejected as corrupt when the size is not playable, the
// occupant grid does not match the size, or the board does not carry
// exactly one king. Every loader (sqlite save slots, HTTP import) goes
// through this single boundary check.
func RestoreSnapshot(s Snapshot) (*Game, error) {
	if !s.Size.Valid() {
		return nil, fmt.Errorf("%w: bad board size %d", ErrCorruptSnapshot, s.Size)
	}
	n := int(s.Size)
	if len(s.Cells) != n {
		return nil, fmt.Errorf("%w: occupant grid has %d rows, want %d", ErrCorruptSnapshot, len(s.Cells), n)
	}
	kings := 0
	for row, cols := range s.Cells {
		if len(cols) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrCorruptSnapshot, row, len(cols), n)
		}
		for _, p := range cols {
			if p == King {
				kings++
			}
		}
	}
	if kings != 1 {
		return nil, fmt.Errorf("%w: found %d kings, want exactly 1", ErrCorruptSnapshot, kings)
	}
	if s.Turn != Attack && s.Turn != Defense {
		return nil, fmt.Errorf("%w: unknown turn role %d", ErrCorruptSnapshot, s.Turn)
	}

	g, err := NewGame(s.Size, s.Players[0], s.Players[1])
	if err != nil {
		return nil, err
	}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			g.Board.Cells[row][col].Piece = s.Cells[row][col]
		}
	}
	if s.Turn == Defense {
		g.Current = 1
	}
	return g, nil
}
