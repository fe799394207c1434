package room

import (
	"time"

	"github.com/zecross-dev/hnefatafl/internal/game"
)

const (
	StatusWaiting  = "waiting"
	StatusPlaying  = "playing"
	StatusFinished = "finished"
)

// Room is one match: a rules-engine Game plus the seat identities the
// service hands out. Seat 0 always attacks, seat 1 defends.
type Room struct {
	ID        string       `json:"id"`
	Code      string       `json:"code"`
	Game      *game.Game   `json:"game"`
	PlayerIDs [2]string    `json:"playerIds"`
	Status    string       `json:"status"`
	Winner    *game.Player `json:"winner,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

// seat returns the index of playerID in the room, or -1.
func (r *Room) seat(playerID string) int {
	for i, id := range r.PlayerIDs {
		if id != "" && id == playerID {
			return i
		}
	}
	return -1
}

// Store keeps live matches.
type Store interface {
	GetRoom(code string) (*Room, bool)
	SaveRoom(r *Room)
}

// SaveInfo describes one named save slot.
type SaveInfo struct {
	Name    string    `json:"name"`
	SavedAt time.Time `json:"savedAt"`
}

// Saves is the persistence collaborator for named game snapshots.
type Saves interface {
	Put(name string, snap game.Snapshot) error
	Get(name string) (game.Snapshot, error)
	Delete(name string) error
	List() ([]SaveInfo, error)
}
