package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/zecross-dev/hnefatafl/internal/game"
	"github.com/zecross-dev/hnefatafl/internal/room"
)

// At most five named save slots exist; saving under an existing name
// overwrites that slot.
const maxSaveSlots = 5

var (
	ErrSaveNotFound  = errors.New("save slot not found")
	ErrSaveSlotsFull = errors.New("all save slots are in use")
)

// SaveStore persists game snapshots in sqlite, one row per named slot.
type SaveStore struct {
	db *sql.DB
}

func OpenSaveStore(path string) (*SaveStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open save database: %w", err)
	}
	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS saves (
		name     TEXT PRIMARY KEY,
		state    TEXT NOT NULL,
		saved_at TIMESTAMP NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create saves table: %w", err)
	}
	return &SaveStore{db: db}, nil
}

func (s *SaveStore) Close() error {
	return s.db.Close()
}

func (s *SaveStore) Put(name string, snap game.Snapshot) error {
	var exists bool
	err := s.db.QueryRow(`SELECT COUNT(*) > 0 FROM saves WHERE name = ?`, name).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		var n int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM saves`).Scan(&n); err != nil {
			return err
		}
		if n >= maxSaveSlots {
			return ErrSaveSlotsFull
		}
	}
	state, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO saves (name, state, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		name, string(state), time.Now().UTC())
	return err
}

func (s *SaveStore) Get(name string) (game.Snapshot, error) {
	var state string
	err := s.db.QueryRow(`SELECT state FROM saves WHERE name = ?`, name).Scan(&state)
	if errors.Is(err, sql.ErrNoRows) {
		return game.Snapshot{}, ErrSaveNotFound
	}
	if err != nil {
		return game.Snapshot{}, err
	}
	var snap game.Snapshot
	if err := json.Unmarshal([]byte(state), &snap); err != nil {
		return game.Snapshot{}, fmt.Errorf("%w: %v", game.ErrCorruptSnapshot, err)
	}
	return snap, nil
}

func (s *SaveStore) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM saves WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSaveNotFound
	}
	return nil
}

func (s *SaveStore) List() ([]room.SaveInfo, error) {
	rows, err := s.db.Query(`SELECT name, saved_at FROM saves ORDER BY saved_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []room.SaveInfo
	for rows.Next() {
		var info room.SaveInfo
		if err := rows.Scan(&info.Name, &info.SavedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}
