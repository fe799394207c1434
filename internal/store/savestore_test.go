package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/zecross-dev/hnefatafl/internal/game"
)

func openTestStore(t *testing.T) *SaveStore {
	t.Helper()
	s, err := OpenSaveStore(filepath.Join(t.TempDir(), "saves.db"))
	if err != nil {
		t.Fatalf("OpenSaveStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testSnapshot(t *testing.T) game.Snapshot {
	t.Helper()
	g, err := game.NewGame(game.Little, "a", "b")
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return game.TakeSnapshot(g)
}

func TestSaveStoreRoundTrip(t *testing.T) {
	s := openTestStore(t)
	snap := testSnapshot(t)

	if err := s.Put("slot1", snap); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, err := s.Get("slot1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Size != snap.Size || got.Turn != snap.Turn || got.Players != snap.Players {
		t.Errorf("restored header = %+v, want %+v", got, snap)
	}
	if len(got.Cells) != len(snap.Cells) {
		t.Fatalf("grid rows = %d, want %d", len(got.Cells), len(snap.Cells))
	}
	for i := range snap.Cells {
		for j := range snap.Cells[i] {
			if got.Cells[i][j] != snap.Cells[i][j] {
				t.Fatalf("cell (%d,%d) = %v, want %v", i, j, got.Cells[i][j], snap.Cells[i][j])
			}
		}
	}

	if _, err := s.Get("missing"); !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("Get missing err = %v, want ErrSaveNotFound", err)
	}
}

func TestSaveStoreSlotLimit(t *testing.T) {
	s := openTestStore(t)
	snap := testSnapshot(t)

	for i := 0; i < maxSaveSlots; i++ {
		if err := s.Put(fmt.Sprintf("slot%d", i), snap); err != nil {
			t.Fatalf("Put slot%d: %v", i, err)
		}
	}
	if err := s.Put("onemore", snap); !errors.Is(err, ErrSaveSlotsFull) {
		t.Errorf("sixth slot err = %v, want ErrSaveSlotsFull", err)
	}
	// overwriting an existing slot is always allowed
	if err := s.Put("slot0", snap); err != nil {
		t.Errorf("overwrite at capacity: %v", err)
	}
	// deleting frees a slot for a new name
	if err := s.Delete("slot0"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Put("onemore", snap); err != nil {
		t.Errorf("Put after delete: %v", err)
	}
}

func TestSaveStoreDeleteAndList(t *testing.T) {
	s := openTestStore(t)
	snap := testSnapshot(t)

	if err := s.Delete("missing"); !errors.Is(err, ErrSaveNotFound) {
		t.Errorf("Delete missing err = %v, want ErrSaveNotFound", err)
	}

	if err := s.Put("alpha", snap); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put("beta", snap); err != nil {
		t.Fatalf("Put: %v", err)
	}
	infos, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(infos) != 2 {
		t.Fatalf("List returned %d slots, want 2", len(infos))
	}
	names := map[string]bool{}
	for _, info := range infos {
		names[info.Name] = true
		if info.SavedAt.IsZero() {
			t.Errorf("slot %q has a zero timestamp", info.Name)
		}
	}
	if !names["alpha"] || !names["beta"] {
		t.Errorf("List names = %v", names)
	}

	if err := s.Delete("alpha"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if infos, _ := s.List(); len(infos) != 1 || infos[0].Name != "beta" {
		t.Errorf("after delete, List = %+v", infos)
	}
}
