package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleReplay() Replay {
	return Replay{
		Player:         "alice",
		Seed:           42,
		Width:          10,
		Height:         20,
		PointsPerLine:  10,
		DetectGameOver: true,
		Score:          30,
		Lines:          3,
		Pieces:         12,
		Actions: []core.Action{
			core.ActionTick,
			core.ActionMoveLeft,
			core.ActionRotate,
			core.ActionHardDrop,
			core.ActionPause,
			core.ActionPause,
			core.ActionReset,
		},
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	id, err := store.SaveReplay(sampleReplay())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	store.Close()

	// Migrations must be idempotent
	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.Replay(id); err != nil {
		t.Errorf("Replay() after reopen failed: %v", err)
	}
}

func TestStoreSaveAndLoadReplay(t *testing.T) {
	store := openTestStore(t)
	want := sampleReplay()

	id, err := store.SaveReplay(want)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id == "" {
		t.Fatal("SaveReplay() should assign an ID")
	}

	got, err := store.Replay(id)
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}

	if got.ID != id || got.Player != want.Player || got.Seed != want.Seed {
		t.Errorf("header mismatch: got %+v", got)
	}
	if got.Width != 10 || got.Height != 20 || got.PointsPerLine != 10 || !got.DetectGameOver {
		t.Errorf("rules mismatch: got %+v", got)
	}
	if got.Score != 30 || got.Lines != 3 || got.Pieces != 12 {
		t.Errorf("outcome mismatch: got %+v", got)
	}
	if len(got.Actions) != len(want.Actions) {
		t.Fatalf("Expected %d actions, got %d", len(want.Actions), len(got.Actions))
	}
	for i := range want.Actions {
		if got.Actions[i] != want.Actions[i] {
			t.Errorf("action %d = %v, expected %v", i, got.Actions[i], want.Actions[i])
		}
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveReplayKeepsExplicitID(t *testing.T) {
	store := openTestStore(t)
	r := sampleReplay()
	r.ID = "fixed-id"

	id, err := store.SaveReplay(r)
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}
	if id != "fixed-id" {
		t.Errorf("SaveReplay() id = %q, expected fixed-id", id)
	}

	// Duplicate IDs are rejected and leave no partial rows
	if _, err := store.SaveReplay(r); err == nil {
		t.Error("SaveReplay() with duplicate ID should fail")
	}
	got, err := store.Replay("fixed-id")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(got.Actions) != len(r.Actions) {
		t.Errorf("Expected %d actions after failed duplicate, got %d", len(r.Actions), len(got.Actions))
	}
}

func TestStoreReplayNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Replay("missing")
	if !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay() error = %v, expected ErrReplayNotFound", err)
	}
}

func TestStoreRecentReplays(t *testing.T) {
	store := openTestStore(t)

	var ids []string
	for i := range 5 {
		r := sampleReplay()
		r.Score = i * 10
		id, err := store.SaveReplay(r)
		if err != nil {
			t.Fatalf("SaveReplay() failed: %v", err)
		}
		ids = append(ids, id)
	}

	recent, err := store.RecentReplays(3)
	if err != nil {
		t.Fatalf("RecentReplays() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("Expected 3 replays with limit, got %d", len(recent))
	}

	// Same-second inserts fall back to insertion order, newest first
	if recent[0].ID != ids[4] || recent[0].Score != 40 {
		t.Errorf("newest replay = %+v, expected id %s score 40", recent[0], ids[4])
	}
	if recent[0].ActionCount != len(sampleReplay().Actions) {
		t.Errorf("ActionCount = %d, expected %d", recent[0].ActionCount, len(sampleReplay().Actions))
	}
}

func TestStoreDeleteReplay(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveReplay(sampleReplay())
	if err != nil {
		t.Fatalf("SaveReplay() failed: %v", err)
	}

	if err := store.DeleteReplay(id); err != nil {
		t.Fatalf("DeleteReplay() failed: %v", err)
	}
	if _, err := store.Replay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("Replay() after delete = %v, expected ErrReplayNotFound", err)
	}
	if err := store.DeleteReplay(id); !errors.Is(err, ErrReplayNotFound) {
		t.Errorf("second DeleteReplay() = %v, expected ErrReplayNotFound", err)
	}
}
