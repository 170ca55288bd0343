package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

func newTestLoop(rec engine.Recorder) *engine.Loop {
	game := tetris.New(tetris.DefaultSettings())
	game.Reset(core.RuntimeConfig{Seed: 1})
	return engine.NewLoop(game, engine.Options{
		Interval: time.Hour,
		Recorder: rec,
		Logger:   log.New(io.Discard),
	})
}

func TestModelViewBeforeSnapshot(t *testing.T) {
	m := NewModel(newTestLoop(nil), 80, 30)
	if got := m.View(); got != "Starting..." {
		t.Errorf("View() = %q, expected placeholder", got)
	}
}

func TestModelRendersSnapshot(t *testing.T) {
	game := tetris.New(tetris.DefaultSettings())
	game.Reset(core.RuntimeConfig{Seed: 1})

	var model tea.Model = NewModel(newTestLoop(nil), 80, 30)
	model, cmd := model.Update(snapshotMsg(game.Snapshot()))
	if cmd == nil {
		t.Fatal("snapshot should schedule the next wait")
	}

	view := model.View()
	for _, want := range []string{"BLOCKFALL", "Score: 0", "rotate"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestModelForwardsKeys(t *testing.T) {
	journal := engine.NewJournal()
	loop := newTestLoop(journal)

	errc := make(chan error, 1)
	go func() { errc <- loop.Run(context.Background()) }()

	var model tea.Model = NewModel(loop, 80, 30)
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model, _ = model.Update(runeKey('?')) // help toggle only
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyUp})
	_, cmd := model.Update(runeKey('q'))

	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should produce tea.QuitMsg")
	}

	if err := <-errc; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got := journal.Actions()
	want := []core.Action{core.ActionMoveLeft, core.ActionRotate}
	if len(got) != len(want) {
		t.Fatalf("recorded %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestModelQuitsWhenLoopEnds(t *testing.T) {
	var model tea.Model = NewModel(newTestLoop(nil), 80, 30)
	model, cmd := model.Update(loopDoneMsg{})
	if cmd == nil {
		t.Fatal("loop end should quit")
	}
	if model.View() != "" {
		t.Error("View() should be empty after quitting")
	}
}

func TestSessionRecordsReplay(t *testing.T) {
	store := openTestStore(t)

	sess := NewSession(SessionOptions{
		Config:  config.Default(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42},
		Player:  "tester",
		Store:   store,
		Logger:  log.New(io.Discard),
	})

	errc := make(chan error, 1)
	go func() { errc <- sess.Run(context.Background()) }()

	actions := []core.Action{core.ActionMoveLeft, core.ActionHardDrop, core.ActionRotate, core.ActionHardDrop}
	for _, a := range actions {
		if err := sess.Loop().Send(a); err != nil {
			t.Fatalf("Send(%v) error = %v", a, err)
		}
	}
	if err := sess.Loop().Send(core.ActionQuit); err != nil {
		t.Fatalf("Send(quit) error = %v", err)
	}
	if err := <-errc; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	recent, err := store.RecentReplays(10)
	if err != nil {
		t.Fatalf("RecentReplays() error = %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("got %d replays, expected 1", len(recent))
	}

	r, err := store.Replay(recent[0].ID)
	if err != nil {
		t.Fatalf("Replay() error = %v", err)
	}
	if r.Seed != 42 || r.Player != "tester" {
		t.Errorf("replay seed/player = %d/%q, expected 42/tester", r.Seed, r.Player)
	}
	if len(r.Actions) != len(actions) {
		t.Fatalf("replay has %d actions, expected %d", len(r.Actions), len(actions))
	}

	settings := tetris.Settings{
		Width:          r.Width,
		Height:         r.Height,
		PointsPerLine:  r.PointsPerLine,
		DetectGameOver: r.DetectGameOver,
	}
	rebuilt := tetris.Replay(settings, r.Seed, r.Actions).Snapshot()
	if rebuilt.Pieces != r.Pieces || rebuilt.Score != r.Score {
		t.Errorf("rebuilt pieces/score = %d/%d, expected %d/%d", rebuilt.Pieces, rebuilt.Score, r.Pieces, r.Score)
	}
	if rebuilt.Pieces != 2 {
		t.Errorf("rebuilt pieces = %d, expected 2", rebuilt.Pieces)
	}
}
