package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// SessionOptions configures a single play session.
type SessionOptions struct {
	Config  config.Config
	Runtime core.RuntimeConfig // screen size and seed; seed 0 picks a time-based one
	Player  string             // recorded with the replay
	Store   *storage.Store
	Logger  *log.Logger
}

// Session is one game with its loop and, when a store is set, its journal.
type Session struct {
	game    *tetris.Game
	runtime core.RuntimeConfig
	loop    *engine.Loop
	journal *engine.Journal
	store   *storage.Store
	player  string
	logger  *log.Logger
}

// NewSession creates a started game wrapped in an engine loop.
func NewSession(opts SessionOptions) *Session {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game := tetris.New(tetris.SettingsFrom(opts.Config))
	game.Reset(opts.Runtime)

	s := &Session{
		game:    game,
		runtime: opts.Runtime,
		store:   opts.Store,
		player:  opts.Player,
		logger:  logger.With("seed", opts.Runtime.Seed),
	}

	loopOpts := engine.Options{
		Interval: opts.Config.TickInterval(),
		Logger:   s.logger,
	}
	if opts.Config.Timing.Speedup.Enabled {
		loopOpts.IntervalFor = config.NewSpeedCurve(opts.Config.Timing).Interval
	}
	if s.store != nil {
		s.journal = engine.NewJournal()
		loopOpts.Recorder = s.journal
	}
	s.loop = engine.NewLoop(game, loopOpts)
	return s
}

// Loop returns the engine loop driving the session.
func (s *Session) Loop() *engine.Loop {
	return s.loop
}

// NewModel returns a Bubble Tea model sized to the session's screen.
func (s *Session) NewModel() Model {
	return NewModel(s.loop, s.runtime.ScreenW, s.runtime.ScreenH)
}

// Run drives the loop until ctx is cancelled or a quit arrives, then saves
// the replay. A failed save is logged, not returned.
func (s *Session) Run(ctx context.Context) error {
	err := s.loop.Run(ctx)
	s.save()
	return err
}

func (s *Session) save() {
	if s.store == nil || s.journal.Len() == 0 {
		return
	}

	// The loop has exited, so the game is no longer shared.
	state := s.game.State()
	snap := s.game.Snapshot()
	settings := s.game.Settings()

	id, err := s.store.SaveReplay(storage.Replay{
		Player:         s.player,
		Seed:           s.game.Seed(),
		Width:          settings.Width,
		Height:         settings.Height,
		PointsPerLine:  settings.PointsPerLine,
		DetectGameOver: settings.DetectGameOver,
		Score:          state.Score,
		Lines:          state.Lines,
		Pieces:         snap.Pieces,
		Actions:        s.journal.Actions(),
	})
	if err != nil {
		s.logger.Warn("could not save replay", "error", err)
		return
	}
	s.logger.Info("replay saved", "id", id, "score", state.Score, "actions", s.journal.Len())
}
