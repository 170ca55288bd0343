// Package engine runs a game session on a single goroutine. Timer ticks and
// player commands are funneled through one select loop, so no two
// transitions ever run concurrently, and a snapshot is published after
// each of them.
package engine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/tetris"
)

// ErrStopped is returned by Send once the loop has exited.
var ErrStopped = errors.New("engine: loop stopped")

// DefaultQueueSize is the command buffer used when Options.QueueSize is 0.
const DefaultQueueSize = 64

// Recorder receives every action the loop applies, in order.
type Recorder interface {
	Record(a core.Action)
}

// Options configures a Loop.
type Options struct {
	// Interval is the gravity tick period.
	Interval time.Duration

	// IntervalFor, if set, maps cleared rows to a tick period and
	// overrides Interval as the game progresses.
	IntervalFor func(lines int) time.Duration

	Recorder  Recorder
	Logger    *log.Logger
	QueueSize int
}

// Loop owns a game while it runs.
type Loop struct {
	game      *tetris.Game
	opts      Options
	logger    *log.Logger
	commands  chan core.Action
	snapshots chan tetris.Snapshot
	done      chan struct{}
	stopOnce  sync.Once
	running   sync.Mutex
}

// NewLoop wraps a game that has already been Reset.
func NewLoop(game *tetris.Game, opts Options) *Loop {
	if opts.QueueSize <= 0 {
		opts.QueueSize = DefaultQueueSize
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	game.OnStateChange(func(from, to string) {
		logger.Debug("state changed", "from", from, "to", to)
	})

	return &Loop{
		game:      game,
		opts:      opts,
		logger:    logger,
		commands:  make(chan core.Action, opts.QueueSize),
		snapshots: make(chan tetris.Snapshot, 1),
		done:      make(chan struct{}),
	}
}

// Send queues a command. It blocks only while the queue is full and returns
// ErrStopped once the loop has exited.
func (l *Loop) Send(a core.Action) error {
	select {
	case <-l.done:
		return ErrStopped
	default:
	}

	select {
	case l.commands <- a:
		return nil
	case <-l.done:
		return ErrStopped
	}
}

// Snapshots delivers the latest snapshot after each transition. Older
// undelivered snapshots are replaced. The channel is closed when Run exits.
func (l *Loop) Snapshots() <-chan tetris.Snapshot {
	return l.snapshots
}

// Done is closed when Run exits.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run processes ticks and commands until ctx is cancelled or a quit command
// arrives. A quit returns nil; cancellation returns the context error.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.TryLock() {
		return errors.New("engine: loop already running")
	}
	defer l.running.Unlock()

	select {
	case <-l.done:
		return ErrStopped
	default:
	}
	defer l.stop()

	interval := l.intervalFor(l.game.State().Lines)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	l.logger.Debug("loop started", "seed", l.game.Seed(), "interval", interval)
	l.publish()

	for {
		select {
		case <-ctx.Done():
			l.logger.Debug("loop cancelled", "score", l.game.State().Score)
			return ctx.Err()

		case <-ticker.C:
			l.apply(core.ActionTick)

		case a := <-l.commands:
			if a == core.ActionQuit {
				l.logger.Debug("loop quit", "score", l.game.State().Score)
				return nil
			}
			l.apply(a)
		}

		if next := l.intervalFor(l.game.State().Lines); next != interval {
			interval = next
			ticker.Reset(interval)
			l.logger.Info("speed changed", "interval", interval)
		}
	}
}

func (l *Loop) apply(a core.Action) {
	result := l.game.Apply(a)
	if l.opts.Recorder != nil {
		l.opts.Recorder.Record(a)
	}

	switch {
	case result.Events.GameOver:
		l.logger.Info("game over", "score", result.State.Score, "lines", result.State.Lines)
	case result.Events.Reset:
		l.logger.Info("game reset")
	case result.Events.LinesCleared > 0:
		l.logger.Debug("lines cleared", "count", result.Events.LinesCleared, "score", result.State.Score)
	}

	l.publish()
}

// publish replaces any undelivered snapshot with the current one.
func (l *Loop) publish() {
	snap := l.game.Snapshot()
	select {
	case <-l.snapshots:
	default:
	}
	l.snapshots <- snap
}

func (l *Loop) intervalFor(lines int) time.Duration {
	if l.opts.IntervalFor != nil {
		if d := l.opts.IntervalFor(lines); d > 0 {
			return d
		}
	}
	if l.opts.Interval > 0 {
		return l.opts.Interval
	}
	return 500 * time.Millisecond
}

func (l *Loop) stop() {
	l.stopOnce.Do(func() {
		close(l.done)
		close(l.snapshots)
	})
}
