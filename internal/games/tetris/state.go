package tetris

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// Lifecycle states of a session.
const (
	StateRunning  = "running"
	StatePaused   = "paused"
	StateGameOver = "game_over"
)

// Lifecycle events.
const (
	eventPause  = "pause"
	eventResume = "resume"
	eventTopOut = "top_out"
	eventReset  = "reset"
)

// lifecycle wraps the session state machine.
type lifecycle struct {
	machine  *fsm.FSM
	onChange func(from, to string)
}

func newLifecycle() *lifecycle {
	l := &lifecycle{}
	l.machine = fsm.NewFSM(
		StateRunning,
		fsm.Events{
			{Name: eventPause, Src: []string{StateRunning}, Dst: StatePaused},
			{Name: eventResume, Src: []string{StatePaused}, Dst: StateRunning},
			{Name: eventTopOut, Src: []string{StateRunning}, Dst: StateGameOver},
			{Name: eventReset, Src: []string{StateRunning, StatePaused, StateGameOver}, Dst: StateRunning},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if l.onChange != nil {
					l.onChange(e.Src, e.Dst)
				}
			},
		},
	)
	return l
}

// fire triggers an event. Self-transitions (reset while running) are not
// errors; events invalid for the current state report false.
func (l *lifecycle) fire(event string) bool {
	err := l.machine.Event(context.Background(), event)
	if err == nil {
		return true
	}
	var noTransition fsm.NoTransitionError
	return errors.As(err, &noTransition)
}

func (l *lifecycle) current() string {
	return l.machine.Current()
}

func (l *lifecycle) is(state string) bool {
	return l.machine.Is(state)
}
