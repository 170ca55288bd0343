package engine

import (
	"sync"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Journal is an in-memory Recorder. Ticks are kept along with commands
// because a replay must see the exact stream.
type Journal struct {
	mu      sync.Mutex
	actions []core.Action
}

// NewJournal creates an empty journal.
func NewJournal() *Journal {
	return &Journal{}
}

// Record appends an action.
func (j *Journal) Record(a core.Action) {
	j.mu.Lock()
	j.actions = append(j.actions, a)
	j.mu.Unlock()
}

// Actions returns a copy of the recorded stream.
func (j *Journal) Actions() []core.Action {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]core.Action, len(j.actions))
	copy(out, j.actions)
	return out
}

// Len returns the number of recorded actions.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.actions)
}
