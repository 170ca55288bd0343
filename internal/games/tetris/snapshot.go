package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Snapshot is a read-only copy of the session published after every
// transition. The presentation layer only ever sees snapshots.
type Snapshot struct {
	Tick   uint64
	Width  int
	Height int

	Locked      []LockedCell
	Active      Cells
	ActiveShape Shape
	ActiveColor core.Color
	Pivot       core.Point

	Score  int
	Lines  int
	Pieces int
	State  string
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Width:       g.settings.Width,
		Height:      g.settings.Height,
		Locked:      g.board.Cells(),
		Active:      g.active.Cells,
		ActiveShape: g.active.Shape,
		ActiveColor: g.active.Color(),
		Pivot:       g.active.Pivot,
		Score:       g.score,
		Lines:       g.lines,
		Pieces:      g.pieces,
		State:       g.life.current(),
	}
}

// GameOver reports whether the snapshot was taken after a top out.
func (s Snapshot) GameOver() bool {
	return s.State == StateGameOver
}

// Paused reports whether the snapshot was taken while paused.
func (s Snapshot) Paused() bool {
	return s.State == StatePaused
}
