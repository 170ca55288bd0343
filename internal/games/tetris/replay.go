package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// Replay rebuilds a session from its seed and the ordered actions it
// received. The same inputs always produce the same game.
func Replay(settings Settings, seed int64, actions []core.Action) *Game {
	g := New(settings)
	g.Reset(core.RuntimeConfig{Seed: seed})
	g.Step(core.InputFrame{Actions: actions})
	return g
}
