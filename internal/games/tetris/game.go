package tetris

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// ID is the identifier used for replays and logs.
const ID = "blockfall"

var (
	down  = core.Pt(0, 1)
	left  = core.Pt(-1, 0)
	right = core.Pt(1, 0)
)

// Settings are the rules a session is played with.
type Settings struct {
	Width          int
	Height         int
	PointsPerLine  int
	DetectGameOver bool // false keeps spawning over locked cells without ending
}

// DefaultSettings returns the standard 10x20 rules.
func DefaultSettings() Settings {
	return SettingsFrom(config.Default())
}

// SettingsFrom extracts game rules from a loaded configuration.
func SettingsFrom(cfg config.Config) Settings {
	return Settings{
		Width:          cfg.Board.Width,
		Height:         cfg.Board.Height,
		PointsPerLine:  cfg.Scoring.PointsPerLine,
		DetectGameOver: cfg.Gameplay.DetectGameOver,
	}
}

// Game is one play session. It owns the board and the active piece and
// must be driven from a single goroutine.
type Game struct {
	settings Settings
	rng      *rand.Rand
	spawner  *Spawner
	board    *Board
	active   Piece
	life     *lifecycle
	seed     int64
	tick     uint64

	score  int
	lines  int
	pieces int
}

// New creates a session with the given rules. Call Reset before use.
func New(settings Settings) *Game {
	return &Game{settings: settings, life: newLifecycle()}
}

// Reset seeds the session and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.spawner = NewSpawner(g.rng, g.settings.Width)
	g.board = NewBoard(g.settings.Width, g.settings.Height)
	g.tick = 0
	g.restart()
}

// OnStateChange registers a callback for lifecycle transitions.
func (g *Game) OnStateChange(fn func(from, to string)) {
	g.life.onChange = fn
}

// restart clears the board and counters and spawns a piece. It keeps the
// RNG stream, so a reset mid-game stays reproducible from the seed.
func (g *Game) restart() core.StepEvents {
	g.board.Clear()
	g.score = 0
	g.lines = 0
	g.pieces = 0
	g.life.fire(eventReset)
	ev := core.StepEvents{Reset: true}
	g.spawn(&ev)
	return ev
}

// Step applies every action of the frame in order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var ev core.StepEvents
	for _, a := range in.Actions {
		mergeEvents(&ev, g.Apply(a).Events)
	}
	return core.StepResult{State: g.State(), Events: ev}
}

// Tick advances gravity by one row.
func (g *Game) Tick() core.StepResult {
	return g.Apply(core.ActionTick)
}

// Apply performs a single transition.
func (g *Game) Apply(a core.Action) core.StepResult {
	var ev core.StepEvents

	switch a {
	case core.ActionReset:
		ev = g.restart()
	case core.ActionPause:
		if !g.life.fire(eventPause) {
			g.life.fire(eventResume)
		}
	case core.ActionTick:
		g.tick++
		if g.life.is(StateRunning) {
			ev = g.moveDown()
		}
	}

	if g.life.is(StateRunning) {
		switch a {
		case core.ActionSoftDrop:
			ev = g.moveDown()
		case core.ActionHardDrop:
			ev = g.hardDrop()
		case core.ActionMoveLeft:
			ev.Moved = g.tryMove(left)
		case core.ActionMoveRight:
			ev.Moved = g.tryMove(right)
		case core.ActionRotate:
			ev.Moved = g.tryRotate()
		}
	}

	return core.StepResult{State: g.State(), Events: ev}
}

// tryMove commits a translation of the active piece if it is legal.
func (g *Game) tryMove(delta core.Point) bool {
	candidate := Translate(g.active.Cells, delta)
	if !IsLegal(candidate, g.board) {
		return false
	}
	g.active.Cells = candidate
	g.active.Pivot = g.active.Pivot.Add(delta)
	return true
}

// tryRotate turns the active piece 90 degrees about its fixed pivot.
func (g *Game) tryRotate() bool {
	candidate := Rotate(g.active.Cells, g.active.Pivot, math.Pi/2)
	if !IsLegal(candidate, g.board) {
		return false
	}
	g.active.Cells = candidate
	return true
}

// moveDown is the gravity step shared by ticks and soft drops.
func (g *Game) moveDown() core.StepEvents {
	if g.tryMove(down) {
		return core.StepEvents{Moved: true}
	}
	return g.lockAndSpawn()
}

// hardDrop falls until blocked, then locks through the same path as a tick.
func (g *Game) hardDrop() core.StepEvents {
	moved := false
	for range g.board.Height() {
		if !g.tryMove(down) {
			break
		}
		moved = true
	}
	ev := g.lockAndSpawn()
	ev.Moved = moved
	return ev
}

func (g *Game) lockAndSpawn() core.StepEvents {
	ev := core.StepEvents{Locked: true}
	g.board.LockCells(g.active.Cells, g.active.Color())
	g.pieces++

	n := g.board.ClearCompletedLines()
	ev.LinesCleared = n
	g.lines += n
	g.score += n * g.settings.PointsPerLine

	g.spawn(&ev)
	return ev
}

func (g *Game) spawn(ev *core.StepEvents) {
	g.active = g.spawner.Spawn()
	ev.Spawned = true
	if g.settings.DetectGameOver && !IsLegal(g.active.Cells, g.board) {
		g.life.fire(eventTopOut)
		ev.GameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lines:    g.lines,
		GameOver: g.life.is(StateGameOver),
		Paused:   g.life.is(StatePaused),
	}
}

// Seed returns the seed passed to the last Reset.
func (g *Game) Seed() int64 {
	return g.seed
}

// Settings returns the rules this game is played with.
func (g *Game) Settings() Settings {
	return g.settings
}

func mergeEvents(dst *core.StepEvents, src core.StepEvents) {
	dst.Moved = dst.Moved || src.Moved
	dst.Locked = dst.Locked || src.Locked
	dst.Spawned = dst.Spawned || src.Spawned
	dst.GameOver = dst.GameOver || src.GameOver
	dst.Reset = dst.Reset || src.Reset
	dst.LinesCleared += src.LinesCleared
}
