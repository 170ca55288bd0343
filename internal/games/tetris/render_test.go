package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestRenderPanelAndWell(t *testing.T) {
	g := newGame(t, DefaultSettings(), 1)
	g.active = NewPiece(ShapeO, 4)
	g.Apply(core.ActionHardDrop)

	w, h := MinScreenSize(10, 20)
	screen := core.NewScreen(w, h)
	Render(screen, g.Snapshot())
	out := screen.String()

	assert.Contains(t, out, "BLOCKFALL")
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Pieces: 1")

	// Locked O at columns 4-5 of the bottom row, two characters per cell
	px, py := cellOrigin(0, 0, core.Pt(4, 19))
	cell := screen.GetCell(px, py)
	assert.Equal(t, blockRune, cell.Rune)
	assert.Equal(t, core.ColorYellow, cell.Color)
	assert.Equal(t, emptyRune, screen.Get(cellOrigin(0, 0, core.Pt(0, 19))))
}

func TestRenderTooSmall(t *testing.T) {
	g := newGame(t, DefaultSettings(), 1)
	screen := core.NewScreen(20, 10)
	Render(screen, g.Snapshot())

	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderOverlays(t *testing.T) {
	g := newGame(t, DefaultSettings(), 1)
	w, h := MinScreenSize(10, 20)
	screen := core.NewScreen(w, h)

	g.Apply(core.ActionPause)
	Render(screen, g.Snapshot())
	assert.Contains(t, screen.String(), "PAUSED")

	g.Apply(core.ActionPause)
	blockSpawns(g.board)
	g.active = NewPiece(ShapeI, 9)
	g.Apply(core.ActionHardDrop)
	Render(screen, g.Snapshot())
	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.False(t, strings.Contains(out, "PAUSED"))
}
