package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellWidth  = 2 // Each board cell is two characters wide
	panelWidth = 16
	blockRune  = '█'
	emptyRune  = '·'
)

// MinScreenSize returns the smallest screen that fits a board.
func MinScreenSize(boardW, boardH int) (int, int) {
	return boardW*cellWidth + 2 + 1 + panelWidth, boardH + 2
}

// Render draws the snapshot into dst.
func Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	minW, minH := MinScreenSize(snap.Width, snap.Height)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst)
		return
	}

	frameW := snap.Width*cellWidth + 2
	frameH := snap.Height + 2
	originX := (dst.Width() - frameW - 1 - panelWidth) / 2
	originY := (dst.Height() - frameH) / 2

	renderWell(dst, snap, originX, originY)
	renderPanel(dst, snap, originX+frameW+1, originY)

	switch {
	case snap.GameOver():
		drawOverlay(dst, originX+frameW/2, originY+frameH/2,
			"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "Press R to restart")
	case snap.Paused():
		drawOverlay(dst, originX+frameW/2, originY+frameH/2, "PAUSED", "Press P to resume")
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderWell draws the frame, the locked cells and the active piece.
func renderWell(dst *core.Screen, snap Snapshot, x0, y0 int) {
	dst.DrawBox(core.NewRect(x0, y0, snap.Width*cellWidth+2, snap.Height+2))

	for y := range snap.Height {
		for x := range snap.Width {
			px, py := cellOrigin(x0, y0, core.Pt(x, y))
			dst.SetColored(px, py, emptyRune, core.ColorGray)
			dst.SetColored(px+1, py, ' ', core.ColorGray)
		}
	}

	for _, c := range snap.Locked {
		drawBlock(dst, x0, y0, c.Pos, c.Color)
	}

	if snap.GameOver() {
		return
	}
	for _, p := range snap.Active {
		if p.In(snap.Width, snap.Height) {
			drawBlock(dst, x0, y0, p, snap.ActiveColor)
		}
	}
}

func renderPanel(dst *core.Screen, snap Snapshot, x, y int) {
	dst.DrawText(x, y+1, "BLOCKFALL")
	dst.DrawText(x, y+3, fmt.Sprintf("Score: %d", snap.Score))
	dst.DrawText(x, y+4, fmt.Sprintf("Lines: %d", snap.Lines))
	dst.DrawText(x, y+5, fmt.Sprintf("Pieces: %d", snap.Pieces))
	dst.DrawText(x, y+7, "Piece:")
	dst.SetColored(x+7, y+7, []rune(snap.ActiveShape.String())[0], snap.ActiveColor)
}

func cellOrigin(x0, y0 int, p core.Point) (int, int) {
	return x0 + 1 + p.X*cellWidth, y0 + 1 + p.Y
}

func drawBlock(dst *core.Screen, x0, y0 int, p core.Point, c core.Color) {
	px, py := cellOrigin(x0, y0, p)
	for i := range cellWidth {
		dst.SetColored(px+i, py, blockRune, c)
	}
}

// drawOverlay draws a centered text box.
func drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}
