package tetris

import (
	"math"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Translate returns cells moved by delta.
func Translate(cells Cells, delta core.Point) Cells {
	var out Cells
	for i, c := range cells {
		out[i] = c.Add(delta)
	}
	return out
}

// Rotate turns cells around pivot by angle radians using the plain 2D
// rotation matrix. Each axis is rounded to the nearest integer on its own
// (halves round up), so results for some angles are lossy.
func Rotate(cells Cells, pivot core.Point, angle float64) Cells {
	sin, cos := math.Sincos(angle)
	var out Cells
	for i, c := range cells {
		rel := c.Sub(pivot)
		x, y := float64(rel.X), float64(rel.Y)
		rx := roundHalfUp(x*cos - y*sin)
		ry := roundHalfUp(x*sin + y*cos)
		out[i] = core.Pt(rx+pivot.X, ry+pivot.Y)
	}
	return out
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// IsLegal reports whether every cell is inside the board and none of them
// is locked.
func IsLegal(cells Cells, board *Board) bool {
	for _, c := range cells {
		if !c.In(board.Width(), board.Height()) {
			return false
		}
		if board.Occupied(c) {
			return false
		}
	}
	return true
}
