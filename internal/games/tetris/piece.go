package tetris

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Piece is the active, falling tetromino. Cells is the authoritative cell
// set: rotations are applied to it incrementally and never recomputed from
// the base shape.
type Piece struct {
	Shape Shape
	Pivot core.Point
	Cells Cells
}

// NewPiece places a shape at the top of the board, shifted right by shift
// columns.
func NewPiece(shape Shape, shift int) Piece {
	d := core.Pt(shift, 0)
	return Piece{
		Shape: shape,
		Pivot: PivotOffset(shape).Add(d),
		Cells: Translate(Offsets(shape), d),
	}
}

// Color returns the color tag of the piece.
func (p Piece) Color() core.Color {
	return ColorOf(p.Shape)
}

// ShiftRange is the number of spawn columns for a board of the given width.
// Catalog shapes are at most four columns wide, so shifts in
// [0, ShiftRange) keep every shape inside the board.
func ShiftRange(width int) int {
	return max(1, width-3)
}

// Spawner picks new pieces uniformly at random.
type Spawner struct {
	rng   *rand.Rand
	width int
}

// NewSpawner creates a spawner for a board of the given width.
func NewSpawner(rng *rand.Rand, width int) *Spawner {
	return &Spawner{rng: rng, width: width}
}

// Spawn returns a fresh piece near the top rows. The board is not consulted;
// callers decide what an overlapping spawn means.
func (s *Spawner) Spawn() Piece {
	shape := Shape(s.rng.Intn(ShapeCount))
	shift := s.rng.Intn(ShiftRange(s.width))
	return NewPiece(shape, shift)
}
