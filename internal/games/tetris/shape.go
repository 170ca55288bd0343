// Package tetris implements the falling-block puzzle: the piece catalog,
// spawning, the board of locked cells, the collision and transform rules,
// and the session that ties them together.
//
// The package contains pure logic. Timing and input come from the caller,
// see internal/engine for the loop that serializes ticks and commands.
package tetris

import "github.com/vovakirdan/blockfall/internal/core"

// PieceSize is the number of cells in every tetromino.
const PieceSize = 4

// Shape identifies one of the seven tetrominoes.
type Shape uint8

const (
	ShapeI Shape = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of entries in the catalog.
const ShapeCount = 7

// Cells is the absolute or relative cell set of a piece.
type Cells [PieceSize]core.Point

type shapeDef struct {
	name    string
	offsets Cells
	pivot   core.Point
	color   core.Color
}

// catalog is indexed by Shape. Offsets are (column, row) relative to the
// spawn origin; rows start at 0 so each shape's vertical extent decides
// which top rows it spawns into.
var catalog = [ShapeCount]shapeDef{
	ShapeI: {
		name:    "I",
		offsets: Cells{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}},
		pivot:   core.Pt(0, 1),
		color:   core.ColorCyan,
	},
	ShapeO: {
		name:    "O",
		offsets: Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot:   core.Pt(0, 0),
		color:   core.ColorYellow,
	},
	ShapeT: {
		name:    "T",
		offsets: Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
		pivot:   core.Pt(1, 0),
		color:   core.ColorMagenta,
	},
	ShapeS: {
		name:    "S",
		offsets: Cells{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot:   core.Pt(1, 1),
		color:   core.ColorGreen,
	},
	ShapeZ: {
		name:    "Z",
		offsets: Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}},
		pivot:   core.Pt(1, 1),
		color:   core.ColorRed,
	},
	ShapeJ: {
		name:    "J",
		offsets: Cells{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}},
		pivot:   core.Pt(1, 1),
		color:   core.ColorBlue,
	},
	ShapeL: {
		name:    "L",
		offsets: Cells{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}},
		pivot:   core.Pt(0, 1),
		color:   core.ColorOrange,
	},
}

// Shapes returns every shape in catalog order.
func Shapes() []Shape {
	return []Shape{ShapeI, ShapeO, ShapeT, ShapeS, ShapeZ, ShapeJ, ShapeL}
}

// Offsets returns the base cell offsets of a shape.
func Offsets(s Shape) Cells {
	return s.def().offsets
}

// PivotOffset returns the rotation pivot of a shape relative to its origin.
func PivotOffset(s Shape) core.Point {
	return s.def().pivot
}

// ColorOf returns the color tag a shape is drawn and locked with.
func ColorOf(s Shape) core.Color {
	return s.def().color
}

// String returns the single-letter shape name.
func (s Shape) String() string {
	return s.def().name
}

// def maps out-of-range values onto the I piece so catalog lookups stay total.
func (s Shape) def() shapeDef {
	if int(s) >= ShapeCount {
		return catalog[ShapeI]
	}
	return catalog[s]
}
