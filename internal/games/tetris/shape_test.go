package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestCatalog(t *testing.T) {
	tests := []struct {
		shape Shape
		name  string
		cells Cells
		pivot core.Point
		color core.Color
	}{
		{ShapeI, "I", Cells{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 0, Y: 3}}, core.Pt(0, 1), core.ColorCyan},
		{ShapeO, "O", Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, core.Pt(0, 0), core.ColorYellow},
		{ShapeT, "T", Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}}, core.Pt(1, 0), core.ColorMagenta},
		{ShapeS, "S", Cells{{X: 1, Y: 0}, {X: 2, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}, core.Pt(1, 1), core.ColorGreen},
		{ShapeZ, "Z", Cells{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 1}}, core.Pt(1, 1), core.ColorRed},
		{ShapeJ, "J", Cells{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 0, Y: 2}}, core.Pt(1, 1), core.ColorBlue},
		{ShapeL, "L", Cells{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}, {X: 1, Y: 2}}, core.Pt(0, 1), core.ColorOrange},
	}

	require.Len(t, Shapes(), ShapeCount)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.shape.String())
			assert.Equal(t, tt.cells, Offsets(tt.shape))
			assert.Equal(t, tt.pivot, PivotOffset(tt.shape))
			assert.Equal(t, tt.color, ColorOf(tt.shape))
		})
	}
}

func TestCatalogCellsDistinct(t *testing.T) {
	for _, s := range Shapes() {
		seen := make(map[core.Point]bool)
		for _, c := range Offsets(s) {
			assert.False(t, seen[c], "%s repeats cell %s", s, c)
			seen[c] = true
		}
	}
}

func TestShiftRange(t *testing.T) {
	assert.Equal(t, 7, ShiftRange(10))
	assert.Equal(t, 1, ShiftRange(4))
	assert.Equal(t, 1, ShiftRange(2))
}

func TestNewPiece(t *testing.T) {
	p := NewPiece(ShapeT, 3)
	assert.Equal(t, ShapeT, p.Shape)
	assert.Equal(t, core.Pt(4, 0), p.Pivot)
	assert.Equal(t, Cells{{X: 3, Y: 0}, {X: 4, Y: 0}, {X: 5, Y: 0}, {X: 4, Y: 1}}, p.Cells)
	assert.Equal(t, core.ColorMagenta, p.Color())
}

func TestSpawnerStaysOnBoard(t *testing.T) {
	const width, height = 10, 20
	sp := NewSpawner(rand.New(rand.NewSource(42)), width)

	shapes := make(map[Shape]int)
	shifts := make(map[int]int)
	for range 2000 {
		p := sp.Spawn()
		shapes[p.Shape]++
		shifts[p.Pivot.X-PivotOffset(p.Shape).X]++
		for _, c := range p.Cells {
			require.True(t, c.In(width, height), "spawned %s outside board: %v", p.Shape, p.Cells)
		}
	}

	assert.Len(t, shapes, ShapeCount, "every shape should be drawn")
	assert.Len(t, shifts, ShiftRange(width), "every shift should be drawn")
	for shift := range shifts {
		assert.GreaterOrEqual(t, shift, 0)
		assert.Less(t, shift, ShiftRange(width))
	}
}

func TestSpawnerDeterministic(t *testing.T) {
	a := NewSpawner(rand.New(rand.NewSource(9)), 10)
	b := NewSpawner(rand.New(rand.NewSource(9)), 10)
	for range 50 {
		assert.Equal(t, a.Spawn(), b.Spawn())
	}
}
