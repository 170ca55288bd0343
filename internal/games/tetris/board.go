package tetris

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// LockedCell is a settled cell on the board.
type LockedCell struct {
	Pos   core.Point
	Color core.Color
}

// Board holds the locked cells of a width x height grid, keyed by
// row*width+col for constant-time occupancy checks.
type Board struct {
	width  int
	height int
	cells  *intmap.Map[int, core.Color]
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  intmap.New[int, core.Color](width * height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// Len returns the number of locked cells.
func (b *Board) Len() int { return b.cells.Len() }

func (b *Board) key(x, y int) int {
	return y*b.width + x
}

// Occupied reports whether a locked cell sits at p. Points outside the
// grid are never occupied.
func (b *Board) Occupied(p core.Point) bool {
	_, ok := b.ColorAt(p)
	return ok
}

// ColorAt returns the color of the locked cell at p.
func (b *Board) ColorAt(p core.Point) (core.Color, bool) {
	if !p.In(b.width, b.height) {
		return core.ColorDefault, false
	}
	return b.cells.Get(b.key(p.X, p.Y))
}

// IsRowFull reports whether every column of row is locked.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= b.height {
		return false
	}
	for x := range b.width {
		if _, ok := b.cells.Get(b.key(x, row)); !ok {
			return false
		}
	}
	return true
}

// LockCells adds cells to the board with the given color.
// Cells outside the grid are dropped.
func (b *Board) LockCells(cells Cells, color core.Color) {
	for _, c := range cells {
		if !c.In(b.width, b.height) {
			continue
		}
		b.cells.Put(b.key(c.X, c.Y), color)
	}
}

// ClearRow removes every cell of row and moves every cell above it down by
// one row, keeping colors.
func (b *Board) ClearRow(row int) {
	if row < 0 || row >= b.height {
		return
	}
	for x := range b.width {
		b.cells.Del(b.key(x, row))
	}
	// Walk upward so each destination row is already vacated.
	for y := row - 1; y >= 0; y-- {
		for x := range b.width {
			k := b.key(x, y)
			if c, ok := b.cells.Get(k); ok {
				b.cells.Del(k)
				b.cells.Put(b.key(x, y+1), c)
			}
		}
	}
}

// ClearCompletedLines clears every full row, scanning from the bottom.
// After a clear the same row index is examined again, since the row that
// dropped into it may be full too. Returns the number of rows cleared.
func (b *Board) ClearCompletedLines() int {
	cleared := 0
	for row := b.height - 1; row >= 0; {
		if b.IsRowFull(row) {
			b.ClearRow(row)
			cleared++
			continue
		}
		row--
	}
	return cleared
}

// Clear removes every locked cell.
func (b *Board) Clear() {
	b.cells.Clear()
}

// Cells returns the locked cells in row-major order.
func (b *Board) Cells() []LockedCell {
	out := make([]LockedCell, 0, b.cells.Len())
	for y := range b.height {
		for x := range b.width {
			if c, ok := b.cells.Get(b.key(x, y)); ok {
				out = append(out, LockedCell{Pos: core.Pt(x, y), Color: c})
			}
		}
	}
	return out
}
