package grid

import "image"

// Grid is a fixed-size field of cells backed by a single row-major slice.
// Like an image, the grid is a thin header over its allocation; the zero
// cell value means un-carved void.
type Grid struct {
	Cells  []Cell
	Stride int
	Rect   image.Rectangle
}

// New returns an all-void grid of the given dimensions, anchored at the
// origin. Non-positive dimensions yield an empty grid.
func New(w, h int) *Grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Grid{
		Cells:  make([]Cell, w*h),
		Stride: w,
		Rect:   image.Rect(0, 0, w, h),
	}
}

// Bounds returns the grid's bounding rectangle.
func (g *Grid) Bounds() image.Rectangle { return g.Rect }

// In reports whether the point lies inside the grid.
func (g *Grid) In(pt image.Point) bool { return pt.In(g.Rect) }

// At returns the cell at pt, or zero for any out-of-bounds point; callers
// reading past a row's end get void rather than a panic.
func (g *Grid) At(pt image.Point) Cell {
	if !pt.In(g.Rect) {
		return 0
	}
	return g.Cells[g.offset(pt)]
}

// Set overwrites the cell at pt; out-of-bounds writes are dropped.
func (g *Grid) Set(pt image.Point, c Cell) {
	if !pt.In(g.Rect) {
		return
	}
	g.Cells[g.offset(pt)] = c
}

// Mark ors the given flags into the cell at pt.
func (g *Grid) Mark(pt image.Point, c Cell) {
	if !pt.In(g.Rect) {
		return
	}
	g.Cells[g.offset(pt)] |= c
}

// Open carves a passage from pt toward d, setting the direction bit on pt
// and the reciprocal bit on the neighbor. Either side falling outside the
// grid makes the whole operation a no-op, preserving reciprocity.
func (g *Grid) Open(pt image.Point, d Direction) {
	npt := pt.Add(d.Delta())
	if !pt.In(g.Rect) || !npt.In(g.Rect) {
		return
	}
	g.Cells[g.offset(pt)] |= d.Bit()
	g.Cells[g.offset(npt)] |= d.Opposite().Bit()
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{Cells: cells, Stride: g.Stride, Rect: g.Rect}
}

// Equal reports whether two grids have identical bounds and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rect != other.Rect {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

func (g *Grid) offset(pt image.Point) int {
	return (pt.Y-g.Rect.Min.Y)*g.Stride + (pt.X - g.Rect.Min.X)
}
