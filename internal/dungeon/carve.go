package dungeon

import (
	"image"

	"github.com/borkshop/grotto/internal/grid"
)

// Carve fills all un-carved space reachable from a random start cell with a
// connected corridor network, using a growing-tree walk: extend from the
// most recently active cell, preferring to continue in the last carved
// direction before falling back to a freshly shuffled order. The bias
// toward repeating the previous direction is what yields long straight runs
// instead of uniform wander.
//
// Carving only ever opens passage bits on un-stamped cells; room cells are
// never branched into, and a start cell inside a room is abandoned
// immediately. Cells unreachable from the start stay void.
func (gen *Generator) Carve(g *grid.Grid) {
	bounds := g.Bounds()
	if bounds.Empty() {
		return
	}

	start := image.Pt(
		bounds.Min.X+gen.rng.Intn(bounds.Dx()),
		bounds.Min.Y+gen.rng.Intn(bounds.Dy()),
	)

	// active is a stack of frontier cells, most recent on top.
	active := []image.Point{start}
	var last grid.Direction
	haveLast := false

	for len(active) > 0 {
		cur := active[len(active)-1]
		if g.At(cur).HasAny(grid.Room) {
			active = active[:len(active)-1]
			haveLast = false
			continue
		}

		d, ok := gen.nextDirection(g, cur, last, haveLast)
		if !ok {
			// Exhausted; backtrack to the previous frontier cell.
			active = active[:len(active)-1]
			haveLast = false
			continue
		}

		g.Open(cur, d)
		active = append(active, cur.Add(d.Delta()))
		last, haveLast = d, true
	}
}

// nextDirection picks a direction whose neighbor is in-bounds and still
// void, retrying the previous direction first when one is known.
func (gen *Generator) nextDirection(g *grid.Grid, cur image.Point, last grid.Direction, haveLast bool) (grid.Direction, bool) {
	if haveLast && carvable(g, cur.Add(last.Delta())) {
		return last, true
	}
	for _, i := range gen.rng.Perm(len(grid.Directions)) {
		d := grid.Directions[i]
		if carvable(g, cur.Add(d.Delta())) {
			return d, true
		}
	}
	return 0, false
}

func carvable(g *grid.Grid, pt image.Point) bool {
	return g.In(pt) && g.At(pt) == 0
}
