package dungeon

import (
	"image"

	"github.com/borkshop/grotto/internal/grid"
)

// deadend records a corridor cell pending removal along with its single
// open direction at the time it was found.
type deadend struct {
	pt image.Point
	d  grid.Direction
}

// Prune strips corridor stubs: any non-door cell with exactly one open
// passage is cleared entirely, the reciprocal bit is xor-cleared on its
// neighbor, and the neighbor is queued if that left it a dead end in turn.
// The corridor network is a tree, so this is leaf stripping; it can eat a
// straight run all the way back to a junction. Queue order only decides
// which branch of a tie survives, never the final topology.
//
// Records are re-verified when consumed, so stale entries are no-ops and
// pruning an already-pruned grid changes nothing.
func Prune(g *grid.Grid) {
	bounds := g.Bounds()
	var queue []deadend
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pt := image.Pt(x, y)
			c := g.At(pt)
			if c.HasAny(grid.Door) {
				continue
			}
			if d, ok := c.Exit(); ok {
				queue = append(queue, deadend{pt, d})
			}
		}
	}

	for len(queue) > 0 {
		de := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		c := g.At(de.pt)
		if c.HasAny(grid.Door) {
			continue
		}
		d, ok := c.Exit()
		if !ok {
			// A neighboring removal already changed this cell.
			continue
		}

		g.Set(de.pt, 0)

		npt := de.pt.Add(d.Delta())
		if !g.In(npt) {
			continue
		}
		n := g.At(npt) ^ d.Opposite().Bit()
		g.Set(npt, n)

		if n.HasAny(grid.Door) {
			continue
		}
		if nd, ok := n.Exit(); ok {
			queue = append(queue, deadend{npt, nd})
		}
	}
}
