package dungeon

import (
	"image"

	"github.com/borkshop/grotto/internal/grid"
)

// Connect gives each room exactly one door: a boundary cell on the room's
// west or east edge, chosen uniformly, marked Door and opened away from the
// room interior, with the reciprocal bit set on the outside neighbor.
//
// The far side is not validated; a door can open into void when room
// placement isolated the neighboring cell from the carve. That matches the
// generator's historical behavior and is left to the renderer to show
// honestly.
func (gen *Generator) Connect(g *grid.Grid, rooms []Room) {
	for _, r := range rooms {
		y := r.Y + gen.rng.Intn(r.H+1)
		x := r.X
		if gen.rng.Intn(2) == 1 {
			x = r.X + r.W
		}

		d := grid.DirWest
		if x != r.X {
			d = grid.DirEast
		}

		pt := image.Pt(x, y)
		g.Mark(pt, grid.Door)
		g.Open(pt, d)
	}
}
