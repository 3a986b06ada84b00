package dungeon_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/grotto/internal/dungeon"
	"github.com/borkshop/grotto/internal/grid"
)

// corridorRun opens a straight west-to-east corridor across row y.
func corridorRun(g *grid.Grid, y, x0, x1 int) {
	for x := x0; x < x1; x++ {
		g.Open(image.Pt(x, y), grid.DirEast)
	}
}

func TestPruneRemovesUnanchoredCorridor(t *testing.T) {
	// A free-standing line has a dead end at each tip; stripping leaves
	// nothing behind.
	g := grid.New(7, 1)
	corridorRun(g, 0, 0, 6)

	dungeon.Prune(g)
	for _, c := range g.Cells {
		assert.Equal(t, grid.Cell(0), c)
	}
}

func TestPruneStopsAtJunctions(t *testing.T) {
	// A plus shape with doors sealing three tips: only the undoored stub is
	// eaten, back to the junction.
	g := grid.New(5, 5)
	mid := image.Pt(2, 2)
	for _, d := range grid.Directions {
		g.Open(mid, d)
		g.Open(mid.Add(d.Delta()), d)
	}
	for _, d := range []grid.Direction{grid.DirNorth, grid.DirSouth, grid.DirWest} {
		tip := mid.Add(d.Delta()).Add(d.Delta())
		g.Mark(tip, grid.Door)
	}

	dungeon.Prune(g)
	checkReciprocity(t, g)

	// The east arm is gone entirely.
	assert.Equal(t, grid.Cell(0), g.At(image.Pt(3, 2)))
	assert.Equal(t, grid.Cell(0), g.At(image.Pt(4, 2)))
	// The junction keeps its other three passages.
	assert.Equal(t, 3, g.At(mid).Exits())
	// No new stubs were exposed.
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			c := g.At(image.Pt(x, y))
			if !c.HasAny(grid.Door) {
				assert.NotEqual(t, 1, c.Exits(), "stub at (%d,%d)", x, y)
			}
		}
	}
}

func TestPruneCanStrandDoor(t *testing.T) {
	// A door whose corridor is one long dead end loses the whole corridor;
	// the door cell itself survives, stripped of its passage bit.
	g := grid.New(7, 1)
	g.Mark(image.Pt(0, 0), grid.Room|grid.Door)
	corridorRun(g, 0, 0, 6)

	dungeon.Prune(g)
	assert.Equal(t, grid.Cell(grid.Room|grid.Door), g.At(image.Pt(0, 0)))
	for x := 1; x < 7; x++ {
		assert.Equal(t, grid.Cell(0), g.At(image.Pt(x, 0)))
	}
}

func TestPruneIdempotent(t *testing.T) {
	gen := dungeon.NewSeeded(77)
	g := grid.New(40, 30)
	rooms := gen.PlaceRooms(g)
	gen.Carve(g)
	gen.Connect(g, rooms)

	dungeon.Prune(g)
	once := g.Clone()
	dungeon.Prune(g)
	require.True(t, g.Equal(once), "second prune pass must find nothing")
	checkReciprocity(t, g)
}

func TestPruneFullPipeline(t *testing.T) {
	gen := dungeon.NewSeeded(123)
	g := grid.New(60, 40)
	rooms := gen.PlaceRooms(g)
	gen.Carve(g)
	gen.Connect(g, rooms)
	dungeon.Prune(g)

	checkReciprocity(t, g)
	bounds := g.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := g.At(image.Pt(x, y))
			if !c.HasAny(grid.Door) {
				assert.NotEqual(t, 1, c.Exits(), "stub survived at (%d,%d)", x, y)
			}
		}
	}
}
