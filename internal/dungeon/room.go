package dungeon

import (
	"image"

	"github.com/borkshop/grotto/internal/grid"
)

// Room is a rectangle in grid coordinates with an inclusive footprint: it
// occupies cells [X, X+W] × [Y, Y+H].
type Room struct {
	X, Y, W, H int
}

// Bounds returns the room's footprint as a half-open rectangle.
func (r Room) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W+1, r.Y+r.H+1)
}

// PlaceRooms samples up to gen.Attempts candidate rooms, accepting each one
// whose buffered footprint avoids every room accepted so far, and stamps
// accepted footprints into the grid. Rooms are returned in acceptance
// order.
func (gen *Generator) PlaceRooms(g *grid.Grid) []Room {
	var rooms []Room
	for i := 0; i < gen.Attempts; i++ {
		r, ok := gen.sampleRoom(g.Bounds())
		if !ok {
			continue
		}
		if overlapsAny(r, rooms, gen.RoomBuffer) {
			continue
		}
		rooms = append(rooms, r)
		stamp(g, r)
	}
	return rooms
}

// sampleRoom draws a room with extents in [MinRoomExtent, MaxRoomExtent]
// positioned uniformly so the footprint stays inside the grid with a
// 1-cell border; ok is false when the grid is too small for the sampled
// extents.
func (gen *Generator) sampleRoom(bounds image.Rectangle) (_ Room, ok bool) {
	span := gen.MaxRoomExtent - gen.MinRoomExtent + 1
	w := gen.MinRoomExtent + gen.rng.Intn(span)
	h := gen.MinRoomExtent + gen.rng.Intn(span)

	// x ranges over [1, Dx-2-w] so cells X..X+W keep a 1-cell border.
	nx := bounds.Dx() - w - 2
	ny := bounds.Dy() - h - 2
	if nx < 1 || ny < 1 {
		return Room{}, false
	}
	return Room{
		X: bounds.Min.X + 1 + gen.rng.Intn(nx),
		Y: bounds.Min.Y + 1 + gen.rng.Intn(ny),
		W: w,
		H: h,
	}, true
}

func overlapsAny(r Room, rooms []Room, buffer int) bool {
	rb := r.Bounds().Inset(-buffer)
	for _, other := range rooms {
		if rb.Overlaps(other.Bounds()) {
			return true
		}
	}
	return false
}

func stamp(g *grid.Grid, r Room) {
	b := r.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g.Mark(image.Pt(x, y), grid.Room)
		}
	}
}
