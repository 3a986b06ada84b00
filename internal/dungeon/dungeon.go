// Package dungeon generates rectangular-room-and-corridor dungeon layouts
// over a bit-flagged grid.
//
// Generation runs in four stages: room placement, growing-tree corridor
// carving, door connection, and dead-end pruning. Each stage mutates the
// grid in place and hands it to the next; the grid is consistent (every
// open passage bit mirrored by its reciprocal) after every stage.
package dungeon

import (
	"math/rand"

	"github.com/borkshop/grotto/internal/grid"
)

const (
	// DefaultAttempts caps how many room placements are tried.
	DefaultAttempts = 1000

	// DefaultMinRoomExtent and DefaultMaxRoomExtent bound the sampled room
	// width and height. Footprints are inclusive, so an extent of 2 spans
	// three cells.
	DefaultMinRoomExtent = 2
	DefaultMaxRoomExtent = 3

	// DefaultRoomBuffer is the minimum clearance kept between any two room
	// footprints.
	DefaultRoomBuffer = 2
)

// Generator produces dungeon layouts. All randomness flows through the
// injected rand source, so a fixed seed reproduces a layout exactly.
type Generator struct {
	rng *rand.Rand

	// Attempts caps room placement trials; density is probabilistic, not
	// guaranteed, and zero accepted rooms is a valid (degenerate) outcome.
	Attempts int

	// MinRoomExtent and MaxRoomExtent bound each sampled room dimension.
	MinRoomExtent int
	MaxRoomExtent int

	// RoomBuffer is the clearance enforced between room footprints.
	RoomBuffer int
}

// New returns a Generator drawing from the given rand source.
func New(rng *rand.Rand) *Generator {
	return &Generator{
		rng:           rng,
		Attempts:      DefaultAttempts,
		MinRoomExtent: DefaultMinRoomExtent,
		MaxRoomExtent: DefaultMaxRoomExtent,
		RoomBuffer:    DefaultRoomBuffer,
	}
}

// NewSeeded returns a Generator with its own rand source seeded as given.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)))
}

// Generate runs all four stages over a fresh width×height grid, returning
// the pruned grid and the accepted rooms. Dimensions too small to fit any
// room still terminate, yielding few or zero rooms.
func (gen *Generator) Generate(w, h int) (*grid.Grid, []Room) {
	g := grid.New(w, h)
	rooms := gen.PlaceRooms(g)
	gen.Carve(g)
	gen.Connect(g, rooms)
	Prune(g)
	return g, rooms
}
