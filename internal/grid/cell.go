// Package grid models a dungeon as a dense 2d field of bit-flagged cells.
//
// Each cell packs four passage bits, one per cardinal direction, plus room
// and door membership into a single small integer. A zero cell is un-carved,
// impassable void. Passage bits are always reciprocal: a cell open to the
// east has a neighbor open to the west.
package grid

import "math/bits"

// Cell is a bitmask over the six per-cell flags.
type Cell uint8

const (
	// North through West mark an open passage in that direction.
	North Cell = 1 << iota
	South
	East
	West

	// Room marks a cell inside a placed room's footprint.
	Room

	// Door marks the single cell linking a room to the corridor network.
	Door
)

// dirMask covers just the four passage bits.
const dirMask = North | South | East | West

// HasAll returns true if every flag in mask is set.
func (c Cell) HasAll(mask Cell) bool { return c&mask == mask }

// HasAny returns true if at least one flag in mask is set.
func (c Cell) HasAny(mask Cell) bool { return c&mask != 0 }

// Exits counts the cell's open passage directions.
func (c Cell) Exits() int {
	return bits.OnesCount8(uint8(c & dirMask))
}

// Exit returns the cell's sole open direction; ok is false unless the cell
// has exactly one passage bit set.
func (c Cell) Exit() (_ Direction, ok bool) {
	if c.Exits() != 1 {
		return 0, false
	}
	for _, d := range Directions {
		if c.HasAll(d.Bit()) {
			return d, true
		}
	}
	return 0, false
}
