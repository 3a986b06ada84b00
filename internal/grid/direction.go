package grid

import "image"

// Direction identifies one of the four cardinal directions.
type Direction uint8

const (
	DirNorth Direction = iota
	DirSouth
	DirEast
	DirWest
)

// Directions lists all four cardinals in declaration order; callers that
// need an unbiased order should shuffle a copy or walk a permutation.
var Directions = [4]Direction{DirNorth, DirSouth, DirEast, DirWest}

var (
	dirBits   = [4]Cell{North, South, East, West}
	dirDeltas = [4]image.Point{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}
	dirOpps   = [4]Direction{DirSouth, DirNorth, DirWest, DirEast}
	dirNames  = [4]string{"north", "south", "east", "west"}
)

// Bit returns the cell flag for a passage open in this direction.
func (d Direction) Bit() Cell { return dirBits[d] }

// Delta returns the unit offset to the neighboring cell in this direction.
func (d Direction) Delta() image.Point { return dirDeltas[d] }

// Opposite returns the reciprocal direction (N↔S, E↔W).
func (d Direction) Opposite() Direction { return dirOpps[d] }

func (d Direction) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return "invalid"
}
