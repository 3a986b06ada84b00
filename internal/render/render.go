// Package render maps dungeon cell flags onto terminal glyphs and colors.
package render

import (
	"image"
	"image/color"
	"io"

	"github.com/borkshop/grotto/internal/display"
	"github.com/borkshop/grotto/internal/grid"
)

// corridorGlyphs is indexed by the 4-bit passage mask (N=1, S=2, E=4, W=8);
// a corridor cell's glyph is the box-drawing join of its open directions.
var corridorGlyphs = [16]rune{
	' ', '╵', '╷', '│',
	'╶', '└', '┌', '├',
	'╴', '┘', '┐', '┤',
	'─', '┴', '┬', '┼',
}

var (
	corridorColor = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	roomColor     = color.RGBA{0x70, 0xa8, 0x70, 0xff}
	roomFloor     = color.RGBA{0x20, 0x30, 0x20, 0xff}
	doorColor     = color.RGBA{0xe0, 0xc0, 0x40, 0xff}
	voidDoorColor = color.RGBA{0xc0, 0x40, 0x40, 0xff}
)

// Glyph returns the display rune for a single cell.
func Glyph(c grid.Cell) rune {
	switch {
	case c.HasAny(grid.Door):
		return '+'
	case c.HasAny(grid.Room):
		return '·'
	default:
		return corridorGlyphs[c&(grid.North|grid.South|grid.East|grid.West)]
	}
}

// Draw paints the whole grid into the frame. Stranded doors, ones whose
// passage was pruned away or whose far side is void, are drawn in a warning
// color; the neighbor peek goes through the grid's bounds-checked accessor,
// so edge cells never read out of range.
func Draw(f *display.Frame, g *grid.Grid) {
	bounds := g.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pt := image.Pt(x, y)
			c := g.At(pt)
			glyph := Glyph(c)

			var fg, bg color.RGBA
			switch {
			case c.HasAny(grid.Door):
				fg, bg = doorColor, roomFloor
				if d, ok := c.Exit(); !ok || g.At(pt.Add(d.Delta())) == 0 {
					fg = voidDoorColor
				}
			case c.HasAny(grid.Room):
				fg, bg = roomColor, roomFloor
			case c != 0:
				fg = corridorColor
			}

			f.Set(x, y, glyph, fg, bg)
		}
	}
}

// Write renders the grid to w in one shot.
func Write(w io.Writer, g *grid.Grid, colors bool) error {
	f := display.New(g.Bounds())
	Draw(f, g)
	return f.Render(w, colors)
}
