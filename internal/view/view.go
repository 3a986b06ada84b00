// Package view runs an interactive termbox session around the generator:
// each keypress re-rolls a layout, and the pre-prune grid can be toggled in
// to compare against the pruned result.
package view

import (
	"image"

	termbox "github.com/nsf/termbox-go"

	"github.com/borkshop/grotto/internal/grid"
	"github.com/borkshop/grotto/internal/render"
)

// Regen produces a fresh layout pair: the grid as carved and connected, and
// the same layout after pruning.
type Regen func() (carved, pruned *grid.Grid)

// Run opens a termbox screen and loops until the user quits with q or ESC.
// Space or r regenerates; p toggles between the pruned and unpruned grids.
func Run(regen Regen) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	carved, pruned := regen()
	showPruned := true

	for {
		g := pruned
		if !showPruned {
			g = carved
		}
		if err := draw(g); err != nil {
			return err
		}

		switch ev := termbox.PollEvent(); ev.Type {
		case termbox.EventKey:
			switch {
			case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
				return nil
			case ev.Ch == 'p':
				showPruned = !showPruned
			case ev.Ch == 'r' || ev.Key == termbox.KeySpace:
				carved, pruned = regen()
			}
		case termbox.EventError:
			return ev.Err
		}
	}
}

func draw(g *grid.Grid) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return err
	}
	bounds := g.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := g.At(image.Pt(x, y))
			termbox.SetCell(x-bounds.Min.X, y-bounds.Min.Y, render.Glyph(c), attr(c), termbox.ColorDefault)
		}
	}
	return termbox.Flush()
}

func attr(c grid.Cell) termbox.Attribute {
	switch {
	case c.HasAny(grid.Door):
		return termbox.ColorYellow
	case c.HasAny(grid.Room):
		return termbox.ColorGreen
	default:
		return termbox.ColorWhite
	}
}
