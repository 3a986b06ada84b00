// Package display models a one-shot terminal frame as a glyph layer plus
// foreground and background color layers, and renders it with ANSI escape
// sequences.
package display

import (
	"image"
	"image/color"
	"io"
	"unicode/utf8"
)

// Frame holds one glyph and one foreground/background color pair per cell.
// A zero glyph renders as a space.
type Frame struct {
	Glyphs []rune
	Fore   []color.RGBA
	Back   []color.RGBA
	Stride int
	Rect   image.Rectangle
}

// New returns an empty frame with the given bounding rectangle.
func New(r image.Rectangle) *Frame {
	n := r.Dx() * r.Dy()
	return &Frame{
		Glyphs: make([]rune, n),
		Fore:   make([]color.RGBA, n),
		Back:   make([]color.RGBA, n),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// Bounds returns the frame's bounding rectangle.
func (f *Frame) Bounds() image.Rectangle { return f.Rect }

// Set overwrites the cell at (x, y); out-of-bounds writes are dropped.
func (f *Frame) Set(x, y int, glyph rune, fg, bg color.RGBA) {
	if !(image.Point{x, y}.In(f.Rect)) {
		return
	}
	i := f.offset(x, y)
	f.Glyphs[i] = glyph
	f.Fore[i] = fg
	f.Back[i] = bg
}

// At returns the glyph and colors at (x, y), zero values out of bounds.
func (f *Frame) At(x, y int) (glyph rune, fg, bg color.RGBA) {
	if !(image.Point{x, y}.In(f.Rect)) {
		return 0, color.RGBA{}, color.RGBA{}
	}
	i := f.offset(x, y)
	return f.Glyphs[i], f.Fore[i], f.Back[i]
}

func (f *Frame) offset(x, y int) int {
	return (y-f.Rect.Min.Y)*f.Stride + (x - f.Rect.Min.X)
}

// Render writes the frame row by row. Color escapes are emitted only when a
// cell's colors differ from the running cursor state, and every row ends
// with an attribute reset so colors never bleed past the frame.
func (f *Frame) Render(w io.Writer, colors bool) error {
	buf := make([]byte, 0, f.Stride*8)
	for y := f.Rect.Min.Y; y < f.Rect.Max.Y; y++ {
		// Attributes reset at each row start; zero means unset.
		var fg, bg color.RGBA
		for x := f.Rect.Min.X; x < f.Rect.Max.X; x++ {
			g, cfg, cbg := f.At(x, y)
			if colors {
				if cfg != fg {
					buf = appendFg(buf, cfg)
					fg = cfg
				}
				if cbg != bg {
					buf = appendBg(buf, cbg)
					bg = cbg
				}
			}
			if g == 0 {
				g = ' '
			}
			buf = utf8.AppendRune(buf, g)
		}
		if colors {
			buf = append(buf, "\033[m"...)
		}
		buf = append(buf, '\n')
		if _, err := w.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	return nil
}
