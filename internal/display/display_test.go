package display_test

import (
	"bytes"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/grotto/internal/display"
)

var (
	red  = color.RGBA{0xff, 0, 0, 0xff}
	blue = color.RGBA{0, 0, 0xff, 0xff}
)

func TestFrameSetAt(t *testing.T) {
	f := display.New(image.Rect(0, 0, 3, 2))

	f.Set(1, 1, '@', red, blue)
	g, fg, bg := f.At(1, 1)
	assert.Equal(t, '@', g)
	assert.Equal(t, red, fg)
	assert.Equal(t, blue, bg)

	// Out-of-bounds access is inert.
	f.Set(3, 0, 'x', red, blue)
	g, _, _ = f.At(3, 0)
	assert.Equal(t, rune(0), g)
}

func TestRenderMonochrome(t *testing.T) {
	f := display.New(image.Rect(0, 0, 4, 3))
	f.Set(0, 0, 'a', red, blue)
	f.Set(3, 2, 'z', red, blue)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, false))

	out := buf.String()
	assert.NotContains(t, out, "\033", "monochrome render must not emit escapes")
	assert.Equal(t, []string{"a   ", "    ", "   z", ""}, strings.Split(out, "\n"))
}

func TestRenderColors(t *testing.T) {
	f := display.New(image.Rect(0, 0, 2, 1))
	f.Set(0, 0, 'a', red, blue)
	f.Set(1, 0, 'b', red, blue)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, true))
	out := buf.String()

	assert.Contains(t, out, "\033[38;2;255;0;0m")
	assert.Contains(t, out, "\033[48;2;0;0;255m")
	// The color run covers both cells with a single pair of escapes.
	assert.Equal(t, 1, strings.Count(out, "\033[38;2"))
	// Every row ends with a reset before its newline.
	assert.True(t, strings.HasSuffix(out, "\033[m\n"))
}
