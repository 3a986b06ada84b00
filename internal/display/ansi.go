package display

import (
	"image/color"
	"strconv"
)

var byteStrings [256]string

func init() {
	for i := range byteStrings {
		byteStrings[i] = ";" + strconv.Itoa(i)
	}
}

var (
	fgCache = make(map[color.RGBA]string, 64)
	bgCache = make(map[color.RGBA]string, 64)
)

func appendFg(buf []byte, c color.RGBA) []byte {
	s, ok := fgCache[c]
	if !ok {
		s = "\033[38;2" + byteStrings[c.R] + byteStrings[c.G] + byteStrings[c.B] + "m"
		fgCache[c] = s
	}
	return append(buf, s...)
}

func appendBg(buf []byte, c color.RGBA) []byte {
	s, ok := bgCache[c]
	if !ok {
		s = "\033[48;2" + byteStrings[c.R] + byteStrings[c.G] + byteStrings[c.B] + "m"
		bgCache[c] = s
	}
	return append(buf, s...)
}
