package terminal

import (
	"strings"

	"github.com/gookit/color"
	"golang.org/x/text/width"
)

// DisplayWidth counts terminal columns, two for East Asian wide runes.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

// Center left-pads s so it sits in the middle of a line cols wide.
// Padding is (cols - len) / 2, rounded down; none when s does not fit.
func Center(s string, cols int) string {
	l := DisplayWidth(s)
	if l >= cols {
		return s
	}
	return strings.Repeat(" ", (cols-l)/2) + s
}

// Blank returns spaces covering exactly what Center(s, cols) occupies.
func Blank(s string, cols int) string {
	return strings.Repeat(" ", DisplayWidth(Center(s, cols)))
}

// Colorize wraps s in the SGR code for c followed by a reset.
// s is returned plain when color output is disabled or unsupported.
func Colorize(c color.Color, s string) string {
	return color.RenderCode(c.Code(), s)
}
