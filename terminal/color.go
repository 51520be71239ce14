package terminal

// Color is one entry of the 16-value console palette. The numeric encoding
// follows the classic console attribute order (Blue=1, Red=4), which is what
// the font demo files and ColorAttr packing were written against
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Yellow
	White
	BrightBlack
	BrightBlue
	BrightGreen
	BrightCyan
	BrightRed
	BrightMagenta
	BrightYellow
	BrightWhite
)

// Bright reports whether c is one of the high-intensity palette entries
func (c Color) Bright() bool {
	return c >= BrightBlack && c <= BrightWhite
}

// ColorAttr packs a foreground and background color into one attribute byte,
// background in the high nibble
type ColorAttr uint8

// Attr builds a color attribute from foreground and background colors
func Attr(fg, bg Color) ColorAttr {
	return ColorAttr(bg&0x0F)<<4 | ColorAttr(fg&0x0F)
}

// Fg builds an attribute with the given foreground over a black background
func Fg(fg Color) ColorAttr {
	return Attr(fg, Black)
}

// DefaultAttr is the attribute every render resets the surface to:
// bright-white foreground on black background
var DefaultAttr = Attr(BrightWhite, Black)

// Foreground extracts the foreground color
func (a ColorAttr) Foreground() Color {
	return Color(a & 0x0F)
}

// Background extracts the background color
func (a ColorAttr) Background() Color {
	return Color(a >> 4)
}

// ansiBase maps the console palette order onto the ANSI SGR color order
// (console counts Blue=1, ANSI counts Red=1)
var ansiBase = [8]uint8{0, 4, 2, 6, 1, 5, 3, 7}

// ansiIndex returns the ANSI palette index (0-15) for c
func (c Color) ansiIndex() uint8 {
	idx := ansiBase[c&0x07]
	if c.Bright() {
		idx += 8
	}
	return idx
}

// sgrFg returns the SGR parameter selecting c as foreground (30-37, 90-97)
func (c Color) sgrFg() int {
	idx := c.ansiIndex()
	if idx < 8 {
		return 30 + int(idx)
	}
	return 90 + int(idx-8)
}

// sgrBg returns the SGR parameter selecting c as background (40-47, 100-107)
func (c Color) sgrBg() int {
	idx := c.ansiIndex()
	if idx < 8 {
		return 40 + int(idx)
	}
	return 100 + int(idx-8)
}
