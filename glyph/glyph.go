package glyph

// Size selects one of the two shipped font presets
type Size int

const (
	SizeSmall Size = 5
	SizeBig   Size = 7
)

// Valid returns true for a supported preset
func (s Size) Valid() bool {
	return s == SizeSmall || s == SizeBig
}

// Alphabet is the full supported character set, in font resource order.
// The order is a compatibility contract with the font files: glyph i in the
// resource belongs to Alphabet[i]
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ .,!?0123456789"

// charIndex maps an ASCII code to its position in Alphabet (-1 = unsupported)
var charIndex [128]int8

func init() {
	for i := range charIndex {
		charIndex[i] = -1
	}
	for i, r := range Alphabet {
		charIndex[r] = int8(i)
	}
}

// Index returns the alphabet position of r
func Index(r rune) (int, bool) {
	if r < 0 || r >= 128 || charIndex[r] < 0 {
		return 0, false
	}
	return int(charIndex[r]), true
}

// Supported returns true if r has a glyph in the shipped fonts
func Supported(r rune) bool {
	_, ok := Index(r)
	return ok
}

// Glyph is one character's immutable bitmap: a size×size grid of ink/blank
// marks, stored flat row-major
type Glyph struct {
	size  int
	marks []bool
}

// Size returns the side length of the glyph grid
func (g Glyph) Size() int {
	return g.size
}

// Ink reports whether the cell at (row, col) is an ink mark.
// Out-of-bounds cells read as blank
func (g Glyph) Ink(row, col int) bool {
	if row < 0 || row >= g.size || col < 0 || col >= g.size {
		return false
	}
	return g.marks[row*g.size+col]
}
