package render

// Buffer is a composed block of display runes, stored flat row-major:
// cells[row*width + col]. Height equals the glyph size, width equals
// len(content) * glyph size. A buffer is built fresh per render and holds no
// inter-character spacing; spacing is a display-time concern
type Buffer struct {
	cells  []rune
	width  int
	height int
}

// NewBuffer creates a buffer of the given dimensions filled with spaces
func NewBuffer(width, height int) *Buffer {
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &Buffer{
		cells:  cells,
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in cells
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the buffer height in cells
func (b *Buffer) Height() int {
	return b.height
}

// At returns the rune at (row, col)
func (b *Buffer) At(row, col int) (rune, bool) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return 0, false
	}
	return b.cells[row*b.width+col], true
}

// Row returns a copy of one buffer row
func (b *Buffer) Row(row int) []rune {
	if row < 0 || row >= b.height {
		return nil
	}
	line := make([]rune, b.width)
	copy(line, b.cells[row*b.width:(row+1)*b.width])
	return line
}

// set writes one cell; out-of-bounds writes are dropped
func (b *Buffer) set(row, col int, r rune) {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return
	}
	b.cells[row*b.width+col] = r
}
