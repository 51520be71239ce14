package render

import (
	"github.com/lixenwraith/pseudotext/glyph"
)

// Compose maps content through the glyph table into a single flat buffer.
// Each character contributes a size-wide column block, ink marks become ink,
// blank marks become fill. Characters land contiguously with no padding.
//
// Content is expected to be pre-validated; an unsupported character here
// still fails cleanly with the table's UnsupportedCharError
func Compose(content string, table *glyph.Table, ink, fill rune) (*Buffer, error) {
	size := int(table.Size())
	buf := NewBuffer(len(content)*size, size)

	// Validated content is single-byte, so byte indexing is positional
	for i := 0; i < len(content); i++ {
		g, err := table.Lookup(rune(content[i]))
		if err != nil {
			return nil, err
		}
		for row := 0; row < size; row++ {
			for col := 0; col < size; col++ {
				cell := fill
				if g.Ink(row, col) {
					cell = ink
				}
				buf.set(row, i*size+col, cell)
			}
		}
	}
	return buf, nil
}
