package glyph

import (
	"bufio"
	"fmt"
	"io"
)

// Table holds one glyph per alphabet character, all of a single size.
// Tables are immutable after load and safe for shared read-only use
type Table struct {
	size   Size
	glyphs []Glyph
}

// Size returns the glyph size the table was loaded for
func (t *Table) Size() Size {
	return t.size
}

// Lookup returns the glyph for r
func (t *Table) Lookup(r rune) (Glyph, error) {
	idx, ok := Index(r)
	if !ok {
		return Glyph{}, &UnsupportedCharError{Char: r}
	}
	return t.glyphs[idx], nil
}

// parse reads a font resource in its interleaved layout: for each row index,
// for each alphabet character in order, size marks. The layout matches the
// shipped font files mark for mark; glyphs are reassembled from the
// interleaved rows
func parse(r io.Reader, size Size) (*Table, error) {
	s := int(size)
	glyphs := make([]Glyph, len(Alphabet))
	for i := range glyphs {
		glyphs[i] = Glyph{size: s, marks: make([]bool, s*s)}
	}

	scan := bufio.NewScanner(r)
	scan.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !scan.Scan() {
			if err := scan.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return scan.Text(), nil
	}

	for row := 0; row < s; row++ {
		for ci := range glyphs {
			for col := 0; col < s; col++ {
				tok, err := next()
				if err != nil {
					return nil, fmt.Errorf("row %d, glyph %q: %w", row, Alphabet[ci], err)
				}
				switch tok {
				case "1":
					glyphs[ci].marks[row*s+col] = true
				case "0":
					// blank
				default:
					return nil, fmt.Errorf("row %d, glyph %q: invalid mark %q", row, Alphabet[ci], tok)
				}
			}
		}
	}

	if scan.Scan() {
		return nil, fmt.Errorf("trailing data after %d marks", len(Alphabet)*s*s)
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}

	return &Table{size: size, glyphs: glyphs}, nil
}
