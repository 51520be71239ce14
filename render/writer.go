package render

import (
	"github.com/lixenwraith/pseudotext/terminal"
)

// Origin is the top-left surface position a block is rendered at
type Origin struct {
	Row int
	Col int
}

// Writer pushes composed buffers onto a display surface
type Writer struct {
	surface terminal.Surface
}

// NewWriter creates a writer over the given surface
func NewWriter(surface terminal.Surface) *Writer {
	return &Writer{surface: surface}
}

// Write draws buf at origin with the given foreground color. After every
// glyph-width group of columns one extra fill rune is written as
// inter-character spacing; the spacing exists only on the surface, never in
// the buffer. The active color attribute is restored to terminal.DefaultAttr
// once all rows are written, then the surface is flushed.
//
// A surface failure aborts immediately and propagates; the surface may be
// left partially drawn and with a non-default attribute
func (w *Writer) Write(buf *Buffer, origin Origin, color terminal.Color, fill rune) error {
	if err := w.surface.SetColor(terminal.Fg(color)); err != nil {
		return err
	}

	interval := buf.Height() // buffer height is the glyph size by construction
	for row := 0; row < buf.Height(); row++ {
		if err := w.surface.SetCursor(origin.Row+row, origin.Col); err != nil {
			return err
		}
		for col := 0; col < buf.Width(); col++ {
			cell, _ := buf.At(row, col)
			if err := w.surface.WriteRune(cell); err != nil {
				return err
			}
			if interval > 0 && (col+1)%interval == 0 {
				if err := w.surface.WriteRune(fill); err != nil {
					return err
				}
			}
		}
		if err := w.surface.WriteNewline(); err != nil {
			return err
		}
	}

	if err := w.surface.SetColor(terminal.DefaultAttr); err != nil {
		return err
	}
	return w.surface.Flush()
}
