// Package pseudotext renders short strings as large pseudographic blocks on a
// character-grid surface, using the shipped 5x5 and 7x7 bitmap fonts
package pseudotext

import (
	"fmt"

	"github.com/lixenwraith/pseudotext/glyph"
	"github.com/lixenwraith/pseudotext/render"
	"github.com/lixenwraith/pseudotext/terminal"
)

// ValidationError reports the first unsupported character in a content
// string. The operation that produced it left no state behind
type ValidationError struct {
	Char     rune
	Position int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("content invalid at position %d: character %q is unavailable", e.Position, e.Char)
}

// Text owns the render configuration for one pseudographic block. The zero
// of each field is replaced with a usable default by New
type Text struct {
	content string
	ink     rune
	fill    rune
	size    glyph.Size
	color   terminal.Color
	tables  *glyph.Cache
}

// New creates a Text with empty content and default configuration:
// '#' ink, space fill, small glyphs, bright-white color
func New() *Text {
	return &Text{
		ink:    '#',
		fill:   ' ',
		size:   glyph.SizeSmall,
		color:  terminal.BrightWhite,
		tables: glyph.DefaultCache,
	}
}

// NewWithConfig creates a fully configured Text. Unlike the setters-only
// path there is no previous valid state to keep, so invalid content rejects
// the whole construction
func NewWithConfig(content string, ink, fill rune, size glyph.Size, color terminal.Color) (*Text, error) {
	t := New()
	t.ink = ink
	t.fill = fill
	t.size = size
	t.color = color
	if err := t.SetContent(content); err != nil {
		return nil, err
	}
	return t, nil
}

// SetContent validates s against the supported alphabet and stores it. On
// the first unsupported character the call fails and the previous content is
// retained untouched
func (t *Text) SetContent(s string) error {
	for i, r := range s {
		if !glyph.Supported(r) {
			return &ValidationError{Char: r, Position: i}
		}
	}
	t.content = s
	return nil
}

// Content returns the current validated content
func (t *Text) Content() string {
	return t.content
}

// SetInkRune sets the rune substituted for ink marks
func (t *Text) SetInkRune(r rune) {
	t.ink = r
}

// SetFillRune sets the rune substituted for blank marks and used as
// inter-character spacing
func (t *Text) SetFillRune(r rune) {
	t.fill = r
}

// SetSize selects the glyph size preset
func (t *Text) SetSize(size glyph.Size) {
	t.size = size
}

// SetColor sets the foreground color the block is drawn with
func (t *Text) SetColor(c terminal.Color) {
	t.color = c
}

// SetTables overrides the glyph table source, e.g. a cache configured with a
// font directory
func (t *Text) SetTables(c *glyph.Cache) {
	t.tables = c
}

// Describe returns a deterministic dump of the current configuration, for
// diagnostics and tests
func (t *Text) Describe() string {
	return fmt.Sprintf("(String: %s, TextChar: %c, BackgroundChar: %c, FontSize: %d, TextColor: %d)",
		t.content, t.ink, t.fill, int(t.size), int(t.color))
}

// Render draws the configured content on surface at origin: glyph table for
// the current size, composition into a flat buffer, then the surface write.
// Errors from any step propagate unchanged; a display failure may leave a
// partially drawn block
func (t *Text) Render(surface terminal.Surface, at render.Origin) error {
	table, err := t.tables.Table(t.size)
	if err != nil {
		return err
	}
	buf, err := render.Compose(t.content, table, t.ink, t.fill)
	if err != nil {
		return err
	}
	return render.NewWriter(surface).Write(buf, at, t.color, t.fill)
}

// RenderOnce renders content in a single call through a transient Text,
// with the same validation and failure modes as the instance path. Nothing
// reaches the surface when validation fails
func RenderOnce(surface terminal.Surface, content string, ink, fill rune, size glyph.Size, color terminal.Color, at render.Origin) error {
	t, err := NewWithConfig(content, ink, fill, size, color)
	if err != nil {
		return err
	}
	return t.Render(surface, at)
}
