package terminal

import (
	"github.com/gdamore/tcell/v2"
)

// ScreenSurface adapts a tcell.Screen to the Surface interface. tcell owns
// the real terminal state; this adapter only tracks the logical cursor and
// maps the console palette onto tcell styles
type ScreenSurface struct {
	screen tcell.Screen
	style  tcell.Style
	row    int
	col    int
}

// NewScreenSurface wraps an initialized tcell.Screen
func NewScreenSurface(screen tcell.Screen) *ScreenSurface {
	return &ScreenSurface{
		screen: screen,
		style:  styleFor(DefaultAttr),
	}
}

// styleFor converts a packed color attribute to a tcell style. The console
// palette order differs from ANSI order, so colors go through ansiIndex
func styleFor(attr ColorAttr) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(attr.Foreground().ansiIndex()))).
		Background(tcell.PaletteColor(int(attr.Background().ansiIndex())))
}

// SetColor implements Surface
func (s *ScreenSurface) SetColor(attr ColorAttr) error {
	s.style = styleFor(attr)
	return nil
}

// SetCursor implements Surface
func (s *ScreenSurface) SetCursor(row, col int) error {
	s.row = row
	s.col = col
	return nil
}

// WriteRune implements Surface
func (s *ScreenSurface) WriteRune(r rune) error {
	s.screen.SetContent(s.col, s.row, r, nil, s.style)
	s.col++
	return nil
}

// WriteNewline implements Surface
func (s *ScreenSurface) WriteNewline() error {
	s.row++
	s.col = 0
	return nil
}

// Flush implements Surface
func (s *ScreenSurface) Flush() error {
	s.screen.Show()
	return nil
}
