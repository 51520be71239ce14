package terminal

import "fmt"

// Surface is the abstract character-grid display target. It owns cursor
// position and active color attribute as shared mutable state; callers that
// render concurrently must serialize access themselves.
//
// Implementations: AnsiSurface (escape sequences over an io.Writer),
// ScreenSurface (tcell), Recorder (capture double for tests)
type Surface interface {
	// SetColor replaces the active color attribute for subsequent writes
	SetColor(attr ColorAttr) error

	// SetCursor moves the cursor to (row, col), 0-indexed
	SetCursor(row, col int) error

	// WriteRune writes r at the cursor and advances the cursor one column
	WriteRune(r rune) error

	// WriteNewline moves the cursor to the start of the next row
	WriteNewline() error

	// Flush pushes buffered output to the underlying display
	Flush() error
}

// DisplayError reports a failed surface write. Display failures are fatal to
// the render call that hit them; the surface may be left partially drawn
type DisplayError struct {
	Op  string
	Err error
}

func (e *DisplayError) Error() string {
	return fmt.Sprintf("display %s: %v", e.Op, e.Err)
}

func (e *DisplayError) Unwrap() error {
	return e.Err
}
