package terminal

import (
	"bufio"
	"io"
)

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J\x1b[H")
	newline  = []byte("\r\n")
)

// AnsiSurface renders onto any io.Writer with ANSI escape sequences. Output
// is buffered; Flush drains the buffer to the terminal.
//
// bufio errors are sticky, so checking the last write of each operation is
// enough to catch a failure anywhere in the sequence
type AnsiSurface struct {
	w *bufio.Writer
}

// NewAnsiSurface wraps w, typically os.Stdout
func NewAnsiSurface(w io.Writer) *AnsiSurface {
	return &AnsiSurface{w: bufio.NewWriterSize(w, 8192)}
}

// writeInt writes an integer without allocation
// Terminal coordinates and SGR parameters stay well under 1000
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	w.WriteByte(byte(n/100) + '0')
	w.WriteByte(byte(n/10%10) + '0')
	w.WriteByte(byte(n%10) + '0')
}

// SetColor implements Surface
func (s *AnsiSurface) SetColor(attr ColorAttr) error {
	s.w.Write(csi)
	writeInt(s.w, attr.Foreground().sgrFg())
	s.w.WriteByte(';')
	writeInt(s.w, attr.Background().sgrBg())
	if err := s.w.WriteByte('m'); err != nil {
		return &DisplayError{Op: "set color", Err: err}
	}
	return nil
}

// SetCursor implements Surface (0-indexed; the wire format is 1-indexed)
func (s *AnsiSurface) SetCursor(row, col int) error {
	s.w.Write(csi)
	writeInt(s.w, row+1)
	s.w.WriteByte(';')
	writeInt(s.w, col+1)
	if err := s.w.WriteByte('H'); err != nil {
		return &DisplayError{Op: "set cursor", Err: err}
	}
	return nil
}

// WriteRune implements Surface
func (s *AnsiSurface) WriteRune(r rune) error {
	if _, err := s.w.WriteRune(r); err != nil {
		return &DisplayError{Op: "write", Err: err}
	}
	return nil
}

// WriteNewline implements Surface
func (s *AnsiSurface) WriteNewline() error {
	if _, err := s.w.Write(newline); err != nil {
		return &DisplayError{Op: "write", Err: err}
	}
	return nil
}

// Flush implements Surface
func (s *AnsiSurface) Flush() error {
	if err := s.w.Flush(); err != nil {
		return &DisplayError{Op: "flush", Err: err}
	}
	return nil
}

// Clear erases the screen and homes the cursor
func (s *AnsiSurface) Clear() error {
	if _, err := s.w.Write(csiClear); err != nil {
		return &DisplayError{Op: "clear", Err: err}
	}
	return nil
}

// Reset emits SGR0, dropping any active color attribute
func (s *AnsiSurface) Reset() error {
	if _, err := s.w.Write(csiReset); err != nil {
		return &DisplayError{Op: "reset", Err: err}
	}
	return nil
}
