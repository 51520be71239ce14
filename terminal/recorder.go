package terminal

import "errors"

// OpKind tags one recorded surface operation
type OpKind uint8

const (
	OpSetColor OpKind = iota
	OpSetCursor
	OpWriteRune
	OpNewline
	OpFlush
)

// Op is one recorded surface call
type Op struct {
	Kind OpKind
	Attr ColorAttr
	Row  int
	Col  int
	Rune rune
}

// cellKey addresses one recorded grid cell
type cellKey struct {
	Row, Col int
}

// RecordedCell is what a write left at a grid position
type RecordedCell struct {
	Rune rune
	Attr ColorAttr
}

// Recorder is a Surface double that captures every operation instead of
// touching a terminal. It mirrors real surface behavior: the cursor advances
// on writes and the active attribute applies to every written rune.
//
// FailAfter, when positive, makes the n-th operation (1-based) fail with a
// DisplayError, for exercising the fatal-write path
type Recorder struct {
	Ops       []Op
	FailAfter int

	attr  ColorAttr
	row   int
	col   int
	cells map[cellKey]RecordedCell
}

// NewRecorder creates an empty recorder with the default attribute active
func NewRecorder() *Recorder {
	return &Recorder{
		attr:  DefaultAttr,
		cells: make(map[cellKey]RecordedCell),
	}
}

var errInjected = errors.New("injected failure")

// record appends op and applies fault injection
func (r *Recorder) record(op Op) error {
	r.Ops = append(r.Ops, op)
	if r.FailAfter > 0 && len(r.Ops) >= r.FailAfter {
		return &DisplayError{Op: "recorder", Err: errInjected}
	}
	return nil
}

// SetColor implements Surface
func (r *Recorder) SetColor(attr ColorAttr) error {
	r.attr = attr
	return r.record(Op{Kind: OpSetColor, Attr: attr})
}

// SetCursor implements Surface
func (r *Recorder) SetCursor(row, col int) error {
	r.row = row
	r.col = col
	return r.record(Op{Kind: OpSetCursor, Row: row, Col: col})
}

// WriteRune implements Surface
func (r *Recorder) WriteRune(ch rune) error {
	op := Op{Kind: OpWriteRune, Row: r.row, Col: r.col, Rune: ch, Attr: r.attr}
	r.cells[cellKey{Row: r.row, Col: r.col}] = RecordedCell{Rune: ch, Attr: r.attr}
	r.col++
	return r.record(op)
}

// WriteNewline implements Surface
func (r *Recorder) WriteNewline() error {
	r.row++
	r.col = 0
	return r.record(Op{Kind: OpNewline})
}

// Flush implements Surface
func (r *Recorder) Flush() error {
	return r.record(Op{Kind: OpFlush})
}

// Attr returns the attribute currently active on the surface
func (r *Recorder) Attr() ColorAttr {
	return r.attr
}

// CellAt returns what was written at (row, col), if anything
func (r *Recorder) CellAt(row, col int) (RecordedCell, bool) {
	c, ok := r.cells[cellKey{Row: row, Col: col}]
	return c, ok
}

// Writes returns only the rune-write operations, in order
func (r *Recorder) Writes() []Op {
	var writes []Op
	for _, op := range r.Ops {
		if op.Kind == OpWriteRune {
			writes = append(writes, op)
		}
	}
	return writes
}
