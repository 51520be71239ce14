package main

import (
	"testing"

	"github.com/lixenwraith/pseudotext/terminal"
)

func TestRunDemoNoColorForcesDefault(t *testing.T) {
	rec := terminal.NewRecorder()
	if err := runDemo(rec, "", true); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}

	writes := rec.Writes()
	if len(writes) == 0 {
		t.Fatal("Expected the demo to write to the surface")
	}
	for _, op := range writes {
		if op.Attr != terminal.DefaultAttr {
			t.Fatalf("Expected default attribute on every write, got %#02x at (%d, %d)",
				uint8(op.Attr), op.Row, op.Col)
		}
	}
}

func TestRunDemoColoredByDefault(t *testing.T) {
	rec := terminal.NewRecorder()
	if err := runDemo(rec, "", false); err != nil {
		t.Fatalf("runDemo failed: %v", err)
	}

	// The WELCOME! block draws bright-green when color is not suppressed
	seen := false
	for _, op := range rec.Writes() {
		if op.Attr == terminal.Fg(terminal.BrightGreen) {
			seen = true
			break
		}
	}
	if !seen {
		t.Error("Expected bright-green writes in the colored demo")
	}
}

func TestRunTextNoColorForcesDefault(t *testing.T) {
	rec := terminal.NewRecorder()
	if err := runText(rec, "", "HI", "#", " ", false, int(terminal.Red), 1, 1, true); err != nil {
		t.Fatalf("runText failed: %v", err)
	}

	writes := rec.Writes()
	if len(writes) == 0 {
		t.Fatal("Expected runText to write to the surface")
	}
	for _, op := range writes {
		if op.Attr != terminal.DefaultAttr {
			t.Fatalf("Expected default attribute on every write, got %#02x", uint8(op.Attr))
		}
	}
}

func TestRunTextRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name  string
		ink   string
		fill  string
		color int
	}{
		{"Empty ink", "", " ", 7},
		{"Empty fill", "#", "", 7},
		{"Color too high", "#", " ", 16},
		{"Color negative", "#", " ", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := terminal.NewRecorder()
			if err := runText(rec, "", "HI", tt.ink, tt.fill, false, tt.color, 1, 1, false); err == nil {
				t.Error("Expected runText to fail")
			}
			if len(rec.Ops) != 0 {
				t.Errorf("Expected no surface ops on argument failure, got %d", len(rec.Ops))
			}
		})
	}
}
