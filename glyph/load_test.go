package glyph

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// miniFont builds a syntactically valid size-5 resource where every glyph is
// fully inked, in the interleaved row-major layout
func miniFont(mark string) string {
	var b strings.Builder
	for row := 0; row < 5; row++ {
		for range Alphabet {
			for col := 0; col < 5; col++ {
				b.WriteString(mark)
				b.WriteByte(' ')
			}
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func TestParseFullFont(t *testing.T) {
	table, err := parse(strings.NewReader(miniFont("1")), SizeSmall)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	g, err := table.Lookup('Z')
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			if !g.Ink(row, col) {
				t.Fatalf("Expected ink at (%d, %d)", row, col)
			}
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Empty resource", ""},
		{"Truncated resource", miniFont("1")[:100]},
		{"Invalid mark", strings.Replace(miniFont("0"), "0", "x", 1)},
		{"Mark out of range", strings.Replace(miniFont("0"), "0", "2", 1)},
		{"Trailing data", miniFont("0") + "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse(strings.NewReader(tt.input), SizeSmall); err == nil {
				t.Error("Expected parse to fail")
			}
		})
	}
}

func TestLoadInvalidSize(t *testing.T) {
	for _, size := range []Size{0, 4, 6, -5} {
		_, err := Load(size)
		if err == nil {
			t.Errorf("Expected Load(%d) to fail", int(size))
			continue
		}
		var resErr *ResourceError
		if !errors.As(err, &resErr) {
			t.Errorf("Expected ResourceError for size %d, got %T", int(size), err)
		}
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "font_size_5.txt"), SizeSmall)
	if err == nil {
		t.Fatal("Expected LoadFile to fail for missing resource")
	}
	var resErr *ResourceError
	if !errors.As(err, &resErr) {
		t.Fatalf("Expected ResourceError, got %T", err)
	}
}

func TestLoadAutoPriority(t *testing.T) {
	// A font dir resource with every mark inked is distinguishable from the
	// embedded font, where the space glyph is blank
	dir := t.TempDir()
	path := filepath.Join(dir, ResourceName(SizeSmall))
	if err := os.WriteFile(path, []byte(miniFont("1")), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	table, err := LoadAuto("", dir, SizeSmall)
	if err != nil {
		t.Fatalf("LoadAuto failed: %v", err)
	}
	g, _ := table.Lookup(' ')
	if !g.Ink(0, 0) {
		t.Error("Expected font dir resource to take priority over embedded")
	}

	// Missing dir falls back to embedded
	table, err = LoadAuto("", filepath.Join(dir, "nope"), SizeSmall)
	if err != nil {
		t.Fatalf("LoadAuto fallback failed: %v", err)
	}
	g, _ = table.Lookup(' ')
	if g.Ink(0, 0) {
		t.Error("Expected embedded fallback when font dir has no resource")
	}

	// Explicit path beats the dir
	table, err = LoadAuto(path, "", SizeSmall)
	if err != nil {
		t.Fatalf("LoadAuto custom path failed: %v", err)
	}
	g, _ = table.Lookup(' ')
	if !g.Ink(0, 0) {
		t.Error("Expected custom path resource to be used")
	}
}

func TestCacheReuse(t *testing.T) {
	cache := NewCache("")

	first, err := cache.Table(SizeSmall)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	second, err := cache.Table(SizeSmall)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if first != second {
		t.Error("Expected cached table to be reused")
	}

	big, err := cache.Table(SizeBig)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}
	if big == first {
		t.Error("Expected distinct tables per size")
	}
}
