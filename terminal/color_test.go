package terminal

import "testing"

func TestAttrPacking(t *testing.T) {
	tests := []struct {
		name string
		fg   Color
		bg   Color
		want ColorAttr
	}{
		{"Default", BrightWhite, Black, 15},
		{"Black on black", Black, Black, 0},
		{"Blue on green", Blue, Green, 0x21},
		{"Bright yellow on white", BrightYellow, White, 0x7E},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := Attr(tt.fg, tt.bg)
			if attr != tt.want {
				t.Errorf("Expected attr %#02x, got %#02x", uint8(tt.want), uint8(attr))
			}
			if attr.Foreground() != tt.fg {
				t.Errorf("Expected foreground %d, got %d", tt.fg, attr.Foreground())
			}
			if attr.Background() != tt.bg {
				t.Errorf("Expected background %d, got %d", tt.bg, attr.Background())
			}
		})
	}
}

func TestDefaultAttr(t *testing.T) {
	// The documented reset default: bright-white on black, numerically 15
	if DefaultAttr != 15 {
		t.Errorf("Expected default attribute 15, got %d", uint8(DefaultAttr))
	}
	if DefaultAttr.Foreground() != BrightWhite {
		t.Errorf("Expected bright-white foreground, got %d", DefaultAttr.Foreground())
	}
	if DefaultAttr.Background() != Black {
		t.Errorf("Expected black background, got %d", DefaultAttr.Background())
	}
}

func TestSgrMapping(t *testing.T) {
	tests := []struct {
		name   string
		color  Color
		wantFg int
		wantBg int
	}{
		{"Black", Black, 30, 40},
		{"Blue", Blue, 34, 44},
		{"Green", Green, 32, 42},
		{"Cyan", Cyan, 36, 46},
		{"Red", Red, 31, 41},
		{"Magenta", Magenta, 35, 45},
		{"Yellow", Yellow, 33, 43},
		{"White", White, 37, 47},
		{"BrightBlack", BrightBlack, 90, 100},
		{"BrightRed", BrightRed, 91, 101},
		{"BrightWhite", BrightWhite, 97, 107},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.color.sgrFg(); got != tt.wantFg {
				t.Errorf("Expected foreground SGR %d, got %d", tt.wantFg, got)
			}
			if got := tt.color.sgrBg(); got != tt.wantBg {
				t.Errorf("Expected background SGR %d, got %d", tt.wantBg, got)
			}
		})
	}
}

func TestBright(t *testing.T) {
	for c := Black; c <= White; c++ {
		if c.Bright() {
			t.Errorf("Expected %d to be a normal-intensity color", c)
		}
	}
	for c := BrightBlack; c <= BrightWhite; c++ {
		if !c.Bright() {
			t.Errorf("Expected %d to be a bright color", c)
		}
	}
}
