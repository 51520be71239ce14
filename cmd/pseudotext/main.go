package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/pseudotext"
	"github.com/lixenwraith/pseudotext/glyph"
	"github.com/lixenwraith/pseudotext/render"
	"github.com/lixenwraith/pseudotext/terminal"
)

func main() {
	var (
		content  string
		inkStr   string
		fillStr  string
		big      bool
		colorNum int
		row      int
		col      int
	)

	flag.StringVar(&content, "t", "", "Text to render (A-Z, space, '.,!?', 0-9); empty runs the demo")
	flag.StringVar(&inkStr, "ink", "#", "Ink character")
	flag.StringVar(&fillStr, "fill", " ", "Fill character")
	flag.BoolVar(&big, "big", false, "Use the 7x7 font instead of 5x5")
	flag.IntVar(&colorNum, "c", int(terminal.BrightWhite), "Color (0-15)")
	flag.IntVar(&row, "row", 1, "Origin row")
	flag.IntVar(&col, "col", 1, "Origin column")
	flag.Parse()

	// Optional .env: PSEUDOTEXT_FONT_DIR overrides the embedded fonts,
	// PSEUDOTEXT_NO_COLOR forces the default attribute
	godotenv.Load()
	fontDir := os.Getenv("PSEUDOTEXT_FONT_DIR")
	noColor := os.Getenv("PSEUDOTEXT_NO_COLOR") != ""

	surface := terminal.NewAnsiSurface(os.Stdout)
	surface.Clear()

	var err error
	if content == "" {
		err = runDemo(surface, fontDir, noColor)
	} else {
		err = runText(surface, fontDir, content, inkStr, fillStr, big, colorNum, row, col, noColor)
	}

	surface.Reset()
	if ferr := surface.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runText renders a single block from CLI arguments
func runText(surface terminal.Surface, fontDir, content, inkStr, fillStr string, big bool, colorNum, row, col int, noColor bool) error {
	if inkStr == "" || fillStr == "" {
		return fmt.Errorf("ink and fill characters must not be empty")
	}
	if colorNum < 0 || colorNum > 15 {
		return fmt.Errorf("color %d out of palette range 0-15", colorNum)
	}
	if noColor {
		colorNum = int(terminal.DefaultAttr.Foreground())
	}

	size := glyph.SizeSmall
	if big {
		size = glyph.SizeBig
	}

	t, err := pseudotext.NewWithConfig(content, rune(inkStr[0]), rune(fillStr[0]), size, terminal.Color(colorNum))
	if err != nil {
		return err
	}
	if fontDir != "" {
		t.SetTables(glyph.NewCache(fontDir))
	}
	if err := t.Render(surface, render.Origin{Row: row, Col: col}); err != nil {
		return err
	}
	return parkCursor(surface, row+int(size)+1)
}

// runDemo draws three blocks exercising both fonts, the setter path, the
// value constructor, and the one-shot call
func runDemo(surface terminal.Surface, fontDir string, noColor bool) error {
	tables := glyph.DefaultCache
	if fontDir != "" {
		tables = glyph.NewCache(fontDir)
	}

	welcomeColor := terminal.BrightGreen
	finallyColor := terminal.BrightYellow
	if noColor {
		welcomeColor = terminal.DefaultAttr.Foreground()
		finallyColor = terminal.DefaultAttr.Foreground()
	}

	hello := pseudotext.New()
	hello.SetTables(tables)
	if err := hello.SetContent("HELLO!"); err != nil {
		return err
	}
	fmt.Fprintln(os.Stderr, hello.Describe())
	if err := hello.Render(surface, render.Origin{Row: 3, Col: 3}); err != nil {
		return err
	}

	welcome, err := pseudotext.NewWithConfig("WELCOME!", '@', ' ', glyph.SizeBig, welcomeColor)
	if err != nil {
		return err
	}
	welcome.SetTables(tables)
	if err := welcome.Render(surface, render.Origin{Row: 10, Col: 10}); err != nil {
		return err
	}

	if err := pseudotext.RenderOnce(surface, "FINALLY!", '$', ' ', glyph.SizeBig, finallyColor, render.Origin{Row: 20, Col: 20}); err != nil {
		return err
	}

	return parkCursor(surface, 28)
}

// parkCursor drops the cursor below the drawn blocks so the shell prompt
// doesn't land inside them
func parkCursor(surface terminal.Surface, row int) error {
	return surface.SetCursor(row, 0)
}
