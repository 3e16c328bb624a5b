package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/rule30life/internal/automaton"
)

func TestCanvasSize(t *testing.T) {
	tests := []struct {
		w, h, cw, ch int
	}{
		{160, 96, 80, 24},
		{1, 1, 1, 1},
		{3, 5, 2, 2},
		{120, 300, 60, 75},
	}
	for _, tt := range tests {
		cw, ch := CanvasSize(tt.w, tt.h)
		if cw != tt.cw || ch != tt.ch {
			t.Errorf("CanvasSize(%d, %d) = %d, %d; want %d, %d", tt.w, tt.h, cw, ch, tt.cw, tt.ch)
		}
	}
}

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(1, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if got := c.Grid[0][0]; got != blank|0x1|0x80 {
		t.Errorf("cell 0 = %U", got)
	}
	if got := c.Grid[0][1]; got != blank {
		t.Errorf("out of range write leaked: %U", got)
	}

	c.Clear()
	if c.Grid[0][0] != blank {
		t.Error("expected blank canvas after Clear")
	}
}

func TestDrawCells(t *testing.T) {
	// 2x4 cells fill exactly one braille character.
	cells := []automaton.Cell{
		1, 0,
		0, 1,
		0, 0,
		1, 1,
	}
	c := NewCanvas(CanvasSize(2, 4))
	c.DrawCells(cells, 2)

	want := rune(blank | 0x1 | 0x10 | 0x40 | 0x80)
	if c.Grid[0][0] != want {
		t.Errorf("got %U, want %U", c.Grid[0][0], want)
	}

	c.DrawCells(make([]automaton.Cell, 8), 2)
	if c.Grid[0][0] != blank {
		t.Error("DrawCells did not clear previous frame")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(strings.TrimSuffix(c.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len(c.Lines()) != 2 || c.Lines()[0] != lines[0] {
		t.Error("Lines and String disagree")
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("expected retro theme")
	}
	if GetTheme("missing").Name != ThemeMinimal.Name {
		t.Error("expected fallback to minimal")
	}

	seen := map[string]bool{}
	th := Themes[0]
	for range Themes {
		seen[th.Name] = true
		th = NextTheme(th)
	}
	if len(seen) != len(ThemeNames()) || th.Name != Themes[0].Name {
		t.Errorf("NextTheme did not cycle through all themes: %v", seen)
	}
}
