package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Moves: 3")
	s.DrawTextColored(2, 1, "2048", core.TileColor(2048))
	s.SetColored(11, 2, '4', core.TileColor(4))

	out := RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, want := range []string{"Moves: 3", "2048", "4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for value := 2; value <= 1<<17; value *= 2 {
		c := core.TileColor(value)
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for tile %d (color %v)", value, c)
		}
	}
}
