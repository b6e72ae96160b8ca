package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/lanehop/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(5, 2)
	s.DrawText(0, 0, "hop")

	if got, want := RenderScreen(s), s.String(); got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
}

func TestRenderScreenKeepsRuns(t *testing.T) {
	s := core.NewScreen(8, 2)
	s.FillRow(0, '~', core.ColorCyan, core.ColorBlue)
	s.SetColored(3, 0, '=', core.ColorBrown)
	s.DrawText(0, 1, "Score")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderScreen() produced %d lines, want 2", len(lines))
	}
	for _, want := range []string{"~~~", "=", "~~~~", "Score"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q", want)
		}
	}
}

func TestStyleCacheReuses(t *testing.T) {
	c := make(styleCache)
	k := cellColors{fg: core.ColorRed, bg: core.ColorDarkGray}
	c.get(k)
	c.get(k)
	c.get(cellColors{fg: core.ColorRed})
	if len(c) != 2 {
		t.Errorf("cache holds %d styles, want 2", len(c))
	}
}
