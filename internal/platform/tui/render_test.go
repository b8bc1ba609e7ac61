package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/icy-tower/internal/core"
)

func TestRenderScreenLayout(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 0, "Score")
	s.DrawTextColored(2, 2, "GO", core.ColorRed)

	out := RenderScreen(s)

	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("newlines = %d, want 2", got)
	}
	if !strings.HasPrefix(out, "Score     \n") {
		t.Errorf("first row = %q, want default-colored text unstyled", strings.SplitN(out, "\n", 2)[0])
	}
	if !strings.Contains(out, "GO") {
		t.Error("colored run missing from output")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
