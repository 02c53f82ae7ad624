package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/sprite-arcade/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab")
	s.SetColor(3, 0, '#', core.ColorRed)
	s.SetColor(4, 0, '#', core.ColorRed)
	s.DrawTextColor(0, 1, "cd", core.ColorBrightWhite)

	got := RenderScreen(s)
	want := "ab ## \ncd    "
	if got != want {
		t.Errorf("RenderScreen() = %q, want %q", got, want)
	}
	if strings.Count(got, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", got)
	}
}
