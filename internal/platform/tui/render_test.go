package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-blaster/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 0, '█', core.ColorBlue)
	s.SetColored(3, 0, '▶', core.ColorBlue)
	s.SetColored(1, 2, '▓', core.ColorGreen)

	got := RenderScreen(s)
	want := strings.Join([]string{
		"ab█▶  ",
		"      ",
		" ▓    ",
	}, "\n")
	if got != want {
		t.Errorf("RenderScreen() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderScreenUnknownColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.Ascii)

	s := core.NewScreen(2, 1)
	s.SetColored(0, 0, 'x', core.Color(200))

	if got := RenderScreen(s); got != "x " {
		t.Errorf("RenderScreen() = %q, want %q", got, "x ")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
