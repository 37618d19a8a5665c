package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	// A renderer on a non-terminal writer has no color profile
	r := NewRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(3, 2)
	for i, r := range "abc" {
		s.SetCell(i, 0, core.Cell{Rune: r, FG: core.ColorWhite})
	}
	s.SetCell(1, 1, core.Cell{Rune: 'x', FG: core.ColorRed, BG: core.ColorBlue})

	if got, want := r.RenderScreen(s), "abc\n x "; got != want {
		t.Errorf("RenderScreen() = %q, expected %q", got, want)
	}
}

func TestRenderScreenCachesStyles(t *testing.T) {
	lg := lipgloss.NewRenderer(io.Discard)
	lg.SetColorProfile(termenv.TrueColor)
	r := NewRenderer(lg)

	s := core.NewScreen(4, 1)
	s.SetCell(2, 0, core.Cell{Rune: '!', FG: core.ColorRed, BG: core.ColorBlack})
	r.RenderScreen(s)
	r.RenderScreen(s)

	// Blank cells and the red cell
	if len(r.styles) != 2 {
		t.Errorf("cached %d styles, expected 2", len(r.styles))
	}
}

func TestRenderScreenPlainSkipsStyles(t *testing.T) {
	r := NewRenderer(lipgloss.NewRenderer(io.Discard))

	s := core.NewScreen(2, 1)
	s.SetCell(0, 0, core.Cell{Rune: 'o', FG: core.ColorRed, BG: core.ColorBlue})
	if got := r.RenderScreen(s); got != "o " {
		t.Errorf("RenderScreen() = %q, expected %q", got, "o ")
	}
	if len(r.styles) != 0 {
		t.Errorf("plain output built %d styles", len(r.styles))
	}
}
