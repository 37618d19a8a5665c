package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/flappy-arcade/internal/core"
)

// cellStyle identifies a foreground/background pair.
type cellStyle struct {
	fg, bg core.Color
}

// Renderer converts Screen buffers to styled strings with true-color
// foreground and background. Styles are cached per color pair.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[cellStyle]lipgloss.Style
}

// NewRenderer creates a renderer on top of a lipgloss renderer. A nil
// renderer uses the process default (the local terminal).
func NewRenderer(lg *lipgloss.Renderer) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{lg: lg, styles: make(map[cellStyle]lipgloss.Style)}
}

func (r *Renderer) style(k cellStyle) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := r.lg.NewStyle().
		Foreground(lipgloss.Color(k.fg.Hex())).
		Background(lipgloss.Color(k.bg.Hex()))
	r.styles[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// Without color support the runes are written as-is.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	if r.lg.ColorProfile() == termenv.Ascii {
		return s.String()
	}

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*4 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			key := cellStyle{fg: cell.FG, bg: cell.BG}

			// Collect consecutive cells with the same colors
			run.Reset()
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (cellStyle{fg: cell.FG, bg: cell.BG}) != key {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(r.style(key).Render(run.String()))
		}
	}
	return sb.String()
}
