package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-glimmer/internal/core"
)

// styleKey identifies one distinct cell style.
type styleKey struct {
	fg   core.Color
	bold bool
}

// Renderer converts a Screen buffer to a styled string for display.
// Styles are cached per foreground/bold pair.
type Renderer struct {
	background core.Color
	styles     map[styleKey]lipgloss.Style
}

// NewRenderer creates a renderer painting the given background behind
// every cell; the default color leaves the terminal background alone.
func NewRenderer(background core.Color) *Renderer {
	return &Renderer{
		background: background,
		styles:     make(map[styleKey]lipgloss.Style),
	}
}

// style returns the cached lipgloss style for a cell.
func (r *Renderer) style(k styleKey) lipgloss.Style {
	if st, ok := r.styles[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().Bold(k.bold)
	if !k.fg.IsDefault() {
		st = st.Foreground(lipgloss.Color(k.fg))
	}
	if !r.background.IsDefault() {
		st = st.Background(lipgloss.Color(r.background))
	}
	r.styles[k] = st
	return st
}

// Render groups adjacent cells with the same style to minimize ANSI escape
// sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			start := styleKey{fg: cell.Fg, bold: cell.Bold}

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (styleKey{fg: cell.Fg, bold: cell.Bold}) != start {
					break
				}
				if cell.Rune != 0 { // Second column of a wide rune
					run.WriteRune(cell.Rune)
				}
				x++
			}

			sb.WriteString(r.style(start).Render(run.String()))
		}
	}
	return sb.String()
}

// Line renders a single footer line padded to width in the page colors.
func (r *Renderer) Line(text string, fg core.Color, width int) string {
	st := r.style(styleKey{fg: fg}).Width(width).MaxWidth(width)
	return st.Render(text)
}
