package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/tui-fenetres/internal/core"
)

// palette maps core.Color to terminal colors (ANSI 256).
var palette = map[core.Color]lipgloss.Color{
	core.ColorBlack:        lipgloss.Color("0"),
	core.ColorRed:          lipgloss.Color("1"),
	core.ColorGreen:        lipgloss.Color("2"),
	core.ColorYellow:       lipgloss.Color("3"),
	core.ColorBlue:         lipgloss.Color("4"),
	core.ColorMagenta:      lipgloss.Color("5"),
	core.ColorCyan:         lipgloss.Color("6"),
	core.ColorWhite:        lipgloss.Color("7"),
	core.ColorBrightRed:    lipgloss.Color("9"),
	core.ColorBrightGreen:  lipgloss.Color("10"),
	core.ColorBrightYellow: lipgloss.Color("11"),
	core.ColorBrightBlue:   lipgloss.Color("12"),
	core.ColorBrightWhite:  lipgloss.Color("15"),
	core.ColorOrange:       lipgloss.Color("208"),
	core.ColorGray:         lipgloss.Color("245"),
	core.ColorDarkGray:     lipgloss.Color("238"),
	core.ColorNavy:         lipgloss.Color("24"),
	core.ColorSlate:        lipgloss.Color("236"),
	core.ColorSky:          lipgloss.Color("32"),
	core.ColorPaper:        lipgloss.Color("254"),
	core.ColorAccent:       lipgloss.Color("39"),
}

// styleCache holds one lipgloss style per cell style seen so far.
// Renders happen on the program goroutine, so no locking.
type styleCache map[core.Style]lipgloss.Style

func (c styleCache) get(st core.Style) lipgloss.Style {
	if s, ok := c[st]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if fg, ok := palette[st.Fg]; ok {
		s = s.Foreground(fg)
	}
	if bg, ok := palette[st.Bg]; ok {
		s = s.Background(bg)
	}
	if st.Bold {
		s = s.Bold(true)
	}
	c[st] = s
	return s
}

// Renderer converts Screen buffers to styled strings.
type Renderer struct {
	styles styleCache
}

// NewRenderer creates a renderer with an empty style cache.
func NewRenderer() *Renderer {
	return &Renderer{styles: make(styleCache)}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (r *Renderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Style

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Style != start {
					break
				}
				// Trailing half of a wide glyph: the terminal already advanced.
				if cell.Rune != 0 {
					run.WriteRune(cell.Rune)
				}
				x++
			}

			if start == (core.Style{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(r.styles.get(start).Render(run.String()))
		}
	}
	return sb.String()
}
