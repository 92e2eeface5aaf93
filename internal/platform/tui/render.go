package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/sprite-run/internal/core"
)

var (
	colorStyles = map[core.Color]lipgloss.Style{
		core.ColorDefault:      lipgloss.NewStyle(),
		core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
		core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
		core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells of the same color are rendered as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
