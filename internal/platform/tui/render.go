package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nordvik/icedrift/internal/engine"
)

// colorStyles maps engine.Color to lipgloss styles.
var colorStyles = map[engine.Color]lipgloss.Style{
	engine.ColorDefault:       lipgloss.NewStyle(),
	engine.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	engine.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	engine.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	engine.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	engine.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	engine.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	engine.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	engine.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	engine.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	engine.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	engine.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	engine.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	engine.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	engine.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	engine.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	engine.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *engine.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[engine.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
