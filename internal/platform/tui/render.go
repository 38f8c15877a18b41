package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightCyan:   lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
}

// cellStyle returns the lipgloss style for a cell's color and attributes.
func cellStyle(c core.Cell) lipgloss.Style {
	style, ok := colorStyles[c.Color]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	if c.Bold {
		style = style.Bold(true)
	}
	if c.Faint {
		style = style.Faint(true)
	}
	return style
}

// sameStyle reports whether two cells can share one styled run.
func sameStyle(a, b core.Cell) bool {
	return a.Color == b.Color && a.Bold == b.Bold && a.Faint == b.Faint
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start).Render(run.String()))
		}
	}
	return sb.String()
}
