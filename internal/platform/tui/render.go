package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyclimb/internal/core"
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorPlatform:  lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBreakable: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorCracked:   lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorBounce:    lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorGoal:      lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorFloor:     lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorPlayer:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorShadow:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorHeart:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorMuted:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSuccess:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorDanger:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
}

// styleFor returns the style of a colour role, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y).Color

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
