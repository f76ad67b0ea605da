package components

import (
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// RenderStatusBar renders the bottom status bar: key hints on the left and a
// status message (last export, validation error) on the right.
func RenderStatusBar(width int, hints, message string, isError bool) string {
	t := theme.Active

	barStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	msgStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	if isError {
		msgStyle = msgStyle.Foreground(t.Red)
	}

	left := " " + hints
	right := ""
	if message != "" {
		right = message + " "
	}

	padding := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return barStyle.Render(left+spaces(padding)) + msgStyle.Render(right)
}
