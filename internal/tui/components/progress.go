package components

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// ShareBar renders a labeled bar showing what fraction of a total pct is,
// e.g. the interest share of a final balance.
func ShareBar(label string, pct float64, color lipgloss.Color, labelW, barWidth int) string {
	t := theme.Active
	pct = min(max(pct, 0), 1)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(max(barWidth, 4)),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	pctStyle := lipgloss.NewStyle().Foreground(color).Background(t.Surface).Bold(true)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) +
		space +
		bar.ViewAs(pct) +
		space +
		pctStyle.Render(fmt.Sprintf("%5.1f%%", pct*100))
}

// SplitBar renders one bar whose left part is contribution-colored and right
// part interest-colored, proportional to the two amounts.
func SplitBar(contrib, interest float64, width int) string {
	t := theme.Active
	total := contrib + interest
	if width <= 0 {
		return ""
	}
	left := width
	if total > 0 {
		left = int(contrib / total * float64(width))
	}
	left = min(max(left, 0), width)

	contribStyle := lipgloss.NewStyle().Foreground(t.Blue).Background(t.Surface)
	interestStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)
	return contribStyle.Render(repeatRune('█', left)) + interestStyle.Render(repeatRune('█', width-left))
}

func repeatRune(r rune, n int) string {
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
