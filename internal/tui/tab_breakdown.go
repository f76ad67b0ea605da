package tui

import (
	"fmt"
	"strings"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func (a App) renderBreakdownTab(cw int) string {
	t := theme.Active
	runs := a.result.Runs

	chartH := 10
	if a.isCompactLayout() || len(runs) > 1 {
		chartH = 8
	}

	var b strings.Builder
	widths := components.LayoutRow(cw, len(runs))
	cards := make([]string, len(runs))
	for i, run := range runs {
		years := pipeline.AggregateYears(run.Ledger)
		contrib := make([]float64, len(years))
		interest := make([]float64, len(years))
		for j, y := range years {
			// The starting balance counts as principal, not interest.
			contrib[j] = run.Input.StartingBalance + y.CumulativeContribution
			interest[j] = y.CumulativeInterest
		}
		inner := components.CardInnerWidth(widths[i])
		body := components.StackedBarChart(contrib, interest, yearLabels(years), t.Blue, t.Green, inner, chartH) +
			"\n" + components.Legend([]string{"principal", "interest"}, []lipgloss.Color{t.Blue, t.Green})
		cards[i] = components.ContentCard("Principal vs Interest · Scenario "+run.Label, body, widths[i])
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	b.WriteString(components.ContentCard("Year by Year", a.renderYearSplit(runs, components.CardInnerWidth(cw)), cw))
	return b.String()
}

// renderYearSplit lists, per year, how much was deposited and how much was
// earned in that year, with a proportional split bar.
func (a App) renderYearSplit(runs []model.Run, innerW int) string {
	t := theme.Active
	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface)

	const cols = "%-4s %-5s %14s %14s %16s"
	var b strings.Builder
	b.WriteString(headStyle.Render(fmt.Sprintf(cols, "Sc", "Year", "Deposited", "Earned", "End Balance")))
	b.WriteString("\n")

	used := lipgloss.Width(fmt.Sprintf(cols, "", "", "", "", ""))
	barW := max(innerW-used-2, 0)

	for _, run := range runs {
		for _, y := range pipeline.AggregateYears(run.Ledger) {
			line := fmt.Sprintf(cols,
				run.Label,
				fmt.Sprintf("%d", y.Year),
				cli.FormatMoneyWhole(y.ContributedInYear),
				cli.FormatMoneyWhole(y.InterestInYear),
				cli.FormatMoneyWhole(y.EndBalance),
			)
			b.WriteString(rowStyle.Render(line))
			if barW >= 6 {
				b.WriteString(space.Render("  "))
				b.WriteString(components.SplitBar(y.ContributedInYear, y.InterestInYear, barW))
			}
			b.WriteString("\n")
		}
	}
	b.WriteString(mutedStyle.Render("bar: deposited vs earned within the year"))
	return b.String()
}
