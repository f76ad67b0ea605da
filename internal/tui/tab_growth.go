package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func describeInput(in model.ScenarioInput) string {
	return fmt.Sprintf("%s start · %s/mo · %s · %s",
		cli.FormatMoneyWhole(in.StartingBalance),
		cli.FormatMoneyWhole(in.MonthlyContribution),
		cli.FormatRate(in.AnnualRate),
		cli.FormatHorizon(in.Years, in.Months()),
	)
}

// kpiMetrics returns the four headline numbers for a run. When delta is
// non-nil it is shown under each value as B minus A.
func kpiMetrics(run model.Run, delta *model.SummaryDelta) []components.Metric {
	s := run.Summary
	metrics := []components.Metric{
		{Label: "Final Balance · " + run.Label, Value: cli.FormatMoney(s.FinalBalance)},
		{Label: "Total Contributions", Value: cli.FormatMoney(s.TotalContributions)},
		{Label: "Total Interest", Value: cli.FormatMoney(s.TotalInterest)},
		{Label: "Horizon", Value: cli.FormatHorizon(s.Years, s.Months)},
	}
	if delta != nil {
		metrics[0].Delta = "vs A " + cli.FormatDelta(delta.FinalBalance)
		metrics[1].Delta = "vs A " + cli.FormatDelta(delta.TotalContributions)
		metrics[2].Delta = "vs A " + cli.FormatDelta(delta.TotalInterest)
		metrics[3].Delta = fmt.Sprintf("vs A %+d mo", delta.Months)
	} else {
		metrics[2].Delta = cli.FormatPercent(pipeline.InterestShare(s)) + " of balance"
	}
	return metrics
}

// yearLabels returns "1".."N" for a yearly roll-up.
func yearLabels(years []model.YearStats) []string {
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = strconv.Itoa(y.Year)
	}
	return labels
}

func (a App) renderGrowthTab(cw int) string {
	t := theme.Active
	res := a.result
	var b strings.Builder

	b.WriteString(components.MetricCardRow(kpiMetrics(res.A(), nil), cw))
	b.WriteString("\n")
	if runB, ok := res.B(); ok {
		delta, _ := res.Compare()
		b.WriteString(components.MetricCardRow(kpiMetrics(runB, &delta), cw))
		b.WriteString("\n")
	}

	chartH := 12
	if a.isCompactLayout() {
		chartH = 8
	}
	if len(res.Runs) > 1 {
		chartH -= 3
	}

	widths := components.LayoutRow(cw, len(res.Runs))
	cards := make([]string, len(res.Runs))
	for i, run := range res.Runs {
		years := pipeline.AggregateYears(run.Ledger)
		balances := make([]float64, len(years))
		for j, y := range years {
			balances[j] = y.EndBalance
		}
		title := fmt.Sprintf("Balance by Year · Scenario %s", run.Label)
		cards[i] = components.ContentCard(title,
			components.BarChart(balances, yearLabels(years), t.ScenarioColor(run.Label), components.CardInnerWidth(widths[i]), chartH),
			widths[i])
	}
	b.WriteString(components.CardRow(cards))
	b.WriteString("\n")

	b.WriteString(a.renderTrajectoryCard(cw))
	return b.String()
}

// renderTrajectoryCard shows each run's monthly balance as a sparkline plus
// its interest share.
func (a App) renderTrajectoryCard(cw int) string {
	t := theme.Active
	inner := components.CardInnerWidth(cw)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	var body strings.Builder
	for i, run := range a.result.Runs {
		if i > 0 {
			body.WriteString("\n")
		}
		series := pipeline.Downsample(pipeline.BalanceSeries(run.Ledger), max(inner-4, 8))
		body.WriteString(labelStyle.Render(run.Label + "  "))
		body.WriteString(components.Sparkline(series, t.ScenarioColor(run.Label)))
		body.WriteString("\n")
		body.WriteString(components.ShareBar("interest", pipeline.InterestShare(run.Summary), t.Green, 10, max(inner-20, 10)))
	}
	return components.ContentCard("Monthly Trajectory", body.String(), cw)
}
