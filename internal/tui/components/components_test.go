package components

import (
	"strings"
	"testing"

	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for _, tc := range []struct{ total, n int }{{100, 3}, {81, 4}, {7, 7}, {10, 1}} {
		widths := LayoutRow(tc.total, tc.n)
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tc.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tc.total, tc.n, sum)
		}
		if widths[0] < widths[len(widths)-1] {
			t.Errorf("LayoutRow(%d, %d) = %v, remainder should go to first items", tc.total, tc.n, widths)
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	lines := strings.Split(CardRow([]string{tallCard, shortCard}), "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}
	for i := shortLines; i < len(lines); i++ {
		if !strings.Contains(lines[i], "\x1b[") {
			t.Errorf("line %d has no ANSI styling: %q", i, lines[i])
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	metrics := []Metric{
		{Label: "Final Balance", Value: "$250,000.00"},
		{Label: "Total Contributions", Value: "$146,000.00"},
		{Label: "Total Interest", Value: "$104,000.00", Delta: "41.6%"},
	}
	row := MetricCardRow(metrics, 90)
	if got := lipgloss.Width(row); got != 90 {
		t.Fatalf("row width = %d, want 90", got)
	}
	if MetricCardRow(nil, 90) != "" {
		t.Error("empty metric row should render nothing")
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{100, 20},
		{1000, 200},
		{350_000, 50_000},
		{60, 10},
	}
	for _, tc := range tests {
		if got := chartTickStep(tc.max); got != tc.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tc.max, got, tc.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0.5, "0.50"},
		{20, "20"},
		{5000, "5k"},
		{2500, "2.5k"},
		{3_000_000, "3M"},
		{1.5e9, "1.5B"},
	}
	for _, tc := range tests {
		if got := formatChartLabel(tc.v); got != tc.want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", tc.v, got, tc.want)
		}
	}
}

func TestBarChartRendersAxis(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50}
	labels := []string{"1", "2", "3", "4", "5"}
	out := BarChart(values, labels, theme.Active.Blue, 60, 8)

	if !strings.Contains(out, "└") {
		t.Fatal("expected x-axis corner in chart")
	}
	if lipgloss.Height(out) < 8 {
		t.Fatalf("chart height = %d, want at least 8", lipgloss.Height(out))
	}
	if BarChart(nil, nil, theme.Active.Blue, 60, 8) != "" {
		t.Error("empty chart should render nothing")
	}
}

func TestBarChartSamplesWhenNarrow(t *testing.T) {
	values := make([]float64, 180)
	for i := range values {
		values[i] = float64(i + 1)
	}
	out := BarChart(values, nil, theme.Active.Blue, 40, 6)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 40 {
			t.Errorf("line %d width = %d, exceeds 40", i, w)
		}
	}
}

func TestStackedBarChart(t *testing.T) {
	contrib := []float64{8400, 8400, 8400}
	interest := []float64{1200, 1800, 2500}
	out := StackedBarChart(contrib, interest, []string{"Y1", "Y2", "Y3"}, theme.Active.Blue, theme.Active.Green, 50, 8)
	if !strings.Contains(out, "Y1") {
		t.Error("expected first x label")
	}
	if !strings.Contains(out, "█") {
		t.Error("expected filled bar cells")
	}
	if StackedBarChart(nil, interest, nil, theme.Active.Blue, theme.Active.Green, 50, 8) != "" {
		t.Error("mismatched empty series should render nothing")
	}
}

func TestTabIdxByKey(t *testing.T) {
	for i, tab := range Tabs {
		if got := TabIdxByKey(tab.Key); got != i {
			t.Errorf("TabIdxByKey(%q) = %d, want %d", tab.Key, got, i)
		}
	}
	if TabIdxByKey('z') != -1 {
		t.Error("unknown key should map to -1")
	}
}

func TestTabVisualWidth(t *testing.T) {
	settings := Tabs[len(Tabs)-1]
	active := TabVisualWidth(settings, true)
	inactive := TabVisualWidth(settings, false)
	if inactive != active+3 {
		t.Errorf("inactive Settings width = %d, want active (%d) + 3 for [x]", inactive, active)
	}
	if got := TabVisualWidth(Tabs[0], true); got != len("Growth")+2 {
		t.Errorf("active Growth width = %d, want %d", got, len("Growth")+2)
	}
}

func TestRenderStatusBarWidth(t *testing.T) {
	bar := RenderStatusBar(80, "[?]help  [q]uit", "wrote scenario_a.csv", false)
	if got := lipgloss.Width(bar); got != 80 {
		t.Fatalf("status bar width = %d, want 80", got)
	}
}

func TestShareBarClamps(t *testing.T) {
	out := ShareBar("Interest", 1.7, theme.Active.Green, 10, 20)
	if !strings.Contains(out, "100.0%") {
		t.Fatalf("share bar should clamp to 100%%, got %q", out)
	}
}
