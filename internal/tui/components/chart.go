package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// eighths are partial cell fills, index 0 is empty.
var eighths = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a one-line unicode sparkline.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	buf.Grow(len(values) * 3)
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Background(theme.Active.Surface).Render(buf.String())
}

// yAxis is the vertical scale shared by the bar chart renderers.
type yAxis struct {
	ceiling    float64
	rows       int
	labelWidth int
	ticks      map[int]string
}

func newYAxis(maxVal float64, height int) yAxis {
	if maxVal <= 0 {
		maxVal = 1
	}
	step := chartTickStep(maxVal)
	maxIntervals := max(height/2, 2)
	for int(math.Ceil(maxVal/step)) > maxIntervals {
		step *= 2
	}
	ceiling := math.Ceil(maxVal/step) * step
	intervals := max(int(math.Round(ceiling/step)), 1)
	rowsPerTick := max(height/intervals, 2)

	ax := yAxis{
		ceiling:    ceiling,
		rows:       rowsPerTick * intervals,
		labelWidth: max(len(formatChartLabel(ceiling))+1, 4),
		ticks:      make(map[int]string, intervals),
	}
	for i := 1; i <= intervals; i++ {
		ax.ticks[i*rowsPerTick] = formatChartLabel(step * float64(i))
	}
	return ax
}

// bounds returns the value range covered by chart row (1-based from the bottom).
func (ax yAxis) bounds(row int) (bottom, top float64) {
	return ax.ceiling * float64(row-1) / float64(ax.rows), ax.ceiling * float64(row) / float64(ax.rows)
}

// cell returns the glyph for a bar of value v in the row spanning [bottom, top).
func cell(v, bottom, top float64) rune {
	switch {
	case v >= top:
		return '█'
	case v > bottom:
		idx := int((v - bottom) / (top - bottom) * 8)
		return eighths[min(max(idx, 1), 8)]
	default:
		return ' '
	}
}

// barLayout fits n bars into chartW columns, returning bar width and gap.
// ok is false when the bars cannot be at least two columns wide.
func barLayout(n, chartW int) (barW, gap int, ok bool) {
	if n <= 1 {
		return min(chartW, 6), 0, true
	}
	barW = (chartW - (n - 1)) / n
	if barW < 2 {
		return 2, 1, false
	}
	return min(barW, 6), 1, true
}

func sampleLabels(labels []string, n, srcN int) []string {
	if len(labels) != srcN || n == srcN {
		return labels
	}
	out := make([]string, n)
	for i := range out {
		out[i] = labels[i*(srcN-1)/(n-1)]
	}
	return out
}

// BarChart renders a vertical bar chart with a y-axis and x labels.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	ax := newYAxis(peak, height)
	chartW := max(width-ax.labelWidth-1, 5)

	n := len(values)
	barW, gap, ok := barLayout(n, chartW)
	if !ok {
		keep := max((chartW+1)/3, 2)
		labels = sampleLabels(labels, keep, n)
		values = pipeline.Downsample(values, keep)
		n = len(values)
	}

	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	var b strings.Builder
	for row := ax.rows; row >= 1; row-- {
		bottom, top := ax.bounds(row)

		barColor := t.Accent
		switch pct := float64(row) / float64(ax.rows); {
		case pct > 0.8:
			barColor = t.AccentBright
		case pct > 0.5:
			barColor = color
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", ax.labelWidth, ax.ticks[row])))
		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
			}
			b.WriteString(barStyle.Render(strings.Repeat(string(cell(v, bottom, top)), barW)))
		}
		b.WriteString("\n")
	}
	b.WriteString(xAxis(ax, n, barW, gap, labels))
	return b.String()
}

// StackedBarChart renders two stacked series per bar: lower on the bottom and
// upper on top of it. Used for contributions vs interest.
func StackedBarChart(lower, upper []float64, labels []string, lowerColor, upperColor lipgloss.Color, width, height int) string {
	n := min(len(lower), len(upper))
	if n == 0 {
		return ""
	}
	totals := make([]float64, n)
	peak := 0.0
	for i := range n {
		totals[i] = lower[i] + upper[i]
		peak = max(peak, totals[i])
	}
	if width < 15 || height < 3 {
		return Sparkline(totals, upperColor)
	}
	t := theme.Active

	ax := newYAxis(peak, height)
	chartW := max(width-ax.labelWidth-1, 5)

	lower, upper = lower[:n], upper[:n]
	barW, gap, ok := barLayout(n, chartW)
	if !ok {
		keep := max((chartW+1)/3, 2)
		labels = sampleLabels(labels, keep, n)
		lower = pipeline.Downsample(lower, keep)
		upper = pipeline.Downsample(upper, keep)
		totals = pipeline.Downsample(totals, keep)
		n = len(lower)
	}

	surface := lipgloss.NewStyle().Background(t.Surface)
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	lowerStyle := lipgloss.NewStyle().Foreground(lowerColor).Background(t.Surface)
	upperStyle := lipgloss.NewStyle().Foreground(upperColor).Background(t.Surface)
	splitStyle := lipgloss.NewStyle().Foreground(lowerColor).Background(upperColor)

	var b strings.Builder
	for row := ax.rows; row >= 1; row-- {
		bottom, top := ax.bounds(row)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", ax.labelWidth, ax.ticks[row])))
		for i := range n {
			if i > 0 && gap > 0 {
				b.WriteString(surface.Render(strings.Repeat(" ", gap)))
			}
			style := upperStyle
			glyph := cell(totals[i], bottom, top)
			switch {
			case lower[i] >= top:
				style = lowerStyle
			case lower[i] > bottom && totals[i] >= top:
				// Lower segment ends mid-row: draw it over the upper color.
				style = splitStyle
				glyph = cell(lower[i], bottom, top)
			case lower[i] > bottom:
				style = lowerStyle
			}
			b.WriteString(style.Render(strings.Repeat(string(glyph), barW)))
		}
		b.WriteString("\n")
	}
	b.WriteString(xAxis(ax, n, barW, gap, labels))
	return b.String()
}

// Legend renders "■ name" swatches separated by two spaces.
func Legend(names []string, colors []lipgloss.Color) string {
	t := theme.Active
	text := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	gap := lipgloss.NewStyle().Background(t.Surface).Render("  ")

	parts := make([]string, 0, len(names))
	for i, name := range names {
		if i >= len(colors) {
			break
		}
		swatch := lipgloss.NewStyle().Foreground(colors[i]).Background(t.Surface).Render("■")
		parts = append(parts, swatch+text.Render(" "+name))
	}
	return strings.Join(parts, gap)
}

func xAxis(ax yAxis, n, barW, gap int, labels []string) string {
	t := theme.Active
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	axisLen := n*barW + max(0, n-1)*gap

	var b strings.Builder
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└", ax.labelWidth, "0")))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))

	if len(labels) != n || n == 0 {
		return b.String()
	}

	buf := []byte(strings.Repeat(" ", axisLen))
	labelStep := max(1, (n*8)/(axisLen+1))
	lastEnd := -1
	place := func(i int) {
		lbl := labels[i]
		pos := i * (barW + gap)
		if pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		if pos <= lastEnd || pos < 0 {
			return
		}
		copy(buf[pos:], lbl)
		lastEnd = pos + len(lbl)
	}
	for i := 0; i < n; i += labelStep {
		place(i)
	}
	if (n-1)%labelStep != 0 {
		place(n - 1)
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Background(t.Surface).Render(strings.Repeat(" ", ax.labelWidth+1)))
	b.WriteString(axisStyle.Render(strings.TrimRight(string(buf), " ")))
	return b.String()
}

// chartTickStep computes a round tick interval targeting about five ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))

	switch frac := rough / base; {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	scaled := func(div float64, suffix string) string {
		if v == math.Trunc(v/div)*div {
			return fmt.Sprintf("%.0f%s", v/div, suffix)
		}
		return fmt.Sprintf("%.1f%s", v/div, suffix)
	}
	switch {
	case v >= 1e9:
		return scaled(1e9, "B")
	case v >= 1e6:
		return scaled(1e6, "M")
	case v >= 1e3:
		return scaled(1e3, "k")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
