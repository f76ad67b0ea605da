package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ledgerState tracks the ledger tab's scroll position and granularity.
type ledgerState struct {
	offset int
	yearly bool
}

func (s *ledgerState) clamp(rows, page int) {
	s.offset = min(s.offset, max(rows-page, 0))
	s.offset = max(s.offset, 0)
}

func (s *ledgerState) scroll(delta, rows, page int) {
	s.offset += delta
	s.clamp(rows, page)
}

type ledgerTable struct {
	headers []string
	rows    [][]string
}

// ledgerTable builds the rows for every run. A Scenario column is added when
// more than one run is shown.
func (a App) ledgerTable() ledgerTable {
	if a.result == nil {
		return ledgerTable{}
	}
	runs := a.result.Runs
	withLabel := len(runs) > 1

	var tbl ledgerTable
	if a.ledger.yearly {
		tbl.headers = []string{"Year", "Contributions", "Interest", "Interest in Year", "End Balance"}
	} else {
		tbl.headers = []string{"Month", "Year", "Contribution", "Interest Accrued", "Balance"}
	}
	if withLabel {
		tbl.headers = append([]string{"Scenario"}, tbl.headers...)
	}

	for _, run := range runs {
		if a.ledger.yearly {
			for _, y := range pipeline.AggregateYears(run.Ledger) {
				row := []string{
					strconv.Itoa(y.Year),
					cli.FormatMoney(y.CumulativeContribution),
					cli.FormatMoney(y.CumulativeInterest),
					cli.FormatMoney(y.InterestInYear),
					cli.FormatMoney(y.EndBalance),
				}
				if withLabel {
					row = append([]string{run.Label}, row...)
				}
				tbl.rows = append(tbl.rows, row)
			}
			continue
		}
		for _, r := range run.Ledger {
			row := []string{
				strconv.Itoa(r.Month),
				strconv.Itoa(r.Year),
				cli.FormatMoney(r.CumulativeContribution),
				cli.FormatMoney(r.CumulativeInterest),
				cli.FormatMoney(r.Balance),
			}
			if withLabel {
				row = append([]string{run.Label}, row...)
			}
			tbl.rows = append(tbl.rows, row)
		}
	}
	return tbl
}

func (a App) ledgerRowCount() int {
	if a.result == nil {
		return 0
	}
	n := 0
	for _, run := range a.result.Runs {
		if a.ledger.yearly {
			n += run.Summary.Years
		} else {
			n += len(run.Ledger)
		}
	}
	return n
}

// ledgerPageSize is the number of table rows that fit in the ledger card.
func (a App) ledgerPageSize() int {
	return max(a.contentHeight()-ledgerChrome, 1)
}

// updateLedgerKeys handles scrolling keys and reports whether msg was consumed.
func (a *App) updateLedgerKeys(msg tea.KeyMsg) bool {
	rows, page := a.ledgerRowCount(), a.ledgerPageSize()
	half := max(page/2, 1)

	switch {
	case key.Matches(msg, keys.Down):
		a.ledger.scroll(1, rows, page)
	case key.Matches(msg, keys.Up):
		a.ledger.scroll(-1, rows, page)
	case key.Matches(msg, keys.HalfDown):
		a.ledger.scroll(half, rows, page)
	case key.Matches(msg, keys.HalfUp):
		a.ledger.scroll(-half, rows, page)
	case key.Matches(msg, keys.Top):
		a.ledger.offset = 0
	case key.Matches(msg, keys.Bottom):
		a.ledger.offset = max(rows-page, 0)
	case key.Matches(msg, keys.Yearly):
		a.ledger.yearly = !a.ledger.yearly
		a.ledger.offset = 0
	default:
		return false
	}
	return true
}

func (a App) renderLedgerTab(cw int) string {
	t := theme.Active
	tbl := a.ledgerTable()
	page := a.ledgerPageSize()

	widths := make([]int, len(tbl.headers))
	for i, hd := range tbl.headers {
		widths[i] = len(hd)
	}
	for _, row := range tbl.rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	headStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	altStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceHover)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	labelled := len(tbl.headers) > 0 && tbl.headers[0] == "Scenario"
	format := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, c := range cells {
			if i == 0 && labelled {
				parts[i] = fmt.Sprintf("%-*s", widths[i], c)
			} else {
				parts[i] = fmt.Sprintf("%*s", widths[i], c)
			}
		}
		return truncStr(strings.Join(parts, "  "), components.CardInnerWidth(cw))
	}

	var body strings.Builder
	body.WriteString(headStyle.Render(format(tbl.headers)))
	body.WriteString("\n")

	end := min(a.ledger.offset+page, len(tbl.rows))
	for i := a.ledger.offset; i < end; i++ {
		style := rowStyle
		if i%2 == 1 {
			style = altStyle
		}
		body.WriteString(style.Render(format(tbl.rows[i])))
		body.WriteString("\n")
	}

	view := "monthly"
	if a.ledger.yearly {
		view = "yearly"
	}
	body.WriteString(mutedStyle.Render(fmt.Sprintf("rows %d-%d of %d · %s · [j/k] scroll  [y] monthly/yearly",
		min(a.ledger.offset+1, len(tbl.rows)), end, len(tbl.rows), view)))

	return components.ContentCard("Ledger", body.String(), cw)
}
