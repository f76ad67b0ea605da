package export

import (
	"fmt"
	"io"
	"time"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"

	"github.com/go-pdf/fpdf"
)

// ReportFileName is the default name for a written PDF report.
const ReportFileName = "growth_report.pdf"

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
)

// Report renders one or two runs into a printable PDF.
type Report struct {
	pdf         *fpdf.Fpdf
	runs        []model.Run
	generatedAt time.Time
}

// NewReport prepares a report for the given runs.
func NewReport(runs []model.Run, generatedAt time.Time) *Report {
	r := &Report{
		pdf:         fpdf.New("P", "mm", "A4", ""),
		runs:        runs,
		generatedAt: generatedAt,
	}
	r.pdf.SetMargins(marginLeft, marginTop, marginRight)
	r.pdf.SetAutoPageBreak(true, marginBottom)
	return r
}

// WritePDF writes the full report to w.
func WritePDF(w io.Writer, runs []model.Run, generatedAt time.Time) error {
	if len(runs) == 0 {
		return fmt.Errorf("pdf report: no scenarios to render")
	}
	r := NewReport(runs, generatedAt)
	r.addSummaryPage()
	for _, run := range runs {
		r.addYearlyTable(run)
	}
	if err := r.pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

func (r *Report) addSummaryPage() {
	p := r.pdf
	p.AddPage()

	p.SetFont("Arial", "B", 22)
	p.SetTextColor(0, 51, 102)
	p.CellFormat(contentWidth, 12, "Savings Growth What-If", "", 1, "C", false, 0, "")

	p.SetFont("Arial", "I", 10)
	p.SetTextColor(100, 100, 100)
	p.CellFormat(contentWidth, 6, "Generated: "+r.generatedAt.Format("2 January 2006"), "", 1, "C", false, 0, "")
	p.Ln(6)

	for _, run := range r.runs {
		in := run.Input
		s := run.Summary

		p.SetFont("Arial", "B", 12)
		p.SetFillColor(230, 240, 250)
		p.SetTextColor(0, 0, 0)
		p.CellFormat(contentWidth, 8, "Scenario "+run.Label, "1", 1, "L", true, 0, "")

		p.SetFont("Arial", "", 10)
		rows := [][2]string{
			{"Starting balance", cli.FormatMoney(in.StartingBalance)},
			{"Monthly contribution", cli.FormatMoney(in.MonthlyContribution)},
			{"Annual rate", cli.FormatRate(in.AnnualRate)},
			{"Horizon", cli.FormatHorizon(s.Years, s.Months)},
			{"Final balance", cli.FormatMoney(s.FinalBalance)},
			{"Total contributions", cli.FormatMoney(s.TotalContributions)},
			{"Total interest", cli.FormatMoney(s.TotalInterest)},
		}
		for _, kv := range rows {
			p.CellFormat(contentWidth/2, 6, kv[0], "L", 0, "L", false, 0, "")
			p.CellFormat(contentWidth/2, 6, kv[1], "R", 1, "R", false, 0, "")
		}
		p.CellFormat(contentWidth, 0, "", "T", 1, "", false, 0, "")
		p.Ln(6)
	}

	p.SetFont("Arial", "I", 9)
	p.SetTextColor(100, 100, 100)
	p.MultiCell(contentWidth, 5,
		"Interest compounds monthly at annual rate / 12 on the balance before each deposit. "+
			"Contributions are made at the end of each month.", "", "L", false)
}

func (r *Report) addYearlyTable(run model.Run) {
	p := r.pdf
	p.AddPage()

	p.SetFont("Arial", "B", 14)
	p.SetTextColor(0, 51, 102)
	p.CellFormat(contentWidth, 10, fmt.Sprintf("Scenario %s: Year-End Balances", run.Label), "", 1, "L", false, 0, "")

	colW := []float64{20, 40, 40, 40, 40}
	headers := []string{"Year", "Contribution", "Interest Accrued", "Interest (Year)", "Balance"}

	p.SetFont("Arial", "B", 9)
	p.SetFillColor(0, 51, 102)
	p.SetTextColor(255, 255, 255)
	for i, h := range headers {
		p.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	p.Ln(-1)

	p.SetFont("Arial", "", 9)
	p.SetTextColor(0, 0, 0)
	for i, y := range pipeline.AggregateYears(run.Ledger) {
		fill := i%2 == 1
		p.SetFillColor(245, 245, 245)
		p.CellFormat(colW[0], 6, fmt.Sprintf("%d", y.Year), "1", 0, "C", fill, 0, "")
		p.CellFormat(colW[1], 6, cli.FormatMoney(y.CumulativeContribution), "1", 0, "R", fill, 0, "")
		p.CellFormat(colW[2], 6, cli.FormatMoney(y.CumulativeInterest), "1", 0, "R", fill, 0, "")
		p.CellFormat(colW[3], 6, cli.FormatMoney(y.InterestInYear), "1", 0, "R", fill, 0, "")
		p.CellFormat(colW[4], 6, cli.FormatMoney(y.EndBalance), "1", 1, "R", fill, 0, "")
	}
}
