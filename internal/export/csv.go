// Package export serializes ledgers for download: CSV, PDF, and JSON.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/model"
)

// CSVHeader is the column layout spreadsheet consumers depend on.
var CSVHeader = []string{"Month", "Year", "Contribution", "Interest Accrued", "Balance"}

// FileName returns the download name for a scenario label, e.g. "scenario_a.csv".
func FileName(label, ext string) string {
	return "scenario_" + strings.ToLower(label) + "." + ext
}

// WriteCSV writes the ledger as comma-separated UTF-8 text with a header row.
func WriteCSV(w io.Writer, ledger model.Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	record := make([]string, len(CSVHeader))
	for _, row := range ledger {
		record[0] = strconv.Itoa(row.Month)
		record[1] = strconv.Itoa(row.Year)
		record[2] = FormatFloat(row.CumulativeContribution)
		record[3] = FormatFloat(row.CumulativeInterest)
		record[4] = FormatFloat(row.Balance)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row %d: %w", row.Month, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// FormatFloat renders v in shortest round-trip form. Integral values keep a
// trailing ".0" and very large or very small magnitudes switch to exponent
// notation, matching the layout of files produced by earlier releases.
func FormatFloat(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	abs := math.Abs(v)
	if abs != 0 && (abs >= 1e16 || abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
