package pipeline

import "github.com/theirongolddev/growthsim/internal/model"

// AggregateYears rolls a monthly ledger up to one entry per simulated year.
// Each entry carries the year-end balance and that year's own flows.
func AggregateYears(ledger model.Ledger) []model.YearStats {
	if len(ledger) == 0 {
		return nil
	}

	years := make([]model.YearStats, 0, ledger.Last().Year)
	var prevContrib, prevInterest float64
	for i, row := range ledger {
		lastOfYear := i == len(ledger)-1 || ledger[i+1].Year != row.Year
		if !lastOfYear {
			continue
		}
		years = append(years, model.YearStats{
			Year:                   row.Year,
			EndBalance:             row.Balance,
			CumulativeContribution: row.CumulativeContribution,
			CumulativeInterest:     row.CumulativeInterest,
			ContributedInYear:      row.CumulativeContribution - prevContrib,
			InterestInYear:         row.CumulativeInterest - prevInterest,
		})
		prevContrib = row.CumulativeContribution
		prevInterest = row.CumulativeInterest
	}
	return years
}

// Delta computes b minus a for each summary figure.
func Delta(a, b model.Summary) model.SummaryDelta {
	return model.SummaryDelta{
		FinalBalance:       b.FinalBalance - a.FinalBalance,
		TotalContributions: b.TotalContributions - a.TotalContributions,
		TotalInterest:      b.TotalInterest - a.TotalInterest,
		Months:             b.Months - a.Months,
	}
}

// InterestShare returns the fraction of the final balance that came from
// interest, or 0 for an empty balance.
func InterestShare(s model.Summary) float64 {
	if s.FinalBalance <= 0 {
		return 0
	}
	return s.TotalInterest / s.FinalBalance
}

// BalanceSeries returns the balance column of a ledger, one value per month.
func BalanceSeries(ledger model.Ledger) []float64 {
	out := make([]float64, len(ledger))
	for i, row := range ledger {
		out[i] = row.Balance
	}
	return out
}

// Downsample keeps at most n evenly spaced points of values, always
// including the first and last. Shorter series are returned unchanged.
func Downsample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	if n == 1 {
		return values[len(values)-1:]
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = values[i*(len(values)-1)/(n-1)]
	}
	return out
}
