// Package sim implements the monthly compound-growth simulator.
package sim

import "github.com/theirongolddev/growthsim/internal/model"

// Simulate produces the month-by-month ledger for in.
//
// Interest accrues on the balance before the month's deposit is added, so the
// deposit only starts compounding the following month. Inputs are assumed to
// be validated by the caller; see model.ScenarioInput.Validate.
func Simulate(in model.ScenarioInput) model.Ledger {
	n := in.Months()
	monthlyRate := in.MonthlyRate()

	balance := in.StartingBalance
	totalContribution := 0.0
	totalInterest := 0.0

	rows := make(model.Ledger, 0, n)
	for m := 1; m <= n; m++ {
		interest := balance * monthlyRate
		balance += interest
		balance += in.MonthlyContribution
		totalContribution += in.MonthlyContribution
		totalInterest += interest

		rows = append(rows, model.LedgerRow{
			Month:                  m,
			Year:                   (m-1)/12 + 1,
			CumulativeContribution: totalContribution,
			CumulativeInterest:     totalInterest,
			Balance:                balance,
		})
	}
	return rows
}

// Summarize derives the headline figures from a ledger's last row.
func Summarize(ledger model.Ledger) model.Summary {
	last := ledger.Last()
	return model.Summary{
		FinalBalance:       last.Balance,
		TotalContributions: last.CumulativeContribution,
		TotalInterest:      last.CumulativeInterest,
		Months:             len(ledger),
		Years:              last.Year,
	}
}
