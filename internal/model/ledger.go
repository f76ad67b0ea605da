package model

// LedgerRow is the state of a scenario at the end of one month.
type LedgerRow struct {
	Month                  int     `json:"month"`
	Year                   int     `json:"year"`
	CumulativeContribution float64 `json:"cumulative_contribution"`
	CumulativeInterest     float64 `json:"cumulative_interest"`
	Balance                float64 `json:"balance"`
}

// Ledger is the ordered month-by-month output of a simulation.
type Ledger []LedgerRow

// Last returns the final row, or the zero row for an empty ledger.
func (l Ledger) Last() LedgerRow {
	if len(l) == 0 {
		return LedgerRow{}
	}
	return l[len(l)-1]
}

// Summary holds the headline figures derived from a ledger's last row.
type Summary struct {
	FinalBalance       float64 `json:"final_balance"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
	Months             int     `json:"months"`
	Years              int     `json:"years"`
}

// YearStats rolls a ledger up to one entry per simulated year.
type YearStats struct {
	Year                   int
	EndBalance             float64
	CumulativeContribution float64
	CumulativeInterest     float64
	ContributedInYear      float64
	InterestInYear         float64
}

// SummaryDelta is scenario B minus scenario A for each summary figure.
type SummaryDelta struct {
	FinalBalance       float64 `json:"final_balance"`
	TotalContributions float64 `json:"total_contributions"`
	TotalInterest      float64 `json:"total_interest"`
	Months             int     `json:"months"`
}
