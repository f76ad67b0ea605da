package sim

import (
	"math"
	"testing"

	"github.com/theirongolddev/growthsim/internal/model"
)

func approxEqual(a, b, relTol float64) bool {
	if a == b {
		return true
	}
	scale := math.Max(math.Abs(a), math.Abs(b))
	return math.Abs(a-b) <= relTol*scale
}

func TestSimulate_ReferenceScenario(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 20000, MonthlyContribution: 700, AnnualRate: 0.06, Years: 15}
	ledger := Simulate(in)

	if len(ledger) != 180 {
		t.Fatalf("len(ledger) = %d, want 180", len(ledger))
	}

	first := ledger[0]
	if first.Month != 1 || first.Year != 1 {
		t.Fatalf("first row month/year = %d/%d, want 1/1", first.Month, first.Year)
	}
	if math.Abs(first.CumulativeInterest-100) > 1e-9 {
		t.Errorf("row 1 interest = %.6f, want 100.00", first.CumulativeInterest)
	}
	if math.Abs(first.Balance-20800) > 1e-9 {
		t.Errorf("row 1 balance = %.6f, want 20800.00", first.Balance)
	}
	if first.CumulativeContribution != 700 {
		t.Errorf("row 1 contribution = %.6f, want 700.00", first.CumulativeContribution)
	}

	growth := math.Pow(1.005, 180)
	want := 20000*growth + 700*(growth-1)/0.005
	if got := ledger.Last().Balance; !approxEqual(got, want, 1e-6) {
		t.Errorf("final balance = %.6f, want %.6f", got, want)
	}
}

func TestSimulate_LengthAndOrdering(t *testing.T) {
	for years := model.MinYears; years <= model.MaxYears; years++ {
		ledger := Simulate(model.ScenarioInput{StartingBalance: 1000, MonthlyContribution: 10, AnnualRate: 0.05, Years: years})
		if len(ledger) != years*12 {
			t.Fatalf("years=%d: len = %d, want %d", years, len(ledger), years*12)
		}
		for i, row := range ledger {
			if row.Month != i+1 {
				t.Fatalf("years=%d: row %d month = %d", years, i, row.Month)
			}
			if want := i/12 + 1; row.Year != want {
				t.Fatalf("years=%d: month %d year = %d, want %d", years, row.Month, row.Year, want)
			}
		}
	}
}

func TestSimulate_ContributionIsRunningSum(t *testing.T) {
	ledger := Simulate(model.ScenarioInput{StartingBalance: 500, MonthlyContribution: 250, AnnualRate: 0.07, Years: 30})
	for _, row := range ledger {
		if want := float64(row.Month) * 250; row.CumulativeContribution != want {
			t.Fatalf("month %d contribution = %v, want %v", row.Month, row.CumulativeContribution, want)
		}
	}
}

func TestSimulate_ConservationIdentity(t *testing.T) {
	inputs := []model.ScenarioInput{
		{StartingBalance: 20000, MonthlyContribution: 700, AnnualRate: 0.06, Years: 15},
		{StartingBalance: 0, MonthlyContribution: 123.45, AnnualRate: 0.125, Years: 40},
		{StartingBalance: 1e6, MonthlyContribution: 0, AnnualRate: 1, Years: 5},
	}
	for _, in := range inputs {
		ledger := Simulate(in)
		for _, row := range ledger {
			decomposed := in.StartingBalance + row.CumulativeContribution + row.CumulativeInterest
			if !approxEqual(row.Balance, decomposed, 1e-9) {
				t.Fatalf("%+v month %d: balance %.6f != principal+contrib+interest %.6f",
					in, row.Month, row.Balance, decomposed)
			}
		}
	}
}

func TestSimulate_RecurrenceHolds(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 3000, MonthlyContribution: 150, AnnualRate: 0.09, Years: 10}
	ledger := Simulate(in)

	prevBalance := in.StartingBalance
	prevInterest := 0.0
	for _, row := range ledger {
		interest := row.CumulativeInterest - prevInterest
		if !approxEqual(interest, prevBalance*in.MonthlyRate(), 1e-9) {
			t.Fatalf("month %d: interest %.6f not computed on pre-deposit balance %.6f", row.Month, interest, prevBalance)
		}
		if !approxEqual(row.Balance, prevBalance+interest+in.MonthlyContribution, 1e-12) {
			t.Fatalf("month %d: balance %.6f breaks recurrence", row.Month, row.Balance)
		}
		prevBalance = row.Balance
		prevInterest = row.CumulativeInterest
	}
}

func TestSimulate_ZeroRate(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 1500, MonthlyContribution: 200, AnnualRate: 0, Years: 20}
	for _, row := range Simulate(in) {
		if want := 1500 + float64(row.Month)*200; row.Balance != want {
			t.Fatalf("month %d balance = %v, want %v", row.Month, row.Balance, want)
		}
		if row.CumulativeInterest != 0 {
			t.Fatalf("month %d interest = %v, want 0", row.Month, row.CumulativeInterest)
		}
	}
}

func TestSimulate_ZeroContributionIsPureCompounding(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 10000, MonthlyContribution: 0, AnnualRate: 0.08, Years: 25}
	for _, row := range Simulate(in) {
		want := 10000 * math.Pow(1+0.08/12, float64(row.Month))
		if !approxEqual(row.Balance, want, 1e-9) {
			t.Fatalf("month %d balance = %.6f, want %.6f", row.Month, row.Balance, want)
		}
		if row.CumulativeContribution != 0 {
			t.Fatalf("month %d contribution = %v, want 0", row.Month, row.CumulativeContribution)
		}
	}
}

func TestSimulate_RunsAreIndependent(t *testing.T) {
	a := Simulate(model.ScenarioInput{StartingBalance: 100, MonthlyContribution: 10, AnnualRate: 0.05, Years: 2})
	b := Simulate(model.ScenarioInput{StartingBalance: 100, MonthlyContribution: 10, AnnualRate: 0.05, Years: 2})

	a[0].Balance = -1
	a[len(a)-1].CumulativeInterest = -1

	if b[0].Balance == -1 || b[len(b)-1].CumulativeInterest == -1 {
		t.Fatal("mutating ledger A leaked into ledger B")
	}
}

func TestSummarize(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 20000, MonthlyContribution: 700, AnnualRate: 0.06, Years: 15}
	ledger := Simulate(in)
	s := Summarize(ledger)

	last := ledger.Last()
	if s.FinalBalance != last.Balance || s.TotalContributions != last.CumulativeContribution || s.TotalInterest != last.CumulativeInterest {
		t.Fatalf("summary %+v does not match last row %+v", s, last)
	}
	if s.Months != 180 || s.Years != 15 {
		t.Fatalf("summary horizon = %d months / %d years, want 180 / 15", s.Months, s.Years)
	}
	if s.TotalContributions != 126000 {
		t.Fatalf("TotalContributions = %v, want 126000", s.TotalContributions)
	}
}
