package pipeline

import (
	"math"
	"testing"

	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/sim"
)

func TestAggregateYears(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 1000, MonthlyContribution: 100, AnnualRate: 0.12, Years: 3}
	ledger := sim.Simulate(in)
	years := AggregateYears(ledger)

	if len(years) != 3 {
		t.Fatalf("years = %d, want 3", len(years))
	}
	for i, y := range years {
		if y.Year != i+1 {
			t.Errorf("entry %d year = %d", i, y.Year)
		}
		if y.ContributedInYear != 1200 {
			t.Errorf("year %d contributed = %v, want 1200", y.Year, y.ContributedInYear)
		}
		if y.EndBalance != ledger[(i+1)*12-1].Balance {
			t.Errorf("year %d end balance = %v, want month %d balance", y.Year, y.EndBalance, (i+1)*12)
		}
	}

	var interest float64
	for _, y := range years {
		interest += y.InterestInYear
	}
	if math.Abs(interest-ledger.Last().CumulativeInterest) > 1e-6 {
		t.Errorf("sum of yearly interest %.6f != cumulative %.6f", interest, ledger.Last().CumulativeInterest)
	}

	if AggregateYears(nil) != nil {
		t.Error("AggregateYears(nil) should be nil")
	}
}

func TestInterestShare(t *testing.T) {
	if got := InterestShare(model.Summary{}); got != 0 {
		t.Errorf("InterestShare(empty) = %v, want 0", got)
	}
	if got := InterestShare(model.Summary{FinalBalance: 200, TotalInterest: 50}); got != 0.25 {
		t.Errorf("InterestShare = %v, want 0.25", got)
	}
}

func TestDownsampleKeepsEnds(t *testing.T) {
	values := make([]float64, 180)
	for i := range values {
		values[i] = float64(i)
	}

	got := Downsample(values, 10)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0] != 0 || got[9] != 179 {
		t.Fatalf("ends = %v, %v, want 0, 179", got[0], got[9])
	}
	if short := Downsample(values[:5], 10); len(short) != 5 {
		t.Fatalf("short series should be returned as-is, got %d points", len(short))
	}
	if one := Downsample(values, 1); len(one) != 1 || one[0] != 179 {
		t.Fatalf("Downsample(n=1) = %v, want [179]", one)
	}
}
