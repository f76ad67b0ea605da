package model

import (
	"errors"
	"math"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      ScenarioInput
		wantErr bool
	}{
		{"default", DefaultScenario(), false},
		{"zeros", ScenarioInput{Years: 1}, false},
		{"upper bounds", ScenarioInput{StartingBalance: 1e9, MonthlyContribution: 1e6, AnnualRate: 1, Years: 60}, false},
		{"negative balance", ScenarioInput{StartingBalance: -1, Years: 10}, true},
		{"negative contribution", ScenarioInput{MonthlyContribution: -0.01, Years: 10}, true},
		{"rate above one", ScenarioInput{AnnualRate: 1.01, Years: 10}, true},
		{"negative rate", ScenarioInput{AnnualRate: -0.01, Years: 10}, true},
		{"nan rate", ScenarioInput{AnnualRate: math.NaN(), Years: 10}, true},
		{"inf balance", ScenarioInput{StartingBalance: math.Inf(1), Years: 10}, true},
		{"zero years", ScenarioInput{Years: 0}, true},
		{"too many years", ScenarioInput{Years: 61}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidScenarioInput) {
					t.Fatalf("Validate() error %v does not wrap ErrInvalidScenarioInput", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestLedgerLast(t *testing.T) {
	l := Ledger{{Month: 1, Year: 1, Balance: 100}, {Month: 2, Year: 1, Balance: 200}}
	if got := l.Last(); got.Month != 2 || got.Balance != 200 {
		t.Fatalf("Last() = %+v, want month 2", got)
	}
	if got := (Ledger{}).Last(); got != (LedgerRow{}) {
		t.Fatalf("Last() on empty ledger = %+v, want zero row", got)
	}
}
