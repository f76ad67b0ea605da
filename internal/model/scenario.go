// Package model defines domain types for growthsim scenarios and ledgers.
package model

import (
	"errors"
	"fmt"
	"math"
)

// Input bounds accepted by every outer surface.
const (
	MinYears = 1
	MaxYears = 60
	MinRate  = 0.0
	MaxRate  = 1.0
)

// ErrInvalidScenarioInput is returned when a scenario falls outside the
// ranges the simulator is defined for.
var ErrInvalidScenarioInput = errors.New("invalid scenario input")

// ScenarioInput holds the assumptions for one simulation run.
// It is passed by value and never mutated once a run begins.
type ScenarioInput struct {
	StartingBalance     float64 `json:"starting_balance" yaml:"starting_balance" toml:"starting_balance"`
	MonthlyContribution float64 `json:"monthly_contribution" yaml:"monthly_contribution" toml:"monthly_contribution"`
	AnnualRate          float64 `json:"annual_rate" yaml:"annual_rate" toml:"annual_rate"`
	Years               int     `json:"years" yaml:"years" toml:"years"`
}

// DefaultScenario returns the out-of-the-box assumptions.
func DefaultScenario() ScenarioInput {
	return ScenarioInput{
		StartingBalance:     20000,
		MonthlyContribution: 700,
		AnnualRate:          0.06,
		Years:               15,
	}
}

// Months returns the number of monthly periods the scenario covers.
func (in ScenarioInput) Months() int {
	return in.Years * 12
}

// MonthlyRate returns the per-month rate applied before each deposit.
func (in ScenarioInput) MonthlyRate() float64 {
	return in.AnnualRate / 12
}

// Validate rejects inputs outside the supported ranges. It never clamps.
func (in ScenarioInput) Validate() error {
	switch {
	case math.IsNaN(in.StartingBalance) || math.IsInf(in.StartingBalance, 0):
		return fmt.Errorf("%w: starting balance must be a finite number", ErrInvalidScenarioInput)
	case in.StartingBalance < 0:
		return fmt.Errorf("%w: starting balance %.2f is negative", ErrInvalidScenarioInput, in.StartingBalance)
	case math.IsNaN(in.MonthlyContribution) || math.IsInf(in.MonthlyContribution, 0):
		return fmt.Errorf("%w: monthly contribution must be a finite number", ErrInvalidScenarioInput)
	case in.MonthlyContribution < 0:
		return fmt.Errorf("%w: monthly contribution %.2f is negative", ErrInvalidScenarioInput, in.MonthlyContribution)
	case math.IsNaN(in.AnnualRate) || in.AnnualRate < MinRate || in.AnnualRate > MaxRate:
		return fmt.Errorf("%w: annual rate %v outside [%g, %g]", ErrInvalidScenarioInput, in.AnnualRate, MinRate, MaxRate)
	case in.Years < MinYears || in.Years > MaxYears:
		return fmt.Errorf("%w: years %d outside [%d, %d]", ErrInvalidScenarioInput, in.Years, MinYears, MaxYears)
	}
	return nil
}
