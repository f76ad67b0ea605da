package tui

import (
	"strconv"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"

	"github.com/charmbracelet/huh"
)

// ScenarioValues holds the raw text fields of a scenario form.
type ScenarioValues struct {
	Balance      string
	Contribution string
	Rate         string
	Years        string
}

// ValuesFrom pre-fills form values from an existing scenario.
func ValuesFrom(in model.ScenarioInput) *ScenarioValues {
	return &ScenarioValues{
		Balance:      strconv.FormatFloat(in.StartingBalance, 'f', -1, 64),
		Contribution: strconv.FormatFloat(in.MonthlyContribution, 'f', -1, 64),
		Rate:         cli.FormatRate(in.AnnualRate),
		Years:        strconv.Itoa(in.Years),
	}
}

// Input parses the form values into a validated scenario.
func (v *ScenarioValues) Input() (model.ScenarioInput, error) {
	var in model.ScenarioInput
	var err error
	if in.StartingBalance, err = cli.ParseAmount(v.Balance); err != nil {
		return in, err
	}
	if in.MonthlyContribution, err = cli.ParseAmount(v.Contribution); err != nil {
		return in, err
	}
	if in.AnnualRate, err = cli.ParseRate(v.Rate); err != nil {
		return in, err
	}
	if in.Years, err = cli.ParseYears(v.Years); err != nil {
		return in, err
	}
	return in, in.Validate()
}

func validateAmount(s string) error {
	_, err := cli.ParseAmount(s)
	return err
}

func validateRate(s string) error {
	_, err := cli.ParseRate(s)
	return err
}

func validateYears(s string) error {
	_, err := cli.ParseYears(s)
	return err
}

// ScenarioGroup returns the four scenario inputs as one form page.
func ScenarioGroup(title string, v *ScenarioValues) *huh.Group {
	return huh.NewGroup(
		huh.NewInput().
			Title("Starting balance").
			Description("Amount invested at month 0, e.g. 20000 or $20,000").
			Value(&v.Balance).
			Validate(validateAmount),
		huh.NewInput().
			Title("Monthly contribution").
			Description("Deposited at the end of every month").
			Value(&v.Contribution).
			Validate(validateAmount),
		huh.NewInput().
			Title("Annual interest rate").
			Description("Nominal rate, 0.06 or 6%, compounded monthly").
			Value(&v.Rate).
			Validate(validateRate),
		huh.NewInput().
			Title("Years").
			Description("Whole years, 1 to 60").
			Value(&v.Years).
			Validate(validateYears),
	).Title(title)
}

// newScenarioForm builds the in-dashboard editor for one scenario.
func newScenarioForm(label string, v *ScenarioValues) *huh.Form {
	return huh.NewForm(ScenarioGroup("Scenario "+label, v)).
		WithTheme(huh.ThemeBase16()).
		WithShowHelp(true)
}
