package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/model"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a currency amount, accepting "$" and "," decoration,
// and rounds it to cents. Negative amounts are rejected.
func ParseAmount(s string) (float64, error) {
	clean := strings.NewReplacer("$", "", ",", "", "_", "").Replace(strings.TrimSpace(s))
	if clean == "" {
		return 0, fmt.Errorf("%w: amount is empty", model.ErrInvalidScenarioInput)
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an amount", model.ErrInvalidScenarioInput, s)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("%w: amount %s is negative", model.ErrInvalidScenarioInput, d.String())
	}
	return d.Round(2).InexactFloat64(), nil
}

// ParseRate parses an annual rate given either as a fraction ("0.06") or a
// percentage ("6%"). The result must lie in [0, 1].
func ParseRate(s string) (float64, error) {
	clean := strings.TrimSpace(s)
	percent := strings.HasSuffix(clean, "%")
	clean = strings.TrimSpace(strings.TrimSuffix(clean, "%"))

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a rate", model.ErrInvalidScenarioInput, s)
	}
	if percent {
		d = d.Div(decimal.NewFromInt(100))
	}
	r := d.InexactFloat64()
	if r < model.MinRate || r > model.MaxRate {
		return 0, fmt.Errorf("%w: rate %s outside [0, 1]", model.ErrInvalidScenarioInput, s)
	}
	return r, nil
}

// ParseYears parses a whole number of years in [1, 60]. Fractional values are rejected.
func ParseYears(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a whole number of years", model.ErrInvalidScenarioInput, s)
	}
	if n < model.MinYears || n > model.MaxYears {
		return 0, fmt.Errorf("%w: years %d outside [%d, %d]", model.ErrInvalidScenarioInput, n, model.MinYears, model.MaxYears)
	}
	return n, nil
}
