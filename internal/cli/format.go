// Package cli provides formatting, parsing, and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the display currency for all amounts.
const Currency = money.USD

// FormatMoney formats an amount with currency symbol, grouping, and cents.
// e.g., 20800 -> "$20,800.00"
func FormatMoney(amount float64) string {
	return money.NewFromFloat(amount, Currency).Display()
}

// FormatMoneyWhole formats an amount rounded to whole units.
// e.g., 20800.49 -> "$20,800"
func FormatMoneyWhole(amount float64) string {
	if amount < 0 {
		return "-" + FormatMoneyWhole(-amount)
	}
	if math.IsInf(amount, 0) || amount >= math.MaxInt64 {
		return "$" + strconv.FormatFloat(amount, 'g', 6, 64)
	}
	return "$" + FormatNumber(int64(math.Round(amount)))
}

// FormatCompactMoney formats large amounts with suffixes for chart axes and cards.
// e.g., 1234 -> "$1.2K", 1234567 -> "$1.2M"
func FormatCompactMoney(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%s$%.1fT", sign, abs/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%s$%.1fB", sign, abs/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%s$%.1fM", sign, abs/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%s$%.1fK", sign, abs/1e3)
	default:
		return fmt.Sprintf("%s$%.0f", sign, abs)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatRate formats a 0-1 annual rate as a percentage string.
func FormatRate(r float64) string {
	return decimal.NewFromFloat(r).Shift(2).String() + "%"
}

// FormatPercent formats a 0-1 float as a percentage with one decimal.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatHorizon renders a duration like "15 years (180 mo)".
func FormatHorizon(years, months int) string {
	unit := "years"
	if years == 1 {
		unit = "year"
	}
	return fmt.Sprintf("%d %s (%d mo)", years, unit, months)
}

// FormatDelta formats a money delta with an explicit sign.
func FormatDelta(delta float64) string {
	if delta >= 0 {
		return "+" + FormatMoneyWhole(delta)
	}
	return "-" + FormatMoneyWhole(-delta)
}
