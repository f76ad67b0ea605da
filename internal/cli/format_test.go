package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/theirongolddev/growthsim/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{20800, "$20,800.00"},
		{1234.5, "$1,234.50"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatMoneyWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{999.4, "$999"},
		{204328.71, "$204,329"},
		{-1500, "-$1,500"},
	}
	for _, tt := range tests {
		if got := FormatMoneyWhole(tt.in); got != tt.want {
			t.Errorf("FormatMoneyWhole(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCompactMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{512, "$512"},
		{1234, "$1.2K"},
		{1234567, "$1.2M"},
		{-2500, "-$2.5K"},
	}
	for _, tt := range tests {
		if got := FormatCompactMoney(tt.in); got != tt.want {
			t.Errorf("FormatCompactMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatHorizonAndRate(t *testing.T) {
	if got := FormatHorizon(15, 180); got != "15 years (180 mo)" {
		t.Errorf("FormatHorizon = %q", got)
	}
	if got := FormatHorizon(1, 12); got != "1 year (12 mo)" {
		t.Errorf("FormatHorizon singular = %q", got)
	}
	if got := FormatRate(0.06); got != "6%" {
		t.Errorf("FormatRate(0.06) = %q, want 6%%", got)
	}
	if got := FormatDelta(-250); got != "-$250" {
		t.Errorf("FormatDelta(-250) = %q", got)
	}
}

func TestParseAmount(t *testing.T) {
	got, err := ParseAmount(" $20,000.456 ")
	if err != nil {
		t.Fatalf("ParseAmount: %v", err)
	}
	if got != 20000.46 {
		t.Errorf("ParseAmount rounded = %v, want 20000.46", got)
	}

	for _, bad := range []string{"", "abc", "-5"} {
		if _, err := ParseAmount(bad); !errors.Is(err, model.ErrInvalidScenarioInput) {
			t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidScenarioInput", bad, err)
		}
	}
}

func TestParseRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0.06", 0.06},
		{"6%", 0.06},
		{"0", 0},
		{"100%", 1},
	}
	for _, tt := range tests {
		got, err := ParseRate(tt.in)
		if err != nil {
			t.Fatalf("ParseRate(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"1.5", "-0.1", "x%"} {
		if _, err := ParseRate(bad); err == nil {
			t.Errorf("ParseRate(%q) accepted", bad)
		}
	}
}

func TestParseYears(t *testing.T) {
	if n, err := ParseYears("15"); err != nil || n != 15 {
		t.Fatalf("ParseYears(15) = %d, %v", n, err)
	}
	for _, bad := range []string{"0", "61", "7.5", ""} {
		if _, err := ParseYears(bad); err == nil {
			t.Errorf("ParseYears(%q) accepted", bad)
		}
	}
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(Table{
		Title:   "Scenario A",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Final Balance", "$204,329"},
			SeparatorRow,
			{"Months", "180"},
		},
	})

	for _, want := range []string{"Scenario A", "Final Balance", "$204,329", "Months", "╭", "╯"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
	if RenderTable(Table{}) != "" {
		t.Error("empty table should render nothing")
	}
}

func TestRenderSparkline(t *testing.T) {
	if got := RenderSparkline([]float64{0, 1}); got != "▁█" {
		t.Errorf("RenderSparkline = %q, want ▁█", got)
	}
}
