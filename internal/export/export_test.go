package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/sim"
)

func TestWriteCSV_ReferenceScenario(t *testing.T) {
	ledger := sim.Simulate(model.DefaultScenario())

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ledger); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 181 {
		t.Fatalf("lines = %d, want 181 (header + 180 months)", len(lines))
	}
	if lines[0] != "Month,Year,Contribution,Interest Accrued,Balance" {
		t.Fatalf("header = %q", lines[0])
	}
	if lines[1] != "1,1,700.0,100.0,20800.0" {
		t.Fatalf("first row = %q, want 1,1,700.0,100.0,20800.0", lines[1])
	}
	if !strings.HasPrefix(lines[13], "13,2,9100.0,") {
		t.Fatalf("month 13 row = %q, want year 2 and 9100.0 contributed", lines[13])
	}
	if strings.Contains(buf.String(), "\r") {
		t.Fatal("csv output contains CR line endings")
	}
}

func TestWriteCSV_ZeroRate(t *testing.T) {
	ledger := sim.Simulate(model.ScenarioInput{StartingBalance: 10, MonthlyContribution: 0.5, Years: 1})

	var buf bytes.Buffer
	if err := WriteCSV(&buf, ledger); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[1] != "1,1,0.5,0.0,10.5" {
		t.Errorf("row 1 = %q", lines[1])
	}
	if lines[12] != "12,1,6.0,0.0,16.0" {
		t.Errorf("row 12 = %q", lines[12])
	}
}

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{700, "700.0"},
		{123.45, "123.45"},
		{0.30000000000000004, "0.30000000000000004"},
		{1e16, "1e+16"},
		{2.5e20, "2.5e+20"},
		{0.00001, "1e-05"},
		{0.0001, "0.0001"},
	}
	for _, tt := range tests {
		if got := FormatFloat(tt.in); got != tt.want {
			t.Errorf("FormatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	if got := FileName(model.LabelB, "csv"); got != "scenario_b.csv" {
		t.Errorf("FileName = %q, want scenario_b.csv", got)
	}
}

func TestWritePDF(t *testing.T) {
	run, err := pipeline.RunOne(model.LabelA, model.DefaultScenario())
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WritePDF(&buf, []model.Run{run}, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("WritePDF: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
		t.Fatalf("output does not start with a PDF header: %q", buf.Bytes()[:min(8, buf.Len())])
	}

	if err := WritePDF(&buf, nil, time.Now()); err == nil {
		t.Fatal("WritePDF with no runs should fail")
	}
}

func TestWriteJSON(t *testing.T) {
	run, err := pipeline.RunOne(model.LabelA, model.ScenarioInput{StartingBalance: 100, Years: 1})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, Document{Runs: []model.Run{run}}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Ledger) != 12 {
		t.Fatalf("decoded %d runs / %d rows, want 1 / 12", len(doc.Runs), len(doc.Runs[0].Ledger))
	}
	if strings.Contains(buf.String(), `"delta"`) {
		t.Error("single-scenario document should omit delta")
	}
}
