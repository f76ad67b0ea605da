package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func newTestApp(t *testing.T) App {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return NewApp(config.DefaultConfig(), pipeline.Request{A: model.DefaultScenario()})
}

func press(t *testing.T, a App, keys ...string) App {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, _ := a.Update(msg)
		a = m.(App)
	}
	return a
}

func resize(a App, w, h int) App {
	m, _ := a.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return m.(App)
}

func TestTabAtXMatchesTabWidths(t *testing.T) {
	n := len(components.Tabs)
	for active := 0; active < n; active++ {
		a := App{activeTab: active}
		pos := 0

		for i := 0; i < n; i++ {
			w := tabWidthForTest(i, active)
			x := pos + w/2 // midpoint inside this tab
			if got := a.tabAtX(x); got != i {
				t.Fatalf("active=%d x=%d -> tab=%d, want %d", active, x, got, i)
			}
			pos += w
			if i < n-1 {
				pos++ // separator
			}
		}
	}
}

func tabWidthForTest(tabIdx, activeIdx int) int {
	nameWidths := []int{
		len("Growth"),
		len("Breakdown"),
		len("Ledger"),
		len("Settings"),
	}

	w := nameWidths[tabIdx] + 2 // horizontal padding in tab renderer
	if tabIdx != activeIdx && tabIdx == 3 {
		w += 3 // inactive Settings adds "[x]"
	}
	return w
}

func TestNewAppRunsScenarioA(t *testing.T) {
	a := newTestApp(t)
	if a.result == nil {
		t.Fatalf("expected a result, err = %v", a.err)
	}
	if len(a.result.Runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(a.result.Runs))
	}
	if got := len(a.result.A().Ledger); got != 180 {
		t.Fatalf("ledger rows = %d, want 180", got)
	}
}

func TestCompareToggle(t *testing.T) {
	a := newTestApp(t)

	a = press(t, a, "c")
	if !a.compare || len(a.result.Runs) != 2 {
		t.Fatalf("after c: compare=%v runs=%d, want true/2", a.compare, len(a.result.Runs))
	}
	if _, ok := a.result.Compare(); !ok {
		t.Fatal("expected comparison delta with two runs")
	}

	a = press(t, a, "c")
	if a.compare || len(a.result.Runs) != 1 {
		t.Fatalf("after second c: compare=%v runs=%d, want false/1", a.compare, len(a.result.Runs))
	}
}

func TestTabShortcuts(t *testing.T) {
	a := newTestApp(t)
	tests := []struct {
		key  string
		want int
	}{
		{"b", tabBreakdown},
		{"l", tabLedger},
		{"x", tabSettings},
		{"g", tabGrowth},
	}
	for _, tc := range tests {
		a = press(t, a, tc.key)
		if a.activeTab != tc.want {
			t.Errorf("after %q activeTab = %d, want %d", tc.key, a.activeTab, tc.want)
		}
	}
}

func TestLedgerScrollClamps(t *testing.T) {
	a := resize(newTestApp(t), 120, 30)
	a = press(t, a, "l", "G")

	page := a.ledgerPageSize()
	want := 180 - page
	if a.ledger.offset != want {
		t.Fatalf("offset after G = %d, want %d", a.ledger.offset, want)
	}

	a = press(t, a, "j")
	if a.ledger.offset != want {
		t.Fatalf("offset after j at bottom = %d, want %d", a.ledger.offset, want)
	}

	a = press(t, a, "y")
	if !a.ledger.yearly || a.ledger.offset != 0 {
		t.Fatalf("after y: yearly=%v offset=%d, want true/0", a.ledger.yearly, a.ledger.offset)
	}
	if got := a.ledgerRowCount(); got != 15 {
		t.Fatalf("yearly rows = %d, want 15", got)
	}
}

func TestLedgerTableHasScenarioColumnWhenComparing(t *testing.T) {
	a := press(t, newTestApp(t), "c")
	tbl := a.ledgerTable()

	if tbl.headers[0] != "Scenario" {
		t.Fatalf("first header = %q, want Scenario", tbl.headers[0])
	}
	if len(tbl.rows) != 360 {
		t.Fatalf("rows = %d, want 360", len(tbl.rows))
	}
	if tbl.rows[0][0] != model.LabelA || tbl.rows[180][0] != model.LabelB {
		t.Fatalf("labels = %q/%q, want A/B", tbl.rows[0][0], tbl.rows[180][0])
	}
}

func TestApplyFormUpdatesScenarioB(t *testing.T) {
	a := newTestApp(t)
	a.formTarget = model.LabelB
	a.formVals = &ScenarioValues{Balance: "$1,000", Contribution: "50", Rate: "4%", Years: "10"}
	a.applyForm()

	if !a.compare {
		t.Fatal("editing B should turn comparison on")
	}
	runB, ok := a.result.B()
	if !ok {
		t.Fatal("expected scenario B run")
	}
	if runB.Input.StartingBalance != 1000 || runB.Input.Years != 10 {
		t.Fatalf("B input = %+v", runB.Input)
	}
	if got := len(runB.Ledger); got != 120 {
		t.Fatalf("B ledger rows = %d, want 120", got)
	}
	if a.form != nil {
		t.Fatal("form should be closed after apply")
	}
}

func TestApplyFormRejectsInvalidInput(t *testing.T) {
	a := newTestApp(t)
	before := a.result

	a.formTarget = model.LabelA
	a.formVals = &ScenarioValues{Balance: "100", Contribution: "10", Rate: "0.05", Years: "0"}
	a.applyForm()

	if !a.statusErr {
		t.Fatal("expected an error status for years=0")
	}
	if a.result != before {
		t.Fatal("invalid input should keep the previous result")
	}
	if a.a != model.DefaultScenario() {
		t.Fatalf("scenario A changed to %+v", a.a)
	}
}

func TestValuesRoundTrip(t *testing.T) {
	in := model.ScenarioInput{StartingBalance: 20000, MonthlyContribution: 700, AnnualRate: 0.06, Years: 15}
	got, err := ValuesFrom(in).Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != in {
		t.Fatalf("round trip = %+v, want %+v", got, in)
	}
}

func TestWriteCSVCmd(t *testing.T) {
	a := press(t, newTestApp(t), "c")
	dir := filepath.Join(t.TempDir(), "exports")

	msg, ok := writeCSVCmd(dir, a.result.Runs)().(exportDoneMsg)
	if !ok {
		t.Fatal("expected exportDoneMsg")
	}
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}
	for _, name := range []string{"scenario_a.csv", "scenario_b.csv"} {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if !strings.HasPrefix(string(data), strings.Join(export.CSVHeader, ",")+"\n") {
			t.Errorf("%s does not start with the CSV header", name)
		}
	}

	m, _ := a.Update(msg)
	if got := m.(App).status; !strings.Contains(got, "scenario_a.csv") {
		t.Errorf("status = %q, want mention of scenario_a.csv", got)
	}
}

func TestWritePDFCmd(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()

	msg := writePDFCmd(dir, a.result.Runs)().(exportDoneMsg)
	if msg.err != nil {
		t.Fatalf("export: %v", msg.err)
	}
	data, err := os.ReadFile(filepath.Join(dir, export.ReportFileName))
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if !strings.HasPrefix(string(data), "%PDF-") {
		t.Fatal("report is not a PDF")
	}
}

func TestSettingsThemeCycleSaves(t *testing.T) {
	defer theme.SetActive(theme.FlexokiDark.Name)

	a := press(t, newTestApp(t), "x", "enter")
	if a.cfg.Appearance.Theme != theme.Next(theme.FlexokiDark.Name).Name {
		t.Fatalf("theme = %q, want next after flexoki-dark", a.cfg.Appearance.Theme)
	}
	if theme.Active.Name != a.cfg.Appearance.Theme {
		t.Fatalf("active theme = %q, want %q", theme.Active.Name, a.cfg.Appearance.Theme)
	}
	if a.settings.saveErr != nil {
		t.Fatalf("save: %v", a.settings.saveErr)
	}
	if !config.Exists() {
		t.Fatal("settings change should write the config file")
	}
}

func TestViewRendersEveryTab(t *testing.T) {
	a := resize(press(t, newTestApp(t), "c"), 140, 45)

	for i := range components.Tabs {
		a.activeTab = i
		out := a.View()
		if out == "" {
			t.Fatalf("tab %d rendered nothing", i)
		}
		if got := lipgloss.Height(out); got != 45 {
			t.Errorf("tab %d height = %d, want 45", i, got)
		}
	}
}

func TestViewTooNarrow(t *testing.T) {
	a := resize(newTestApp(t), 60, 20)
	if !strings.Contains(a.View(), "too narrow") {
		t.Fatal("expected narrow-terminal message")
	}
}
