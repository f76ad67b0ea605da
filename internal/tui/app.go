// Package tui provides the interactive Bubble Tea dashboard for growthsim.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	tabGrowth = iota
	tabBreakdown
	tabLedger
	tabSettings
)

const (
	minTerminalWidth = 80
	compactWidth     = 120
	maxContentWidth  = 180

	ledgerChrome     = 5 // card border, title, header row, footer
	minContentHeight = 5
)

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config

	// Scenario inputs; b is kept while comparison is off so toggling back restores it.
	a       model.ScenarioInput
	b       model.ScenarioInput
	compare bool

	result *pipeline.Result
	err    error

	// UI state
	width     int
	height    int
	activeTab int
	showHelp  bool

	ledger   ledgerState
	settings settingsState

	// Scenario editor (huh form)
	form       *huh.Form
	formVals   *ScenarioValues
	formTarget string

	status    string
	statusErr bool
}

// NewApp creates the dashboard for the given starting request.
func NewApp(cfg config.Config, req pipeline.Request) App {
	a := App{
		cfg:     cfg,
		a:       req.A,
		b:       cfg.ScenarioB,
		compare: req.B != nil,
	}
	if req.B != nil {
		a.b = *req.B
	}
	a.recompute()
	return a
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.EnableMouseCellMotion
}

// request returns the scenarios currently shown.
func (a App) request() pipeline.Request {
	req := pipeline.Request{A: a.a}
	if a.compare {
		b := a.b
		req.B = &b
	}
	return req
}

// recompute re-runs every scenario from scratch. A failed run keeps the
// previous result on screen and reports the error.
func (a *App) recompute() {
	res, err := pipeline.Run(context.Background(), a.request())
	if err != nil {
		a.err = err
		a.setStatus(err.Error(), true)
		return
	}
	a.err = nil
	a.result = res
	a.ledger.clamp(a.ledgerRowCount(), a.ledgerPageSize())
}

func (a *App) setStatus(msg string, isErr bool) {
	a.status = msg
	a.statusErr = isErr
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(msg.Width).WithHeight(msg.Height)
		}
		a.ledger.clamp(a.ledgerRowCount(), a.ledgerPageSize())
		return a, nil

	case exportDoneMsg:
		if msg.err != nil {
			a.setStatus("export failed: "+msg.err.Error(), true)
		} else {
			a.setStatus("wrote "+strings.Join(msg.paths, ", "), false)
		}
		return a, nil

	case tea.MouseMsg:
		if a.showHelp || a.form != nil {
			return a, nil
		}
		return a.updateMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.form != nil {
			return a.updateForm(msg)
		}
		if a.activeTab == tabSettings && a.settings.editing {
			return a.updateSettingsInput(msg)
		}
		return a.updateKeys(msg)
	}

	// Forward unhandled messages to the form (cursor blinks, etc.)
	if a.form != nil {
		return a.updateForm(msg)
	}
	if a.settings.editing {
		var cmd tea.Cmd
		a.settings.input, cmd = a.settings.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.Help) {
		a.showHelp = !a.showHelp
		return a, nil
	}
	if a.showHelp {
		a.showHelp = false
		return a, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, keys.EditA):
		return a.openForm(model.LabelA)
	case key.Matches(msg, keys.EditB):
		return a.openForm(model.LabelB)
	case key.Matches(msg, keys.Compare):
		a.compare = !a.compare
		a.recompute()
		if a.err == nil {
			a.setStatus(fmt.Sprintf("comparison %s", onOff(a.compare)), false)
		}
		return a, nil
	case key.Matches(msg, keys.WriteCSV):
		if a.result == nil {
			return a, nil
		}
		return a, writeCSVCmd(a.exportDir(), a.result.Runs)
	case key.Matches(msg, keys.WritePDF):
		if a.result == nil {
			return a, nil
		}
		return a, writePDFCmd(a.exportDir(), a.result.Runs)
	case key.Matches(msg, keys.NextTab):
		a.activeTab = (a.activeTab + 1) % len(components.Tabs)
		return a, nil
	case key.Matches(msg, keys.PrevTab):
		a.activeTab = (a.activeTab - 1 + len(components.Tabs)) % len(components.Tabs)
		return a, nil
	}

	switch a.activeTab {
	case tabLedger:
		if a.updateLedgerKeys(msg) {
			return a, nil
		}
	case tabSettings:
		if m, cmd, ok := a.updateSettingsKeys(msg); ok {
			return m, cmd
		}
	}

	if len(msg.Runes) == 1 {
		if idx := components.TabIdxByKey(msg.Runes[0]); idx >= 0 {
			a.activeTab = idx
		}
	}
	return a, nil
}

func (a App) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if a.activeTab == tabLedger {
			a.ledger.scroll(-3, a.ledgerRowCount(), a.ledgerPageSize())
		}
	case tea.MouseButtonWheelDown:
		if a.activeTab == tabLedger {
			a.ledger.scroll(3, a.ledgerRowCount(), a.ledgerPageSize())
		}
	case tea.MouseButtonLeft:
		if msg.Action == tea.MouseActionPress && msg.Y == 0 {
			if tab := a.tabAtX(msg.X); tab >= 0 {
				a.activeTab = tab
			}
		}
	}
	return a, nil
}

// openForm starts the scenario editor for label. Editing B turns comparison on.
func (a App) openForm(label string) (tea.Model, tea.Cmd) {
	in := a.a
	if label == model.LabelB {
		in = a.b
	}
	a.formTarget = label
	a.formVals = ValuesFrom(in)
	a.form = newScenarioForm(label, a.formVals)
	if a.width > 0 {
		a.form = a.form.WithWidth(a.width).WithHeight(a.height)
	}
	return a, a.form.Init()
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok && key.Matches(km, keys.Cancel) {
		a.form = nil
		a.setStatus("edit canceled", false)
		return a, nil
	}

	form, cmd := a.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		a.form = f
	}

	switch a.form.State {
	case huh.StateCompleted:
		a.applyForm()
		return a, nil
	case huh.StateAborted:
		a.form = nil
		return a, nil
	}
	return a, cmd
}

func (a *App) applyForm() {
	defer func() { a.form = nil }()

	in, err := a.formVals.Input()
	if err != nil {
		a.setStatus(err.Error(), true)
		return
	}
	if a.formTarget == model.LabelB {
		a.b = in
		a.compare = true
	} else {
		a.a = in
	}
	a.recompute()
	if a.err == nil {
		a.setStatus("scenario "+a.formTarget+" updated", false)
	}
}

func (a App) exportDir() string {
	if a.cfg.General.ExportDir != "" {
		return a.cfg.General.ExportDir
	}
	return "."
}

func (a App) contentWidth() int {
	return min(a.width, maxContentWidth)
}

func (a App) isCompactLayout() bool {
	return a.contentWidth() < compactWidth
}

func (a App) contentHeight() int {
	// tab bar + scenario line + status bar
	return max(a.height-3, minContentHeight)
}

// View implements tea.Model.
func (a App) View() string {
	if a.width == 0 {
		return ""
	}
	if a.width < minTerminalWidth {
		return a.viewTooNarrow()
	}
	if a.form != nil {
		return a.form.View()
	}
	if a.showHelp {
		return a.viewHelp()
	}
	return a.viewMain()
}

func (a App) viewTooNarrow() string {
	h := max(a.height, 5)
	msg := fmt.Sprintf(
		"\n  Terminal too narrow (%d cols)\n\n  growthsim needs at least %d columns.\n",
		a.width,
		minTerminalWidth,
	)
	return padHeight(truncateHeight(msg, h), h)
}

func (a App) viewHelp() string {
	t := theme.Active

	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderAccent).
		Background(t.Surface).
		Padding(1, 3)
	titleStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface).Bold(true)
	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	keyStyle := lipgloss.NewStyle().Foreground(t.Cyan).Background(t.Surface).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	dimStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	section := func(b *strings.Builder, title string, bindings ...key.Binding) {
		if title != "" {
			b.WriteString(sectionStyle.Render(title))
			b.WriteString("\n")
		}
		for _, bind := range bindings {
			h := bind.Help()
			fmt.Fprintf(b, "  %s  %s\n",
				keyStyle.Render(fmt.Sprintf("%-8s", h.Key)),
				descStyle.Render(h.Desc))
		}
		b.WriteString("\n")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("◈ Keyboard Shortcuts"))
	b.WriteString("\n\n")
	b.WriteString(sectionStyle.Render("Navigation"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", "g b l x")), descStyle.Render("Jump to tab"))
	section(&b, "", keys.PrevTab, keys.NextTab)
	section(&b, "Scenarios", keys.EditA, keys.EditB, keys.Compare)
	section(&b, "Ledger", keys.Down, keys.Up, keys.HalfDown, keys.HalfUp, keys.Bottom, keys.Yearly)
	section(&b, "Export", keys.WriteCSV, keys.WritePDF)
	section(&b, "General", keys.Help, keys.Quit)
	b.WriteString(dimStyle.Render("Press any key to close"))

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, cardStyle.Render(b.String()),
		lipgloss.WithWhitespaceBackground(t.Background))
}

func (a App) viewMain() string {
	t := theme.Active
	w := a.width
	cw := a.contentWidth()
	h := a.height

	header := components.RenderTabBar(a.activeTab, w) + "\n" + a.renderScenarioLine(w)
	statusBar := components.RenderStatusBar(w, "[e/E]edit  [c]ompare  [w]csv  [p]df  [?]help  [q]uit", a.status, a.statusErr)
	contentH := max(h-lipgloss.Height(header)-lipgloss.Height(statusBar), minContentHeight)

	var content string
	if a.result == nil {
		content = components.ContentCard("No results", a.errText(), cw)
	} else {
		switch a.activeTab {
		case tabGrowth:
			content = a.renderGrowthTab(cw)
		case tabBreakdown:
			content = a.renderBreakdownTab(cw)
		case tabLedger:
			content = a.renderLedgerTab(cw)
		case tabSettings:
			content = a.renderSettingsTab(cw)
		}
	}

	content = padHeight(truncateHeight(content, contentH), contentH)
	content = fillLinesWithBackground(content, cw, t.Background)
	content = lipgloss.Place(w, contentH, lipgloss.Center, lipgloss.Top, content,
		lipgloss.WithWhitespaceBackground(t.Background))

	output := lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
	return lipgloss.Place(w, h, lipgloss.Left, lipgloss.Top, output,
		lipgloss.WithWhitespaceBackground(t.Background))
}

// renderScenarioLine shows the active inputs under the tab bar.
func (a App) renderScenarioLine(w int) string {
	t := theme.Active
	dim := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)

	line := dim.Render(" ") + scenarioPill(model.LabelA, a.a)
	if a.compare {
		line += dim.Render(" │ ") + scenarioPill(model.LabelB, a.b)
	} else {
		line += dim.Render(" │ comparison off")
	}
	return lipgloss.NewStyle().Background(t.Surface).Width(w).Render(line)
}

func scenarioPill(label string, in model.ScenarioInput) string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.ScenarioColor(label)).Background(t.Surface).Bold(true)
	textStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	return labelStyle.Render(label) + textStyle.Render(" "+describeInput(in))
}

func (a App) errText() string {
	if a.err != nil {
		return a.err.Error()
	}
	return "nothing to show"
}

// tabAtX returns the tab index at the given X coordinate, or -1 if none.
// Hitboxes use the same widths as RenderTabBar.
func (a App) tabAtX(x int) int {
	pos := 0
	for i, tab := range components.Tabs {
		tabW := components.TabVisualWidth(tab, i == a.activeTab)
		if x >= pos && x < pos+tabW {
			return i
		}
		pos += tabW
		if i < len(components.Tabs)-1 {
			pos++ // separator
		}
	}
	return -1
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func truncStr(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}

func truncateHeight(s string, limit int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= limit {
		return s
	}
	return strings.Join(lines[:limit], "\n")
}

func padHeight(s string, h int) string {
	lines := strings.Split(s, "\n")
	if len(lines) >= h {
		return s
	}
	return s + strings.Repeat("\n", h-len(lines))
}

// fillLinesWithBackground pads each line to width w with the background color.
func fillLinesWithBackground(s string, w int, bg lipgloss.Color) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(w, lipgloss.Left, line, lipgloss.WithWhitespaceBackground(bg))
	}
	return strings.Join(lines, "\n")
}
