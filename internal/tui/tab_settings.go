package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/tui/components"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	settingsFieldTheme = iota
	settingsFieldCompare
	settingsFieldExportDir
	settingsFieldSaveDefaults
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool
	saveErr error
}

func newSettingsInput(value string) textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	ti.Placeholder = "directory for CSV and PDF exports"
	ti.SetValue(value)
	ti.Focus()
	return ti
}

// updateSettingsKeys handles navigation on the settings tab. ok reports
// whether msg was consumed.
func (a App) updateSettingsKeys(msg tea.KeyMsg) (m tea.Model, cmd tea.Cmd, ok bool) {
	switch {
	case key.Matches(msg, keys.Down):
		a.settings.cursor = min(a.settings.cursor+1, settingsFieldCount-1)
	case key.Matches(msg, keys.Up):
		a.settings.cursor = max(a.settings.cursor-1, 0)
	case key.Matches(msg, keys.Select):
		return a.settingsActivate()
	default:
		return a, nil, false
	}
	return a, nil, true
}

// settingsActivate applies the selected field. Toggles and actions save
// immediately; the export directory opens a text input.
func (a App) settingsActivate() (tea.Model, tea.Cmd, bool) {
	a.settings.saved = false

	switch a.settings.cursor {
	case settingsFieldTheme:
		next := theme.Next(a.cfg.Appearance.Theme)
		a.cfg.Appearance.Theme = next.Name
		theme.SetActive(next.Name)
	case settingsFieldCompare:
		a.cfg.General.Compare = !a.cfg.General.Compare
	case settingsFieldExportDir:
		a.settings.editing = true
		a.settings.input = newSettingsInput(a.cfg.General.ExportDir)
		return a, textinput.Blink, true
	case settingsFieldSaveDefaults:
		a.cfg.ScenarioA = a.a
		a.cfg.ScenarioB = a.b
	}

	a.saveSettings()
	return a, nil, true
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Select):
		a.cfg.General.ExportDir = strings.TrimSpace(a.settings.input.Value())
		a.settings.editing = false
		a.saveSettings()
		return a, nil
	case key.Matches(msg, keys.Cancel):
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

func (a *App) saveSettings() {
	a.settings.saveErr = config.Save(a.cfg)
	a.settings.saved = a.settings.saveErr == nil
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)

	exportDir := a.cfg.General.ExportDir
	if exportDir == "" {
		exportDir = "(current directory)"
	}
	innerW := components.CardInnerWidth(cw)

	fields := []struct{ label, value string }{
		{"Theme", a.cfg.Appearance.Theme},
		{"Compare on start", strconv.FormatBool(a.cfg.General.Compare)},
		{"Export directory", truncStr(exportDir, innerW-22)},
		{"Save scenarios", "store current A and B as defaults"},
	}

	var form strings.Builder
	for i, f := range fields {
		switch {
		case a.settings.editing && i == a.settings.cursor:
			form.WriteString(markerStyle.Render("▸ "))
			form.WriteString(accentStyle.Render(fmt.Sprintf("%-18s ", f.label)))
			form.WriteString(a.settings.input.View())
		case i == a.settings.cursor:
			line := markerStyle.Render("▸ ") +
				selectedLabelStyle.Render(fmt.Sprintf("%-18s ", f.label+":")) +
				selectedStyle.Render(f.value)
			form.WriteString(line)
			if pad := innerW - lipgloss.Width(line); pad > 0 {
				form.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", pad)))
			}
		default:
			form.WriteString(labelStyle.Render("  " + fmt.Sprintf("%-18s ", f.label+":")))
			form.WriteString(valueStyle.Render(f.value))
		}
		form.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface).
			Render("Save failed: " + a.settings.saveErr.Error()))
	} else if a.settings.saved {
		form.WriteString("\n")
		form.WriteString(lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface).Render("Saved!"))
	}
	form.WriteString("\n")
	form.WriteString(labelStyle.Render("[j/k] navigate  [Enter] change  [Esc] cancel"))

	var info strings.Builder
	info.WriteString(labelStyle.Render("Config file:  ") + valueStyle.Render(config.Path()) + "\n")
	info.WriteString(labelStyle.Render("Default A:    ") + valueStyle.Render(describeInput(a.cfg.ScenarioA)) + "\n")
	info.WriteString(labelStyle.Render("Default B:    ") + valueStyle.Render(describeInput(a.cfg.ScenarioB)) + "\n")
	info.WriteString(labelStyle.Render("Ranges:       ") + valueStyle.Render(fmt.Sprintf(
		"rate 0-100%%, years %d-%d, amounts ≥ 0", model.MinYears, model.MaxYears)))

	return components.ContentCard("Settings", form.String(), cw) + "\n" +
		components.ContentCard("General", info.String(), cw)
}
