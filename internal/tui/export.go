package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/model"

	tea "github.com/charmbracelet/bubbletea"
)

// exportDoneMsg reports the files written by an export command.
type exportDoneMsg struct {
	paths []string
	err   error
}

// writeCSVCmd writes one CSV ledger per run, named scenario_a.csv / scenario_b.csv.
func writeCSVCmd(dir string, runs []model.Run) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return exportDoneMsg{err: fmt.Errorf("creating export dir: %w", err)}
		}
		var paths []string
		for _, run := range runs {
			path := filepath.Join(dir, export.FileName(run.Label, "csv"))
			if err := writeFile(path, func(f *os.File) error { return export.WriteCSV(f, run.Ledger) }); err != nil {
				return exportDoneMsg{paths: paths, err: err}
			}
			paths = append(paths, path)
		}
		return exportDoneMsg{paths: paths}
	}
}

// writePDFCmd writes a single report covering every run.
func writePDFCmd(dir string, runs []model.Run) tea.Cmd {
	return func() tea.Msg {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return exportDoneMsg{err: fmt.Errorf("creating export dir: %w", err)}
		}
		path := filepath.Join(dir, export.ReportFileName)
		err := writeFile(path, func(f *os.File) error { return export.WritePDF(f, runs, time.Now()) })
		if err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{paths: []string{path}}
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
