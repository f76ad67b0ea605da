package cmd

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed templates/notes.md
var notesTemplate string

var (
	flagNotesRaw   bool
	flagNotesWidth int
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Explain the growth model using the current scenarios",
	RunE:  runNotes,
}

func init() {
	notesCmd.Flags().BoolVar(&flagNotesRaw, "raw", false, "Print the markdown source instead of rendering it")
	notesCmd.Flags().IntVar(&flagNotesWidth, "width", 80, "Word-wrap width for rendered output")
	rootCmd.AddCommand(notesCmd)
}

var notesFuncs = template.FuncMap{
	"money":   cli.FormatMoney,
	"rate":    cli.FormatRate,
	"percent": cli.FormatPercent,
	"delta":   cli.FormatDelta,
	"horizon": cli.FormatHorizon,
	"monthly": func(annual float64) string {
		return fmt.Sprintf("%.4f%%", annual/12*100)
	},
	"principal": func(run model.Run) float64 {
		return run.Input.StartingBalance + run.Summary.TotalContributions
	},
	"share": func(run model.Run) float64 {
		return pipeline.InterestShare(run.Summary)
	},
}

// renderNotes executes the notes template for a result.
func renderNotes(res *pipeline.Result) (string, error) {
	tmpl, err := template.New("notes").Funcs(notesFuncs).Parse(notesTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing notes template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, export.NewDocument(res)); err != nil {
		return "", fmt.Errorf("rendering notes: %w", err)
	}
	return buf.String(), nil
}

func runNotes(cmd *cobra.Command, _ []string) error {
	res, err := simulate(cmd, false)
	if err != nil {
		return err
	}
	md, err := renderNotes(res)
	if err != nil {
		return err
	}
	if flagNotesRaw {
		fmt.Print(md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(flagNotesWidth),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	fmt.Print(out)
	return nil
}
