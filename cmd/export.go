package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/export"
	"github.com/theirongolddev/growthsim/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagExportFormat   string
	flagExportOutput   string
	flagExportStdout   bool
	flagExportSaveFile string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the ledger as CSV, a PDF report, or JSON",
	Long: "Write scenario ledgers to disk.\n\n" +
		"  csv   one file per scenario (scenario_a.csv, scenario_b.csv)\n" +
		"        columns: Month,Year,Contribution,Interest Accrued,Balance\n" +
		"  pdf   " + export.ReportFileName + " with summaries and yearly tables\n" +
		"  json  scenarios.json with inputs, ledgers, summaries and the B − A delta",
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportFormat, "format", "csv", "Output format: csv, pdf, or json")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output directory (default: config export_dir or current dir)")
	exportCmd.Flags().BoolVar(&flagExportStdout, "stdout", false, "Write to stdout instead of files (csv: scenario A only)")
	exportCmd.Flags().StringVar(&flagExportSaveFile, "save-file", "", "Also save the resolved scenarios as a YAML file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	format := strings.ToLower(flagExportFormat)
	switch format {
	case "csv", "pdf", "json":
	default:
		return fmt.Errorf("unknown format %q (want csv, pdf, or json)", flagExportFormat)
	}

	cfg := loadConfig()
	req, err := resolveRequest(cmd, cfg, false)
	if err != nil {
		return err
	}
	res, err := pipeline.Run(cmd.Context(), req)
	if err != nil {
		return err
	}

	if flagExportSaveFile != "" {
		if err := config.SaveScenarioFile(flagExportSaveFile, config.ScenarioFile{A: req.A, B: req.B}); err != nil {
			return err
		}
		infof("  Saved scenarios to %s\n", flagExportSaveFile)
	}

	if flagExportStdout {
		return writeExport(os.Stdout, format, res)
	}

	dir := flagExportOutput
	if dir == "" {
		dir = cfg.General.ExportDir
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	paths, err := exportFiles(dir, format, res)
	if err != nil {
		return err
	}
	for _, p := range paths {
		infof("  Wrote %s\n", p)
	}
	return nil
}

// writeExport writes a single-stream rendition of res in the given format.
func writeExport(w io.Writer, format string, res *pipeline.Result) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, res.A().Ledger)
	case "pdf":
		return export.WritePDF(w, res.Runs, time.Now())
	default:
		return export.WriteJSON(w, export.NewDocument(res))
	}
}

// exportFiles writes res into dir and returns the paths it created.
func exportFiles(dir, format string, res *pipeline.Result) ([]string, error) {
	switch format {
	case "csv":
		var paths []string
		for _, run := range res.Runs {
			path := filepath.Join(dir, export.FileName(run.Label, "csv"))
			if err := writeTo(path, func(w io.Writer) error { return export.WriteCSV(w, run.Ledger) }); err != nil {
				return paths, err
			}
			paths = append(paths, path)
		}
		return paths, nil
	case "pdf":
		path := filepath.Join(dir, export.ReportFileName)
		return []string{path}, writeTo(path, func(w io.Writer) error {
			return export.WritePDF(w, res.Runs, time.Now())
		})
	default:
		path := filepath.Join(dir, "scenarios.json")
		return []string{path}, writeTo(path, func(w io.Writer) error {
			return export.WriteJSON(w, export.NewDocument(res))
		})
	}
}

func writeTo(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // output path is chosen by the local user
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
