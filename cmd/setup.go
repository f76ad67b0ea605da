package cmd

import (
	"errors"
	"fmt"

	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/tui"
	"github.com/theirongolddev/growthsim/internal/tui/theme"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	cfg := loadConfig()

	themeName := cfg.Appearance.Theme
	compare := cfg.General.Compare
	exportDir := cfg.General.ExportDir
	valsA := tui.ValuesFrom(cfg.ScenarioA)
	valsB := tui.ValuesFrom(cfg.ScenarioB)

	fmt.Println()
	fmt.Println("  Welcome to growthsim!")
	fmt.Println()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&themeName),
			huh.NewConfirm().
				Title("Compare two scenarios by default?").
				Value(&compare),
			huh.NewInput().
				Title("Export directory").
				Description("Where CSV and PDF files are written; blank for the current directory").
				Value(&exportDir),
		).Title("Preferences"),
		tui.ScenarioGroup("Default scenario A", valsA),
		tui.ScenarioGroup("Default scenario B", valsB),
	).WithTheme(huh.ThemeBase16())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled; nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	a, err := valsA.Input()
	if err != nil {
		return fmt.Errorf("scenario A: %w", err)
	}
	b, err := valsB.Input()
	if err != nil {
		return fmt.Errorf("scenario B: %w", err)
	}

	cfg.Appearance.Theme = themeName
	cfg.General.Compare = compare
	cfg.General.ExportDir = exportDir
	cfg.ScenarioA = a
	cfg.ScenarioB = b

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `growthsim setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
