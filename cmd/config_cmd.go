package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/model"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Compare on start: %v\n", cfg.General.Compare)
	if cfg.General.ExportDir != "" {
		fmt.Printf("    Export directory: %s\n", cfg.General.ExportDir)
	} else {
		fmt.Println("    Export directory: current directory")
	}
	fmt.Println()

	printScenarioSection("Scenario A", cfg.ScenarioA)
	printScenarioSection("Scenario B", cfg.ScenarioB)

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Address:     %s\n", config.GetServerAddr(cfg))
	fmt.Printf("    Runs buffer: %d\n", cfg.Server.RunsBuffer)
	fmt.Println()

	fmt.Println("  Run `growthsim setup` to reconfigure.")
	return nil
}

func printScenarioSection(title string, in model.ScenarioInput) {
	fmt.Printf("  [%s]\n", title)
	fmt.Printf("    Starting balance:     %s\n", cli.FormatMoney(in.StartingBalance))
	fmt.Printf("    Monthly contribution: %s\n", cli.FormatMoney(in.MonthlyContribution))
	fmt.Printf("    Annual rate:          %s\n", cli.FormatRate(in.AnnualRate))
	fmt.Printf("    Years:                %d\n", in.Years)
	fmt.Println()
}
