package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/store"

	"github.com/spf13/cobra"
)

var flagPresetNote string

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "Manage saved scenario presets",
	Long: "Presets store scenario inputs under a name. Ledgers are never stored;\n" +
		"use --preset NAME with any command to start scenario A from a preset.",
	RunE: runPresetsList,
}

var presetsSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save the resolved scenario A under NAME",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsSave,
}

var presetsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetsList,
}

var presetsShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a preset and its simulated summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsShow,
}

var presetsDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetsDelete,
}

func init() {
	presetsSaveCmd.Flags().StringVar(&flagPresetNote, "note", "", "Free-form note stored with the preset")

	presetsCmd.AddCommand(presetsSaveCmd, presetsListCmd, presetsShowCmd, presetsDeleteCmd)
	rootCmd.AddCommand(presetsCmd)
}

func withLibrary(fn func(lib *store.Library) error) error {
	lib, err := store.Open(store.DefaultPath())
	if err != nil {
		return fmt.Errorf("opening preset library: %w", err)
	}
	defer func() { _ = lib.Close() }()
	return fn(lib)
}

func runPresetsSave(cmd *cobra.Command, args []string) error {
	req, err := resolveRequest(cmd, loadConfig(), false)
	if err != nil {
		return err
	}
	return withLibrary(func(lib *store.Library) error {
		if err := lib.Save(args[0], req.A, flagPresetNote); err != nil {
			return err
		}
		infof("  Saved preset %q (%s)\n", args[0], describeScenario(req.A))
		return nil
	})
}

func runPresetsList(_ *cobra.Command, _ []string) error {
	return withLibrary(func(lib *store.Library) error {
		presets, err := lib.List()
		if err != nil {
			return fmt.Errorf("listing presets: %w", err)
		}
		if len(presets) == 0 {
			fmt.Println("\n  No presets saved. Create one with `growthsim presets save NAME`.")
			return nil
		}

		tbl := cli.Table{
			Title:   fmt.Sprintf("Presets (%d)", len(presets)),
			Headers: []string{"Name", "Balance", "Monthly", "Rate", "Years", "Updated", "Note"},
		}
		for _, p := range presets {
			tbl.Rows = append(tbl.Rows, []string{
				p.Name,
				cli.FormatMoneyWhole(p.Input.StartingBalance),
				cli.FormatMoneyWhole(p.Input.MonthlyContribution),
				cli.FormatRate(p.Input.AnnualRate),
				strconv.Itoa(p.Input.Years),
				p.UpdatedAt.Local().Format(time.DateOnly),
				p.Note,
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(tbl))
		return nil
	})
}

func runPresetsShow(_ *cobra.Command, args []string) error {
	p, err := getPreset(args[0])
	if err != nil {
		return err
	}
	run, err := pipeline.RunOne(model.LabelA, p.Input)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("PRESET " + p.Name))
	if p.Note != "" {
		fmt.Printf("  %s\n", cli.RenderMuted(p.Note))
	}
	fmt.Printf("  %s\n\n", cli.RenderMuted("saved "+p.CreatedAt.Local().Format(time.DateTime)+
		", updated "+p.UpdatedAt.Local().Format(time.DateTime)))
	fmt.Print(cli.RenderTable(summaryTable(run)))
	printTrajectory(run)
	return nil
}

func runPresetsDelete(_ *cobra.Command, args []string) error {
	return withLibrary(func(lib *store.Library) error {
		if err := lib.Delete(args[0]); err != nil {
			return err
		}
		n, _ := lib.Count()
		infof("  Deleted preset %q (%d remaining)\n", args[0], n)
		return nil
	})
}

func describeScenario(in model.ScenarioInput) string {
	return fmt.Sprintf("%s start, %s/mo, %s, %d years",
		cli.FormatMoneyWhole(in.StartingBalance), cli.FormatMoneyWhole(in.MonthlyContribution),
		cli.FormatRate(in.AnnualRate), in.Years)
}
