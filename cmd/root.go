// Package cmd implements the growthsim CLI commands.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/config"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"
	"github.com/theirongolddev/growthsim/internal/store"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	flagBalance      string
	flagContribution string
	flagRate         string
	flagYears        string

	flagCompare       bool
	flagBBalance      string
	flagBContribution string
	flagBRate         string
	flagBYears        string

	flagFile   string
	flagPreset string
	flagQuiet  bool
)

var rootCmd = &cobra.Command{
	Use:   "growthsim",
	Short: "Savings growth simulator",
	Long: "Simulate monthly compound growth of a starting balance plus end-of-month contributions,\n" +
		"and compare two scenarios side by side.",
	SilenceUsage:      true,
	PersistentPreRunE: loadEnv,
	RunE:              runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	registerScenarioFlags(rootCmd)
}

// registerScenarioFlags binds the scenario flags as persistent flags of c.
func registerScenarioFlags(c *cobra.Command) {
	pf := c.PersistentFlags()
	pf.StringVar(&flagBalance, "balance", "", "Scenario A starting balance (e.g. 20000 or $20,000)")
	pf.StringVar(&flagContribution, "contribution", "", "Scenario A monthly contribution")
	pf.StringVar(&flagRate, "rate", "", "Scenario A annual rate (0.06 or 6%)")
	pf.StringVar(&flagYears, "years", "", "Scenario A horizon in whole years (1-60)")

	pf.BoolVar(&flagCompare, "compare", false, "Also simulate scenario B")
	pf.StringVar(&flagBBalance, "b-balance", "", "Scenario B starting balance")
	pf.StringVar(&flagBContribution, "b-contribution", "", "Scenario B monthly contribution")
	pf.StringVar(&flagBRate, "b-rate", "", "Scenario B annual rate")
	pf.StringVar(&flagBYears, "b-years", "", "Scenario B horizon in whole years")

	pf.StringVarP(&flagFile, "file", "f", "", "Read scenarios from a YAML file")
	pf.StringVar(&flagPreset, "preset", "", "Start scenario A from a saved preset")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output on stderr")
}

// loadEnv reads a .env file from the working directory when one exists.
func loadEnv(_ *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

func infof(format string, args ...any) {
	if flagQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}

// loadConfig loads the config file, falling back to defaults with a warning.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "  Warning: %v (using defaults)\n", err)
	}
	return cfg
}

// scenarioFlags names the four flags that describe one scenario.
type scenarioFlags struct {
	balance, contribution, rate, years string
}

var (
	flagsA = scenarioFlags{"balance", "contribution", "rate", "years"}
	flagsB = scenarioFlags{"b-balance", "b-contribution", "b-rate", "b-years"}
)

// set reports whether any of the scenario's flags were given.
func (sf scenarioFlags) set(cmd *cobra.Command) bool {
	f := cmd.Flags()
	return f.Changed(sf.balance) || f.Changed(sf.contribution) || f.Changed(sf.rate) || f.Changed(sf.years)
}

// apply overrides fields of in with any flags the user set explicitly.
func (sf scenarioFlags) apply(cmd *cobra.Command, in model.ScenarioInput) (model.ScenarioInput, error) {
	f := cmd.Flags()
	var err error
	if f.Changed(sf.balance) {
		v, _ := f.GetString(sf.balance)
		if in.StartingBalance, err = cli.ParseAmount(v); err != nil {
			return in, fmt.Errorf("--%s: %w", sf.balance, err)
		}
	}
	if f.Changed(sf.contribution) {
		v, _ := f.GetString(sf.contribution)
		if in.MonthlyContribution, err = cli.ParseAmount(v); err != nil {
			return in, fmt.Errorf("--%s: %w", sf.contribution, err)
		}
	}
	if f.Changed(sf.rate) {
		v, _ := f.GetString(sf.rate)
		if in.AnnualRate, err = cli.ParseRate(v); err != nil {
			return in, fmt.Errorf("--%s: %w", sf.rate, err)
		}
	}
	if f.Changed(sf.years) {
		v, _ := f.GetString(sf.years)
		if in.Years, err = cli.ParseYears(v); err != nil {
			return in, fmt.Errorf("--%s: %w", sf.years, err)
		}
	}
	return in, nil
}

// resolveRequest builds the scenarios to run. Later sources override earlier
// ones: config file, preset, YAML file, then explicit flags. forceCompare
// always includes scenario B.
func resolveRequest(cmd *cobra.Command, cfg config.Config, forceCompare bool) (pipeline.Request, error) {
	a, b := cfg.ScenarioA, cfg.ScenarioB
	compare := cfg.General.Compare || forceCompare

	if flagPreset != "" {
		p, err := getPreset(flagPreset)
		if err != nil {
			return pipeline.Request{}, err
		}
		a = p.Input
	}

	if flagFile != "" {
		sf, err := config.LoadScenarioFile(flagFile)
		if err != nil {
			return pipeline.Request{}, err
		}
		a = sf.A
		if sf.B != nil {
			b = *sf.B
			compare = true
		}
	}

	var err error
	if a, err = flagsA.apply(cmd, a); err != nil {
		return pipeline.Request{}, err
	}
	if flagsB.set(cmd) {
		compare = true
		if b, err = flagsB.apply(cmd, b); err != nil {
			return pipeline.Request{}, err
		}
	}
	if cmd.Flags().Changed("compare") && !forceCompare {
		compare = flagCompare
	}

	req := pipeline.Request{A: a}
	if compare {
		req.B = &b
	}
	for _, li := range req.Labelled() {
		if err := li.Input.Validate(); err != nil {
			return pipeline.Request{}, fmt.Errorf("scenario %s: %w", li.Label, err)
		}
	}
	return req, nil
}

func getPreset(name string) (store.Preset, error) {
	var p store.Preset
	err := withLibrary(func(lib *store.Library) error {
		var err error
		p, err = lib.Get(name)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("preset %q not found (see `growthsim presets list`)", name)
		}
		return err
	})
	return p, err
}

// simulate resolves the request from flags and runs it.
func simulate(cmd *cobra.Command, forceCompare bool) (*pipeline.Result, error) {
	req, err := resolveRequest(cmd, loadConfig(), forceCompare)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(cmd.Context(), req)
}
