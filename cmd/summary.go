package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"

	"github.com/spf13/cobra"
)

const sparkWidth = 48

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Final balance, contributions, and interest for each scenario",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	res, err := simulate(cmd, false)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("SAVINGS GROWTH"))
	fmt.Println()

	for _, run := range res.Runs {
		fmt.Print(cli.RenderTable(summaryTable(run)))
		printTrajectory(run)
		fmt.Println()
	}

	if delta, ok := res.Compare(); ok {
		fmt.Print(cli.RenderTable(deltaTable(delta)))
	}
	return nil
}

func summaryTable(run model.Run) cli.Table {
	in, s := run.Input, run.Summary
	return cli.Table{
		Title:   "Scenario " + run.Label,
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Starting Balance", cli.FormatMoney(in.StartingBalance)},
			{"Monthly Contribution", cli.FormatMoney(in.MonthlyContribution)},
			{"Annual Rate", cli.FormatRate(in.AnnualRate)},
			{"Horizon", cli.FormatHorizon(s.Years, s.Months)},
			cli.SeparatorRow,
			{"Final Balance", cli.FormatMoney(s.FinalBalance)},
			{"Total Contributions", cli.FormatMoney(s.TotalContributions)},
			{"Total Interest", cli.FormatMoney(s.TotalInterest)},
			{"Interest Share", cli.FormatPercent(pipeline.InterestShare(s))},
		},
	}
}

func deltaTable(d model.SummaryDelta) cli.Table {
	return cli.Table{
		Title:   "B vs A",
		Headers: []string{"Metric", "B − A"},
		Rows: [][]string{
			{"Final Balance", cli.FormatDelta(d.FinalBalance)},
			{"Total Contributions", cli.FormatDelta(d.TotalContributions)},
			{"Total Interest", cli.FormatDelta(d.TotalInterest)},
			{"Months", fmt.Sprintf("%+d", d.Months)},
		},
	}
}

// printTrajectory prints a balance sparkline and the principal/interest split.
func printTrajectory(run model.Run) {
	series := pipeline.Downsample(pipeline.BalanceSeries(run.Ledger), sparkWidth)
	s := run.Summary
	principal := run.Input.StartingBalance + s.TotalContributions

	fmt.Printf("  Balance   %s\n", cli.RenderSparkline(series))
	fmt.Printf("  Split     %s\n", cli.RenderSplitBar(principal, s.TotalInterest, s.FinalBalance, sparkWidth))
	fmt.Printf("  %s\n", cli.RenderMuted("blue: principal  green: interest"))
}
