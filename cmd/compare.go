package cmd

import (
	"fmt"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"

	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Side-by-side comparison of scenarios A and B",
	Long: "Simulate scenarios A and B independently and show their summaries with B − A deltas.\n" +
		"Scenario B comes from --b-* flags, --file, or the [scenario_b] config section.",
	RunE: runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	res, err := simulate(cmd, true)
	if err != nil {
		return err
	}
	a := res.A()
	b, _ := res.B()
	delta, _ := res.Compare()

	fmt.Println()
	fmt.Println(cli.RenderTitle("SCENARIO COMPARISON"))
	fmt.Println()
	fmt.Print(cli.RenderTable(comparisonTable(a, b, delta)))

	for _, run := range res.Runs {
		fmt.Printf("\n  Scenario %s\n", run.Label)
		printTrajectory(run)
	}
	return nil
}

func comparisonTable(a, b model.Run, d model.SummaryDelta) cli.Table {
	row := func(label string, va, vb, delta string) []string {
		return []string{label, va, vb, delta}
	}
	return cli.Table{
		Headers: []string{"Metric", "A", "B", "B − A"},
		Rows: [][]string{
			row("Starting Balance", cli.FormatMoney(a.Input.StartingBalance), cli.FormatMoney(b.Input.StartingBalance),
				cli.FormatDelta(b.Input.StartingBalance-a.Input.StartingBalance)),
			row("Monthly Contribution", cli.FormatMoney(a.Input.MonthlyContribution), cli.FormatMoney(b.Input.MonthlyContribution),
				cli.FormatDelta(b.Input.MonthlyContribution-a.Input.MonthlyContribution)),
			row("Annual Rate", cli.FormatRate(a.Input.AnnualRate), cli.FormatRate(b.Input.AnnualRate), ""),
			row("Horizon", cli.FormatHorizon(a.Summary.Years, a.Summary.Months), cli.FormatHorizon(b.Summary.Years, b.Summary.Months),
				fmt.Sprintf("%+d mo", d.Months)),
			cli.SeparatorRow,
			row("Final Balance", cli.FormatMoney(a.Summary.FinalBalance), cli.FormatMoney(b.Summary.FinalBalance),
				cli.FormatDelta(d.FinalBalance)),
			row("Total Contributions", cli.FormatMoney(a.Summary.TotalContributions), cli.FormatMoney(b.Summary.TotalContributions),
				cli.FormatDelta(d.TotalContributions)),
			row("Total Interest", cli.FormatMoney(a.Summary.TotalInterest), cli.FormatMoney(b.Summary.TotalInterest),
				cli.FormatDelta(d.TotalInterest)),
		},
	}
}
