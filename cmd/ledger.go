package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/growthsim/internal/cli"
	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagLedgerYearly bool
	flagLedgerLimit  int
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Month-by-month (or yearly) ledger table",
	RunE:  runLedger,
}

func init() {
	ledgerCmd.Flags().BoolVar(&flagLedgerYearly, "yearly", false, "Show one row per year instead of per month")
	ledgerCmd.Flags().IntVarP(&flagLedgerLimit, "limit", "n", 0, "Show only the first N rows per scenario (0 = all)")
	rootCmd.AddCommand(ledgerCmd)
}

func runLedger(cmd *cobra.Command, _ []string) error {
	res, err := simulate(cmd, false)
	if err != nil {
		return err
	}

	withLabel := len(res.Runs) > 1
	var tbl cli.Table
	if flagLedgerYearly {
		tbl = yearlyTable(res.Runs, withLabel)
	} else {
		tbl = monthlyTable(res.Runs, withLabel)
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(tbl))
	return nil
}

func limitRows(n int) int {
	if flagLedgerLimit > 0 {
		return min(n, flagLedgerLimit)
	}
	return n
}

func monthlyTable(runs []model.Run, withLabel bool) cli.Table {
	tbl := cli.Table{
		Title:   "Monthly Ledger",
		Headers: []string{"Month", "Year", "Contribution", "Interest Accrued", "Balance"},
	}
	if withLabel {
		tbl.Headers = append([]string{"Scenario"}, tbl.Headers...)
	}

	for i, run := range runs {
		if i > 0 {
			tbl.Rows = append(tbl.Rows, cli.SeparatorRow)
		}
		for _, r := range run.Ledger[:limitRows(len(run.Ledger))] {
			row := []string{
				strconv.Itoa(r.Month),
				strconv.Itoa(r.Year),
				cli.FormatMoney(r.CumulativeContribution),
				cli.FormatMoney(r.CumulativeInterest),
				cli.FormatMoney(r.Balance),
			}
			if withLabel {
				row = append([]string{run.Label}, row...)
			}
			tbl.Rows = append(tbl.Rows, row)
		}
	}
	return tbl
}

func yearlyTable(runs []model.Run, withLabel bool) cli.Table {
	tbl := cli.Table{
		Title:   "Yearly Ledger",
		Headers: []string{"Year", "Contributions", "Interest", "Interest in Year", "End Balance"},
	}
	if withLabel {
		tbl.Headers = append([]string{"Scenario"}, tbl.Headers...)
	}

	for i, run := range runs {
		if i > 0 {
			tbl.Rows = append(tbl.Rows, cli.SeparatorRow)
		}
		years := pipeline.AggregateYears(run.Ledger)
		for _, y := range years[:limitRows(len(years))] {
			row := []string{
				strconv.Itoa(y.Year),
				cli.FormatMoney(y.CumulativeContribution),
				cli.FormatMoney(y.CumulativeInterest),
				cli.FormatMoney(y.InterestInYear),
				cli.FormatMoney(y.EndBalance),
			}
			if withLabel {
				row = append([]string{run.Label}, row...)
			}
			tbl.Rows = append(tbl.Rows, row)
		}
	}
	return tbl
}
