package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/pipeline"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary of exported workbooks",
	Example: "  spendr summary --from expenses.xlsx\n" +
		"  spendr summary -f jan.xlsx -f feb.xlsx --category food",
	RunE: runSummary,
}

func init() {
	addFilterFlags(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	records, err := loadWorkbooks(cmd.Context(), flagFrom)
	if err != nil {
		return err
	}

	filtered, since, until, err := applyFilters(records)
	if err != nil {
		return err
	}
	stats := pipeline.Aggregate(filtered, since, until)

	if stats.Count == 0 {
		fmt.Println("\n  No expenses found in the selected range.")
		return nil
	}

	cur := appCfg.General.Currency

	fmt.Println()
	fmt.Println(cli.RenderTitle("SPENDING  " + rangeLabel(stats, since, until)))
	fmt.Println()

	rows := [][]string{
		{"Expenses", cli.FormatNumber(int64(stats.Count))},
		{"Categories", cli.FormatNumber(int64(stats.Categories))},
		{"Active days", cli.FormatNumber(int64(stats.ActiveDays))},
		{"---"},
		{"Total", cli.RenderAmount(cli.FormatAmount(stats.Total, cur))},
		{"Average", cli.FormatAmount(stats.Average, cur)},
		{"Largest", cli.FormatAmount(stats.Largest, cur)},
		{"Per active day", cli.FormatAmount(stats.PerActiveDay, cur)},
		{"---"},
		{"First", stats.First.String()},
		{"Last", stats.Last.String()},
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	months := pipeline.AggregateMonths(filtered, since, until)
	if len(months) > 1 {
		fmt.Println()
		fmt.Printf("  Monthly  %s  %s\n", cli.RenderSparkline(monthTotals(months)),
			cli.RenderMuted(months[0].Label()+" to "+months[len(months)-1].Label()))
	}
	fmt.Println()

	return nil
}

func monthTotals(months []model.MonthlyStats) []float64 {
	vals := make([]float64, len(months))
	for i, m := range months {
		vals[i] = m.Total.InexactFloat64()
	}
	return vals
}
