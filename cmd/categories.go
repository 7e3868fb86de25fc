package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/pipeline"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

var categoriesCmd = &cobra.Command{
	Use:     "categories",
	Aliases: []string{"cats"},
	Short:   "Spending per category",
	RunE:    runCategories,
}

func init() {
	addFilterFlags(categoriesCmd)
	rootCmd.AddCommand(categoriesCmd)
}

func runCategories(cmd *cobra.Command, _ []string) error {
	records, err := loadWorkbooks(cmd.Context(), flagFrom)
	if err != nil {
		return err
	}

	filtered, since, until, err := applyFilters(records)
	if err != nil {
		return err
	}
	cats := pipeline.AggregateCategories(filtered, since, until)

	if len(cats) == 0 {
		fmt.Println("\n  No expenses found in the selected range.")
		return nil
	}

	cur := appCfg.General.Currency
	stats := pipeline.Aggregate(filtered, since, until)

	maxTotal := cats[0].Total.InexactFloat64()
	rows := make([][]string, 0, len(cats)+2)
	for i, c := range cats {
		bar := lipgloss.NewStyle().Foreground(theme.Active.CategoryColor(i)).
			Render(cli.HorizontalBar(c.Total.InexactFloat64(), maxTotal, 20))
		rows = append(rows, []string{
			c.Category,
			cli.FormatNumber(int64(c.Count)),
			cli.FormatAmount(c.Total, cur),
			cli.FormatPercent(c.SharePercent),
			bar,
		})
	}
	rows = append(rows,
		[]string{"---"},
		[]string{"Total", cli.FormatNumber(int64(stats.Count)), cli.FormatAmount(stats.Total, cur), "100.0%", ""},
	)

	fmt.Println()
	fmt.Println(cli.RenderTitle("CATEGORIES  " + rangeLabel(stats, since, until)))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Category", "Count", "Total", "Share", ""},
		Rows:    rows,
	}))
	fmt.Println()

	return nil
}
