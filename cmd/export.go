package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/pipeline"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Re-export workbooks into one normalized workbook",
	Long: "Reads one or more exported workbooks, optionally filters them, and writes\n" +
		"the records into a single workbook using the configured sheet layout.",
	Example: "  spendr export -f 2023.xlsx -f 2024.xlsx -o all.xlsx\n" +
		"  spendr export -f expenses.xlsx --since 2024-01-01 -o 2024.xlsx",
	RunE: runExport,
}

func init() {
	addFilterFlags(exportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	records, err := loadWorkbooks(ctx, flagFrom)
	if err != nil {
		return err
	}
	filtered, _, _, err := applyFilters(records)
	if err != nil {
		return err
	}

	path := outPath()
	if err := writeExport(path, filtered); err != nil {
		logger.Error(ctx, "export failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Info(ctx, "exported", zap.String("path", path), zap.Int("rows", len(filtered)))

	if !flagQuiet {
		total := pipeline.Aggregate(filtered, model.Date{}, model.Date{}).Total
		fmt.Printf("  Exported %s (%s) to %s\n",
			cli.FormatCount(len(filtered), "expense"),
			cli.FormatAmount(total, appCfg.General.Currency),
			path)
	}
	return nil
}

func writeExport(path string, records []model.Expense) error {
	return export.ExportToExcel(path, records, appCfg.ExportOptions()...)
}
