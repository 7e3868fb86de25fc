package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/ledger"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/tui"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add expenses with a form, then export them",
	Long: "Prompts for expenses until you stop, then writes them to the export file.\n" +
		"With --from, the records of existing workbooks are kept in front of the new ones.",
	Annotations: map[string]string{interactive: "true"},
	RunE:        runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	store := ledger.New()

	if len(flagFrom) > 0 {
		records, err := loadWorkbooks(ctx, flagFrom)
		if err != nil {
			return err
		}
		store.Add(records...)
	}
	loaded := store.Len()

	cur := appCfg.General.Currency
	for {
		vals := tui.NewExpenseValues(time.Now())
		if err := tui.NewExpenseForm(appCfg.Categories(), vals).RunWithContext(ctx); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				break
			}
			return fmt.Errorf("expense form: %w", err)
		}

		e, err := vals.Parse(appCfg.Categories())
		if err != nil {
			fmt.Println(cli.RenderWarning("  " + err.Error()))
			continue
		}
		store.AddExpense(e.Category(), e.Amount(), e.Date())
		logger.Info(ctx, "expense added",
			zap.String("category", e.Category()),
			zap.String("amount", e.Amount().String()),
			zap.Stringer("date", e.Date()))
		fmt.Printf("  + %s  %s  %s\n", e.Date(), e.Category(), cli.RenderAmount(cli.FormatAmount(e.Amount(), cur)))

		more := true
		err = huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Add another?").
				Affirmative("Yes").
				Negative("Done").
				Value(&more),
		)).RunWithContext(ctx)
		if err != nil && !errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("confirm: %w", err)
		}
		if err != nil || !more {
			break
		}
	}

	added := store.Len() - loaded
	if added == 0 {
		fmt.Println(cli.RenderMuted("  Nothing added."))
		return nil
	}

	path := outPath()
	if err := writeExport(path, store.Records()); err != nil {
		logger.Error(ctx, "export failed", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Info(ctx, "exported", zap.String("path", path), zap.Int("rows", store.Len()))

	fmt.Printf("\n  Added %s, total %s. Saved to %s\n",
		cli.FormatCount(added, "expense"),
		cli.FormatAmount(store.TotalExpenses(), cur),
		path)
	return nil
}
