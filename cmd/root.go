// Package cmd implements the spendr CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/input"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/pipeline"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

var (
	flagConfig   string
	flagOut      string
	flagFrom     []string
	flagQuiet    bool
	flagLogLevel string

	flagCategory string
	flagSince    string
	flagUntil    string
)

// Set by initApp before any command runs.
var (
	appCfg     config.Config
	appCfgPath string
	closeLog   = func() error { return nil }
)

// interactive marks commands that own the terminal; they never log to stderr.
const interactive = "interactive"

var rootCmd = &cobra.Command{
	Use:   "spendr",
	Short: "Personal expense tracker",
	Long: "Record expenses, see where the money goes, and export everything to a spreadsheet.\n" +
		"Without a subcommand spendr opens the interactive dashboard.",
	Annotations:        map[string]string{interactive: "true"},
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initApp,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error { return closeLog() },
	RunE:               runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		_ = closeLog()
		fmt.Fprintln(os.Stderr, cli.RenderWarning("  Error: "+err.Error()))
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file (default "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVarP(&flagOut, "out", "o", "", "Export file (default from config)")
	rootCmd.PersistentFlags().StringSliceVarP(&flagFrom, "from", "f", nil, "Exported workbook(s) to load")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
}

// initApp loads config, applies the theme and sets up logging. The command
// context carries the logger from here on.
func initApp(cmd *cobra.Command, _ []string) error {
	appCfgPath = flagConfig
	if appCfgPath == "" {
		appCfgPath = config.ConfigPath()
	}

	cfg, err := config.LoadFrom(appCfgPath)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s:\n%w", appCfgPath, err)
	}
	appCfg = cfg
	theme.SetActive(cfg.Appearance.Theme)

	closer, err := logger.Setup(logger.Options{
		Level:  cfg.Log.Level,
		File:   cfg.LogFile(),
		Stderr: flagLogLevel == "debug" && !isInteractive(cmd),
	})
	if err != nil {
		return fault.Wrap(fault.ErrIO, err, "setting up logging")
	}
	closeLog = closer

	ctx := logger.WithFields(cmd.Context(), zap.String("command", cmd.Name()))
	cmd.SetContext(ctx)
	logger.Debug(ctx, "config loaded",
		zap.String("path", appCfgPath),
		zap.Bool("exists", config.Exists(appCfgPath)))
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Annotations[interactive] == "true"
}

// exitCode maps error kinds to process exit codes.
func exitCode(err error) int {
	switch {
	case errors.Is(err, fault.ErrValidation):
		return 2
	case errors.Is(err, fault.ErrIO):
		return 3
	default:
		return 1
	}
}

// outPath is the export target: --out, else the configured path.
func outPath() string {
	if flagOut != "" {
		return flagOut
	}
	return appCfg.ExportPath()
}

// loadWorkbooks is the shared loading path of the reporting commands. Files
// that fail to read are reported on stderr; loading fails only when none
// could be read.
func loadWorkbooks(ctx context.Context, paths []string) ([]model.Expense, error) {
	if len(paths) == 0 {
		return nil, fault.New(fault.ErrValidation, "no workbook given, use --from FILE")
	}

	progressFn := func(current, total int) {
		if flagQuiet || total < 2 {
			return
		}
		fmt.Fprintf(os.Stderr, "\r  %s", cli.RenderProgressBar(current, total, 30))
	}

	result, err := pipeline.Load(ctx, paths, appCfg.ExportOptions(), progressFn)
	if err != nil {
		return nil, err
	}
	if !flagQuiet && result.TotalFiles > 1 {
		fmt.Fprintln(os.Stderr)
	}

	for _, fe := range result.FileErrors {
		logger.Warn(ctx, "workbook skipped", zap.String("path", fe.Path), zap.Error(fe.Err))
		fmt.Fprintln(os.Stderr, cli.RenderWarning("  "+fe.Error()))
	}
	if result.LoadedFiles == 0 {
		return nil, result.Err()
	}

	records := result.Store.Records()
	logger.Info(ctx, "workbooks loaded",
		zap.Int("files", result.LoadedFiles),
		zap.Int("records", len(records)))
	return records, nil
}

// addFilterFlags registers --category, --since and --until on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&flagCategory, "category", "c", "", "Only this category (substring match)")
	cmd.Flags().StringVar(&flagSince, "since", "", "First date to include (YYYY-MM-DD)")
	cmd.Flags().StringVar(&flagUntil, "until", "", "Last date to include (YYYY-MM-DD)")
}

// applyFilters narrows records by the filter flags and returns the date
// range, whose sides are zero when not set.
func applyFilters(records []model.Expense) ([]model.Expense, model.Date, model.Date, error) {
	var since, until model.Date
	var err error
	if flagSince != "" {
		if since, err = input.ParseDate(flagSince); err != nil {
			return nil, since, until, fmt.Errorf("--since: %w", err)
		}
	}
	if flagUntil != "" {
		if until, err = input.ParseDate(flagUntil); err != nil {
			return nil, since, until, fmt.Errorf("--until: %w", err)
		}
	}
	if !since.IsZero() && !until.IsZero() && until.Before(since) {
		return nil, since, until, fault.New(fault.ErrValidation, "--until %s is before --since %s", until, since)
	}

	filtered := pipeline.FilterByTime(records, since, until)
	if flagCategory != "" {
		filtered = pipeline.FilterByCategory(filtered, flagCategory)
	}
	return filtered, since, until, nil
}

// rangeLabel describes the reported date range.
func rangeLabel(stats model.SummaryStats, since, until model.Date) string {
	from, to := stats.First, stats.Last
	if !since.IsZero() {
		from = since
	}
	if !until.IsZero() {
		to = until
	}
	if from.IsZero() {
		return "all time"
	}
	return fmt.Sprintf("%s to %s", from, to)
}
