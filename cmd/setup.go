package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:         "setup",
	Short:       "Setup wizard",
	Annotations: map[string]string{interactive: "true"},
	RunE:        runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := appCfg

	vals := tui.NewSetupValues(cfg)
	if err := tui.NewSetupForm(vals).RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("  Setup canceled, nothing saved.")
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}
	vals.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveTo(appCfgPath, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Info(ctx, "config saved", zap.String("path", appCfgPath))

	fmt.Println()
	fmt.Printf("  Saved to %s\n", appCfgPath)
	fmt.Println("  Run `spendr setup` anytime to reconfigure.")
	fmt.Println()
	return nil
}
