package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:         "tui",
	Short:       "Launch interactive dashboard",
	Annotations: map[string]string{interactive: "true"},
	RunE:        runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	app := tui.NewApp(ctx, tui.Options{
		Config:     appCfg,
		ConfigPath: appCfgPath,
		NeedSetup:  !config.Exists(appCfgPath),
		Preload:    flagFrom,
		ExportPath: flagOut,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if a, ok := final.(tui.App); ok {
		logger.Info(ctx, "session ended", zap.Int("expenses", a.Store().Len()))
	}
	return nil
}
