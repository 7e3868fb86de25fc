package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/spendr/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	Long: "Prints the effective configuration: the config file with environment\n" +
		"overrides (SPENDR_*) and defaults applied.",
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg := appCfg

	fmt.Printf("  Config file: %s\n", appCfgPath)
	if config.Exists(appCfgPath) {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Categories:  %s\n", strings.Join(cfg.Categories(), ", "))
	fmt.Printf("    Currency:    %s\n", cfg.General.Currency)
	fmt.Printf("    Export path: %s\n", cfg.ExportPath())
	fmt.Println()

	labels := cfg.ExportLabels()
	fmt.Println("  [Export]")
	fmt.Printf("    Sheet name:    %s\n", labels.Sheet)
	fmt.Printf("    Headers:       %s, %s, %s\n", labels.Date, labels.Category, labels.Amount)
	if cfg.Export.AmountFormat != "" {
		fmt.Printf("    Amount format: %s\n", cfg.Export.AmountFormat)
	} else {
		fmt.Println("    Amount format: general")
	}
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Printf("    File:  %s\n", cfg.LogFile())
	fmt.Println()

	fmt.Println("  Run `spendr setup` to reconfigure.")
	return nil
}
