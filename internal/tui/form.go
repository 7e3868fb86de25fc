package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"

	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/input"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

// ExpenseValues holds the raw text of the add-expense form.
type ExpenseValues struct {
	Category string
	Amount   string
	Date     string
}

// NewExpenseValues returns form values with the date preset to now.
func NewExpenseValues(now time.Time) *ExpenseValues {
	return &ExpenseValues{Date: model.DateOf(now).String()}
}

// Parse validates the values against the allowed categories.
func (v *ExpenseValues) Parse(allowed []string) (model.Expense, error) {
	return input.ParseExpense(v.Category, v.Amount, v.Date, allowed)
}

// NewExpenseForm builds the add-expense form bound to vals. Esc aborts.
func NewExpenseForm(categories []string, vals *ExpenseValues) *huh.Form {
	if vals.Category == "" && len(categories) > 0 {
		vals.Category = categories[0]
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Category").
				Options(huh.NewOptions(categories...)...).
				Value(&vals.Category),
			huh.NewInput().
				Title("Amount").
				Placeholder("12.50").
				Value(&vals.Amount).
				Validate(func(s string) error {
					_, err := input.ParseAmount(s)
					return err
				}),
			huh.NewInput().
				Title("Date").
				Description(model.DateLayout).
				Value(&vals.Date).
				Validate(func(s string) error {
					_, err := input.ParseDate(s)
					return err
				}),
		).Title("Add expense"),
	)
	return form.WithTheme(formTheme()).WithKeyMap(formKeyMap()).WithShowHelp(true)
}

// SetupValues holds the answers of the setup form.
type SetupValues struct {
	Theme      string
	Currency   string
	ExportPath string
	SheetName  string
	LogLevel   string
}

// NewSetupValues seeds the setup form from an existing config.
func NewSetupValues(cfg config.Config) *SetupValues {
	return &SetupValues{
		Theme:      cfg.Appearance.Theme,
		Currency:   cfg.General.Currency,
		ExportPath: cfg.ExportPath(),
		SheetName:  cfg.ExportLabels().Sheet,
		LogLevel:   cfg.Log.Level,
	}
}

// Apply copies the answers into cfg. Blank answers keep the current value.
func (v *SetupValues) Apply(cfg *config.Config) {
	set := func(dst *string, val string) {
		if val = strings.TrimSpace(val); val != "" {
			*dst = val
		}
	}
	set(&cfg.Appearance.Theme, v.Theme)
	set(&cfg.General.Currency, v.Currency)
	set(&cfg.General.ExportPath, v.ExportPath)
	set(&cfg.Export.SheetName, v.SheetName)
	set(&cfg.Log.Level, v.LogLevel)
}

// NewSetupForm builds the first-run setup form bound to vals.
func NewSetupForm(vals *SetupValues) *huh.Form {
	if vals.LogLevel == "" {
		vals.LogLevel = "info"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("Welcome to spendr").
				Description("A few settings, all of which can be changed later\nin the Settings tab or with `spendr setup`."),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Color theme").
				Options(huh.NewOptions(theme.Names()...)...).
				Value(&vals.Theme),
			huh.NewInput().
				Title("Currency symbol").
				Placeholder("$").
				Value(&vals.Currency),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Export file").
				Placeholder("expenses.xlsx").
				Value(&vals.ExportPath),
			huh.NewInput().
				Title("Sheet name").
				Placeholder("Expenses").
				Value(&vals.SheetName).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return nil
					}
					return config.CheckSheetName(strings.TrimSpace(s))
				}),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&vals.LogLevel),
		),
	)
	return form.WithTheme(formTheme()).WithKeyMap(formKeyMap()).WithShowHelp(true)
}

// formKeyMap makes esc abort a form in addition to ctrl+c.
func formKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	)
	return km
}

// formTheme picks the huh theme closest to the active dashboard theme.
func formTheme() *huh.Theme {
	switch theme.Active.Name {
	case "catppuccin-mocha":
		return huh.ThemeCatppuccin()
	case "terminal":
		return huh.ThemeBase16()
	default:
		return huh.ThemeCharm()
	}
}
