// Package config loads and saves spendr settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/input"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

// Config holds all spendr configuration.
//
// Values come from the defaults, then the TOML file, then SPENDR_*
// environment variables (a .env file may supply those).
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Export     ExportConfig     `toml:"export"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Categories []string `toml:"categories,omitempty" env:"SPENDR_CATEGORIES" env-separator:","`
	Currency   string   `toml:"currency" env:"SPENDR_CURRENCY"`
	ExportPath string   `toml:"export_path" env:"SPENDR_EXPORT_PATH"`
}

// ExportConfig controls the spreadsheet layout.
type ExportConfig struct {
	SheetName      string `toml:"sheet_name" env:"SPENDR_SHEET_NAME"`
	DateHeader     string `toml:"date_header" env:"SPENDR_DATE_HEADER"`
	CategoryHeader string `toml:"category_header" env:"SPENDR_CATEGORY_HEADER"`
	AmountHeader   string `toml:"amount_header" env:"SPENDR_AMOUNT_HEADER"`
	AmountFormat   string `toml:"amount_format,omitempty" env:"SPENDR_AMOUNT_FORMAT"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme" env:"SPENDR_THEME"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level" env:"SPENDR_LOG_LEVEL"`
	File  string `toml:"file,omitempty" env:"SPENDR_LOG_FILE"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Currency:   "$",
			ExportPath: export.DefaultPath,
		},
		Export: ExportConfig{
			SheetName:      export.DefaultLabels.Sheet,
			DateHeader:     export.DefaultLabels.Date,
			CategoryHeader: export.DefaultLabels.Category,
			AmountHeader:   export.DefaultLabels.Amount,
			AmountFormat:   "#,##0.00",
		},
		Appearance: AppearanceConfig{
			Theme: theme.FlexokiDark.Name,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "spendr")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "spendr")
}

// ConfigPath returns the full path to the default config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the default config file. See LoadFrom.
func Load() (Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads the config file at path, returning defaults if it doesn't
// exist, then applies environment overrides. A .env file in the working
// directory or next to the config file is loaded first; it never replaces
// variables that are already set.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	if err := loadDotEnv(".env", filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fault.Wrap(fault.ErrValidation, err, "parsing config %s", path)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fault.Wrap(fault.ErrIO, err, "reading config")
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, fault.Wrap(fault.ErrValidation, err, "reading environment")
	}

	return cfg, nil
}

func loadDotEnv(files ...string) error {
	seen := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true
		if _, err := os.Stat(abs); err != nil {
			continue
		}
		if err := godotenv.Load(abs); err != nil {
			return fault.Wrap(fault.ErrValidation, err, "loading %s", f)
		}
	}
	return nil
}

// Save writes the config to the default path.
func Save(cfg Config) error {
	return SaveTo(ConfigPath(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fault.Wrap(fault.ErrIO, err, "creating config dir")
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fault.Wrap(fault.ErrIO, err, "creating config file")
	}

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		_ = f.Close()
		return fault.Wrap(fault.ErrIO, err, "writing config")
	}
	return fault.Wrap(fault.ErrIO, f.Close(), "closing config")
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Categories returns the configured category list, or the defaults.
func (c Config) Categories() []string {
	if len(c.General.Categories) == 0 {
		return input.DefaultCategories
	}
	return c.General.Categories
}

// ExportLabels returns the workbook labels, with defaults for empty fields.
func (c Config) ExportLabels() export.Labels {
	l := export.DefaultLabels
	if c.Export.SheetName != "" {
		l.Sheet = c.Export.SheetName
	}
	if c.Export.DateHeader != "" {
		l.Date = c.Export.DateHeader
	}
	if c.Export.CategoryHeader != "" {
		l.Category = c.Export.CategoryHeader
	}
	if c.Export.AmountHeader != "" {
		l.Amount = c.Export.AmountHeader
	}
	return l
}

// ExportOptions returns the options for export.ExportToExcel and
// export.ReadExcel.
func (c Config) ExportOptions() []export.Option {
	return []export.Option{
		export.WithLabels(c.ExportLabels()),
		export.WithAmountFormat(c.Export.AmountFormat),
	}
}

// ExportPath returns the default export target.
func (c Config) ExportPath() string {
	if c.General.ExportPath == "" {
		return export.DefaultPath
	}
	return c.General.ExportPath
}

// LogFile returns the log file path, defaulting to spendr.log in the config
// directory.
func (c Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	return filepath.Join(ConfigDir(), "spendr.log")
}

// Validate reports every problem in the config at once.
func (c Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fault.New(fault.ErrValidation, format, args...))
	}

	seen := make(map[string]bool)
	for i, cat := range c.General.Categories {
		name := strings.TrimSpace(cat)
		if name == "" {
			add("general.categories[%d]: empty name", i)
			continue
		}
		if seen[strings.ToLower(name)] {
			add("general.categories[%d]: duplicate %q", i, name)
		}
		seen[strings.ToLower(name)] = true
	}

	if err := CheckSheetName(c.Export.SheetName); err != nil {
		add("export.sheet_name: %v", err)
	}

	if _, ok := theme.Lookup(c.Appearance.Theme); !ok {
		add("appearance.theme: unknown theme %q (have %s)", c.Appearance.Theme, strings.Join(theme.Names(), ", "))
	}

	if c.Log.Level != "" {
		if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
			add("log.level: %v", err)
		}
	}

	return errors.Join(errs...)
}

// CheckSheetName applies the spreadsheet rules for sheet names. Empty means
// the default.
func CheckSheetName(name string) error {
	if name == "" {
		return nil
	}
	if n := len([]rune(name)); n > 31 {
		return fmt.Errorf("%q is %d characters, max 31", name, n)
	}
	if strings.ContainsAny(name, `[]:*?/\`) {
		return fmt.Errorf("%q contains one of []:*?/\\", name)
	}
	return nil
}
