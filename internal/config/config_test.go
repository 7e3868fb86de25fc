package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theirongolddev/spendr/internal/export"
	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/input"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, input.DefaultCategories, cfg.Categories())
	require.NoError(t, cfg.Validate())
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.General.Categories = []string{"Rent", "Food"}
	cfg.General.Currency = "€"
	cfg.Export.SheetName = "Расходы"
	cfg.Appearance.Theme = "tokyo-night"

	require.NoError(t, SaveTo(path, cfg))
	require.True(t, Exists(path))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
	assert.Equal(t, "Расходы", got.ExportLabels().Sheet)
	assert.Equal(t, "Date", got.ExportLabels().Date)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[appearance]\ntheme = \"terminal\"\n"), 0o600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "terminal", cfg.Appearance.Theme)
	assert.Equal(t, "$", cfg.General.Currency)
	assert.Equal(t, export.DefaultPath, cfg.ExportPath())
}

func TestLoadBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[general\n"), 0o600))

	_, err := LoadFrom(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fault.ErrValidation)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SPENDR_EXPORT_PATH", "/tmp/out.xlsx")
	t.Setenv("SPENDR_THEME", "catppuccin-mocha")
	t.Setenv("SPENDR_CATEGORIES", "Rent,Food,Fun")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.xlsx", cfg.ExportPath())
	assert.Equal(t, "catppuccin-mocha", cfg.Appearance.Theme)
	assert.Equal(t, []string{"Rent", "Food", "Fun"}, cfg.Categories())
}

func TestDotEnvNextToConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SPENDR_CURRENCY=£\n"), 0o600))
	t.Setenv("SPENDR_CURRENCY", "")
	require.NoError(t, os.Unsetenv("SPENDR_CURRENCY"))

	cfg, err := LoadFrom(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, "£", cfg.General.Currency)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errs   int
	}{
		{"defaults", func(*Config) {}, 0},
		{"empty category", func(c *Config) { c.General.Categories = []string{"Food", " "} }, 1},
		{"duplicate category", func(c *Config) { c.General.Categories = []string{"Food", "food"} }, 1},
		{"long sheet name", func(c *Config) { c.Export.SheetName = "this sheet name is far too long for excel" }, 1},
		{"bad sheet char", func(c *Config) { c.Export.SheetName = "a/b" }, 1},
		{"unknown theme", func(c *Config) { c.Appearance.Theme = "neon" }, 1},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, 1},
		{"everything", func(c *Config) {
			c.General.Categories = []string{""}
			c.Appearance.Theme = "neon"
			c.Log.Level = "chatty"
		}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.errs == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, fault.ErrValidation)
			var joined interface{ Unwrap() []error }
			require.True(t, errors.As(err, &joined))
			assert.Len(t, joined.Unwrap(), tt.errs)
		})
	}
}

func TestLogFileDefault(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	assert.Equal(t, filepath.Join("/xdg", "spendr", "spendr.log"), DefaultConfig().LogFile())

	cfg := DefaultConfig()
	cfg.Log.File = "/var/log/spendr.log"
	assert.Equal(t, "/var/log/spendr.log", cfg.LogFile())
}
