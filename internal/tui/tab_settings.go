package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/config"
	"github.com/theirongolddev/spendr/internal/logger"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

const (
	settingsFieldTheme = iota
	settingsFieldCurrency
	settingsFieldExportPath
	settingsFieldSheetName
	settingsFieldLogLevel
	settingsFieldCount // sentinel
)

// settingsState tracks the settings tab state.
type settingsState struct {
	cursor  int
	editing bool
	input   textinput.Model
	saved   bool  // show "saved" until the next edit
	saveErr error // non-nil if last save failed
}

func (s *settingsState) move(delta int) {
	s.cursor = (s.cursor + delta + settingsFieldCount) % settingsFieldCount
}

func newSettingsInput() textinput.Model {
	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50
	return ti
}

// settingsField returns a pointer to the config value behind a settings row.
func settingsField(cfg *config.Config, field int) *string {
	switch field {
	case settingsFieldTheme:
		return &cfg.Appearance.Theme
	case settingsFieldCurrency:
		return &cfg.General.Currency
	case settingsFieldExportPath:
		return &cfg.General.ExportPath
	case settingsFieldSheetName:
		return &cfg.Export.SheetName
	case settingsFieldLogLevel:
		return &cfg.Log.Level
	}
	return nil
}

func (a App) settingsStartEdit() (tea.Model, tea.Cmd) {
	a.settings.editing = true
	a.settings.saved = false

	ti := newSettingsInput()
	switch a.settings.cursor {
	case settingsFieldTheme:
		ti.Placeholder = strings.Join(theme.Names(), ", ")
	case settingsFieldCurrency:
		ti.Placeholder = "$"
	case settingsFieldExportPath:
		ti.Placeholder = "expenses.xlsx"
	case settingsFieldSheetName:
		ti.Placeholder = "Expenses"
	case settingsFieldLogLevel:
		ti.Placeholder = "debug, info, warn, error"
	}
	if p := settingsField(&a.cfg, a.settings.cursor); p != nil {
		ti.SetValue(*p)
	}

	a.settings.input = ti
	return a, a.settings.input.Focus()
}

func (a App) updateSettingsInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.settingsSave()
		a.settings.editing = false
		return a, nil
	case "esc":
		a.settings.editing = false
		return a, nil
	}

	var cmd tea.Cmd
	a.settings.input, cmd = a.settings.input.Update(msg)
	return a, cmd
}

// settingsSave applies the edited value, validates the whole config and
// writes it. An invalid value leaves the config untouched.
func (a *App) settingsSave() {
	next := a.cfg
	p := settingsField(&next, a.settings.cursor)
	if p == nil {
		return
	}
	*p = strings.TrimSpace(a.settings.input.Value())

	if err := next.Validate(); err != nil {
		a.settings.saveErr = err
		a.settings.saved = false
		a.setAlert(components.AlertWarn, "Not saved: %v", err)
		return
	}

	levelChanged := next.Log.Level != a.cfg.Log.Level
	a.cfg = next
	theme.SetActive(a.cfg.Appearance.Theme)
	a.exportPath = a.cfg.ExportPath()

	a.settings.saveErr = config.SaveTo(a.cfgPath, a.cfg)
	a.settings.saved = a.settings.saveErr == nil
	if a.settings.saveErr != nil {
		logger.Error(a.ctx, "saving config failed", zap.Error(a.settings.saveErr))
		return
	}
	logger.Info(a.ctx, "config saved", zap.String("path", a.cfgPath))
	if levelChanged {
		a.setAlert(components.AlertInfo, "Log level %s applies on restart", a.cfg.Log.Level)
	}
}

func (a App) renderSettingsTab(cw int) string {
	t := theme.Active
	cfg := a.cfg

	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	selectedStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)
	selectedLabelStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.SurfaceBright).Bold(true)
	accentStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.Surface)
	greenStyle := lipgloss.NewStyle().Foreground(t.GreenBright).Background(t.Surface)
	markerStyle := lipgloss.NewStyle().Foreground(t.AccentBright).Background(t.SurfaceBright)

	orDefault := func(v, def string) string {
		if v == "" {
			return def + " (default)"
		}
		return v
	}

	fields := []struct{ label, value string }{
		{"Theme", cfg.Appearance.Theme},
		{"Currency", cfg.General.Currency},
		{"Export Path", cfg.ExportPath()},
		{"Sheet Name", cfg.ExportLabels().Sheet},
		{"Log Level", orDefault(cfg.Log.Level, "info") + "  (applies on restart)"},
	}

	var formBody strings.Builder
	for i, f := range fields {
		if a.settings.editing && i == a.settings.cursor {
			formBody.WriteString(markerStyle.Render("▸ "))
			formBody.WriteString(accentStyle.Render(fmt.Sprintf("%-14s ", f.label)))
			formBody.WriteString(a.settings.input.View())
			formBody.WriteString("\n")
			continue
		}

		if i == a.settings.cursor {
			marker := markerStyle.Render("▸ ")
			label := selectedLabelStyle.Render(fmt.Sprintf("%-14s ", f.label+":"))
			value := selectedStyle.Render(f.value)
			formBody.WriteString(marker + label + value)
			usedWidth := lipgloss.Width(marker) + lipgloss.Width(label) + lipgloss.Width(value)
			if padLen := components.CardInnerWidth(cw) - usedWidth; padLen > 0 {
				formBody.WriteString(lipgloss.NewStyle().Background(t.SurfaceBright).Render(strings.Repeat(" ", padLen)))
			}
		} else {
			formBody.WriteString(lipgloss.NewStyle().Background(t.Surface).Render("  "))
			formBody.WriteString(labelStyle.Render(fmt.Sprintf("%-14s ", f.label+":")))
			formBody.WriteString(valueStyle.Render(f.value))
		}
		formBody.WriteString("\n")
	}

	if a.settings.saveErr != nil {
		warnStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)
		formBody.WriteString("\n")
		formBody.WriteString(warnStyle.Render(fmt.Sprintf("Save failed: %s", a.settings.saveErr)))
	} else if a.settings.saved {
		formBody.WriteString("\n")
		formBody.WriteString(greenStyle.Render("Saved!"))
	}

	formBody.WriteString("\n")
	formBody.WriteString(labelStyle.Render("[j/k] navigate  [Enter] edit  [Esc] cancel"))

	var infoBody strings.Builder
	infoBody.WriteString(labelStyle.Render("Config file:   ") + valueStyle.Render(a.cfgPath) + "\n")
	infoBody.WriteString(labelStyle.Render("Log file:      ") + valueStyle.Render(cfg.LogFile()) + "\n")
	infoBody.WriteString(labelStyle.Render("Categories:    ") +
		valueStyle.Render(truncStr(strings.Join(cfg.Categories(), ", "), components.CardInnerWidth(cw)-15)) + "\n")
	infoBody.WriteString(labelStyle.Render("In session:    ") + valueStyle.Render(cli.FormatCount(a.store.Len(), "expense")))
	if a.loadTime > 0 {
		infoBody.WriteString("\n")
		infoBody.WriteString(labelStyle.Render("Load time:     ") + valueStyle.Render(fmt.Sprintf("%.1fs", a.loadTime.Seconds())))
	}

	var b strings.Builder
	b.WriteString(components.ContentCard("Settings", formBody.String(), cw))
	b.WriteString("\n")
	b.WriteString(components.ContentCard("Session", infoBody.String(), cw))
	return b.String()
}
