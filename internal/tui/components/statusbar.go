package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/tui/theme"
)

// AlertLevel picks the color of a status bar message.
type AlertLevel int

// Alert levels.
const (
	AlertInfo AlertLevel = iota
	AlertSuccess
	AlertWarn
	AlertError
)

// Status is what the status bar shows on its right side.
type Status struct {
	Summary string // e.g. "12 expenses · $340.00"
	Alert   string
	Level   AlertLevel
	Busy    string // non-empty while a background job runs
}

// RenderStatusBar renders the bottom status bar.
func RenderStatusBar(width int, s Status) string {
	t := theme.Active

	base := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	keyStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	left := base.Render(" ") +
		keyStyle.Render("a") + base.Render(" add  ") +
		keyStyle.Render("w") + base.Render(" export  ") +
		keyStyle.Render("?") + base.Render(" help  ") +
		keyStyle.Render("q") + base.Render(" quit")

	var right string
	switch {
	case s.Busy != "":
		right = lipgloss.NewStyle().Foreground(t.Yellow).Background(t.Surface).Render(s.Busy + " ")
	case s.Alert != "":
		color := t.TextPrimary
		switch s.Level {
		case AlertSuccess:
			color = t.GreenBright
		case AlertWarn:
			color = t.Orange
		case AlertError:
			color = t.Red
		}
		right = lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(s.Alert + " ")
	case s.Summary != "":
		right = base.Render(s.Summary + " ")
	}

	padding := width - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 0 {
		padding = 0
	}

	return left + base.Render(strings.Repeat(" ", padding)) + right
}
