package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/pipeline"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

func (a App) renderTrendsTab(cw int) string {
	if a.stats.Count == 0 {
		return a.renderEmptyState(cw)
	}

	var b strings.Builder

	if a.isCompactLayout() {
		b.WriteString(components.ContentCard("Monthly", a.renderMonthly(), cw))
		b.WriteString("\n")
		b.WriteString(components.ContentCard("By Weekday", a.renderWeekdays(components.CardInnerWidth(cw)), cw))
		return b.String()
	}

	halves := components.LayoutRow(cw, 2)
	monthly := components.ContentCard("Monthly", a.renderMonthly(), halves[0])
	weekdays := components.ContentCard("By Weekday", a.renderWeekdays(components.CardInnerWidth(halves[1])), halves[1])
	b.WriteString(components.CardRow([]string{monthly, weekdays}))
	return b.String()
}

// renderMonthly lists month totals with the change against the prior month,
// newest last, under a sparkline of the whole series.
func (a App) renderMonthly() string {
	t := theme.Active
	cur := a.cfg.General.Currency

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	upStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	downStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	months := a.months
	vals := make([]float64, len(months))
	for i, m := range months {
		vals[i] = m.Total.InexactFloat64()
	}

	var b strings.Builder
	b.WriteString(components.Sparkline(vals, t.Blue))
	b.WriteString("\n\n")

	const (
		labelW  = 10
		countW  = 7
		amountW = 14
	)
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%*s%*s%9s", labelW, "Month", countW, "Count", amountW, "Total", "Change")))

	// Show the most recent 12 months.
	start := max(0, len(months)-12)
	for i := start; i < len(months); i++ {
		m := months[i]
		b.WriteString("\n")
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", labelW, m.Label())))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*d", countW, m.Count)))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatAmount(m.Total, cur))))
		if i == 0 || months[i-1].Total.IsZero() {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%9s", "-")))
			continue
		}
		prev := months[i-1].Total
		delta := pipeline.SharePercent(m.Total.Sub(prev), prev)
		style := downStyle
		if delta > 0 {
			style = upStyle
		}
		b.WriteString(style.Render(fmt.Sprintf("%+8.0f%%", delta)))
	}
	return b.String()
}

// renderWeekdays shows one bar per day of the week, Monday first.
func (a App) renderWeekdays(innerW int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Magenta).Background(t.Surface)

	maxVal := 0.0
	for _, d := range a.weekdays {
		maxVal = max(maxVal, d.Total.InexactFloat64())
	}

	const amountW = 13
	barW := max(5, innerW-4-amountW-2)

	var b strings.Builder
	for i := 0; i < 7; i++ {
		d := a.weekdays[(i+1)%7]
		if i > 0 {
			b.WriteString("\n")
		}
		bar := cli.HorizontalBar(d.Total.InexactFloat64(), maxVal, barW)
		b.WriteString(rowStyle.Render(cli.FormatDayOfWeek(int(d.Weekday)) + " "))
		b.WriteString(barStyle.Render(fmt.Sprintf("%-*s", barW, bar)))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %*s", amountW, cli.FormatAmount(d.Total, cur))))
	}
	return b.String()
}
