package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

func (a App) renderCategoriesTab(cw int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	if len(a.categories) == 0 {
		return a.renderEmptyState(cw)
	}

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)

	const (
		countW  = 8
		amountW = 14
	)
	nameW := min(24, max(10, innerW/4))
	// Meter: label is printed by the table, so MeterBar gets an empty label.
	barW := max(10, innerW-nameW-countW-amountW*2-12)

	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%*s%*s%*s  %s",
		nameW, "Category", countW, "Count", amountW, "Total", amountW, "Average", "Share")))
	b.WriteString("\n")

	for i, c := range a.categories {
		avg := c.Total
		if c.Count > 0 {
			avg = c.Total.DivRound(decimal.NewFromInt(int64(c.Count)), 2)
		}
		b.WriteString(rowStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*d", countW, c.Count)))
		b.WriteString(rowStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatAmount(c.Total, cur))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*s  ", amountW, cli.FormatAmount(avg, cur))))
		b.WriteString(components.MeterBar("", c.SharePercent, t.CategoryColor(i), 0, barW))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(strings.Repeat("─", innerW)))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%*d%*s",
		nameW, "Total", countW, a.stats.Count, amountW, cli.FormatAmount(a.stats.Total, cur))))

	return components.ContentCard(
		fmt.Sprintf("Categories (%d)", len(a.categories)), b.String(), cw)
}
