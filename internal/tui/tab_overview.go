package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

func (a App) renderOverviewTab(cw int) string {
	t := theme.Active
	stats := a.stats
	cur := a.cfg.General.Currency

	if stats.Count == 0 {
		return a.renderEmptyState(cw)
	}

	var b strings.Builder

	// Row 1: metric cards
	span := fmt.Sprintf("%s to %s", stats.First, stats.Last)
	metrics := []components.Metric{
		{Label: "Total", Value: cli.FormatAmount(stats.Total, cur), Hint: span, Color: t.GreenBright},
		{Label: "Expenses", Value: cli.FormatNumber(int64(stats.Count)),
			Hint: categoryCount(stats.Categories)},
		{Label: "Average", Value: cli.FormatAmount(stats.Average, cur),
			Hint: "largest " + cli.FormatAmount(stats.Largest, cur)},
		{Label: "Per day", Value: cli.FormatAmount(stats.PerActiveDay, cur),
			Hint: cli.FormatCount(stats.ActiveDays, "active day")},
	}
	if a.isCompactLayout() {
		metrics = metrics[:3]
	}
	b.WriteString(components.MetricCardRow(metrics, cw))
	b.WriteString("\n")

	// Row 2: category split + recent expenses
	halves := components.LayoutRow(cw, 2)
	split := components.ContentCard("Spending by Category", a.renderCategorySplit(components.CardInnerWidth(halves[0])), halves[0])
	recent := components.ContentCard("Recent", a.renderRecent(components.CardInnerWidth(halves[1]), 8), halves[1])
	b.WriteString(components.CardRow([]string{split, recent}))
	b.WriteString("\n")

	// Row 3: daily spend
	if len(a.dailyStats) > 0 {
		days := a.dailyStats
		vals := make([]float64, len(days))
		for i, d := range days {
			vals[len(days)-1-i] = d.Total.InexactFloat64()
		}
		chartH := 10
		if a.isCompactLayout() {
			chartH = 7
		}
		b.WriteString(components.ContentCard(
			fmt.Sprintf("Daily Spend (%dd to %s)", len(days), stats.Last),
			components.BarChart(vals, chartDateLabels(days), t.Blue, components.CardInnerWidth(cw), chartH),
			cw,
		))
	}

	return b.String()
}

// renderCategorySplit draws a stacked share bar with a legend, one line per
// category.
func (a App) renderCategorySplit(innerW int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	slices := make([]components.Slice, len(a.categories))
	for i, c := range a.categories {
		slices[i] = components.Slice{Label: c.Category, Value: c.Total.InexactFloat64(), Color: t.CategoryColor(i)}
	}

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	spaceStyle := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	b.WriteString(components.ShareBar(slices, innerW))
	b.WriteString("\n\n")

	amountW := 12
	nameW := max(8, innerW-amountW-10)
	for i, c := range a.categories {
		if i > 0 {
			b.WriteString("\n")
		}
		dot := lipgloss.NewStyle().Foreground(slices[i].Color).Background(t.Surface).Render("●")
		b.WriteString(dot)
		b.WriteString(spaceStyle.Render(" "))
		b.WriteString(labelStyle.Render(fmt.Sprintf("%-*s", nameW, truncStr(c.Category, nameW))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%*s", amountW, cli.FormatAmountShort(c.Total, cur))))
		b.WriteString(mutedStyle.Render(fmt.Sprintf(" %6s", cli.FormatPercent(c.SharePercent))))
	}
	return b.String()
}

// renderRecent lists the newest n expenses.
func (a App) renderRecent(innerW, n int) string {
	t := theme.Active
	cur := a.cfg.General.Currency

	dateStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	catStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	amtStyle := lipgloss.NewStyle().Foreground(t.Green).Background(t.Surface)

	amountW := 12
	catW := max(6, innerW-len("2006-01-02")-amountW-2)

	var b strings.Builder
	for i, e := range a.records {
		if i == n {
			break
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(dateStyle.Render(e.Date().String() + " "))
		b.WriteString(catStyle.Render(fmt.Sprintf("%-*s", catW, truncStr(e.Category(), catW))))
		b.WriteString(amtStyle.Render(fmt.Sprintf("%*s", amountW+1, cli.FormatAmount(e.Amount(), cur))))
	}
	return b.String()
}

func (a App) renderEmptyState(cw int) string {
	t := theme.Active
	muted := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	key := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)

	body := muted.Render("No expenses yet. Press ") + key.Render("a") +
		muted.Render(" to add one, or start with ") + key.Render("spendr --from FILE") +
		muted.Render(" to load an export.")
	return components.ContentCard("Overview", body, cw)
}

func categoryCount(n int) string {
	if n == 1 {
		return "1 category"
	}
	return cli.FormatNumber(int64(n)) + " categories"
}
