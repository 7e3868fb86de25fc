package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/cli"
	"github.com/theirongolddev/spendr/internal/model"
	"github.com/theirongolddev/spendr/internal/pipeline"
	"github.com/theirongolddev/spendr/internal/tui/components"
	"github.com/theirongolddev/spendr/internal/tui/theme"
)

// historyState tracks the history tab: cursor, scroll offset and the
// category filter.
type historyState struct {
	cursor    int
	offset    int
	searching bool
	search    textinput.Model
	filter    string
}

func (h *historyState) clamp(n int) {
	if n == 0 {
		h.cursor, h.offset = 0, 0
		return
	}
	h.cursor = max(0, min(h.cursor, n-1))
	h.offset = max(0, min(h.offset, h.cursor))
}

func (h *historyState) move(delta, n int) {
	h.cursor += delta
	h.clamp(n)
}

// scrollTo keeps the cursor inside a window of visible rows.
func (h *historyState) scrollTo(visible int) {
	if visible <= 0 {
		return
	}
	if h.cursor < h.offset {
		h.offset = h.cursor
	}
	if h.cursor >= h.offset+visible {
		h.offset = h.cursor - visible + 1
	}
}

// historyRecords returns the newest-first records matching the filter.
func (a App) historyRecords() []model.Expense {
	if a.hist.filter == "" {
		return a.records
	}
	return pipeline.FilterByCategory(a.records, a.hist.filter)
}

func (a *App) updateHistoryKey(key string) (bool, tea.Cmd) {
	n := len(a.historyRecords())
	switch key {
	case "j", "down":
		a.hist.move(1, n)
	case "k", "up":
		a.hist.move(-1, n)
	case "g", "home":
		a.hist.cursor = 0
		a.hist.clamp(n)
	case "G", "end":
		a.hist.cursor = n - 1
		a.hist.clamp(n)
	case "/":
		ti := textinput.New()
		ti.Placeholder = "category"
		ti.CharLimit = 64
		ti.Width = 30
		ti.SetValue(a.hist.filter)
		a.hist.search = ti
		a.hist.searching = true
		return true, a.hist.search.Focus()
	case "esc":
		if a.hist.filter == "" {
			return false, nil
		}
		a.hist.filter = ""
		a.hist.clamp(len(a.historyRecords()))
	default:
		return false, nil
	}
	return true, nil
}

func (a App) updateHistorySearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.hist.filter = strings.TrimSpace(a.hist.search.Value())
		a.hist.searching = false
		a.hist.cursor, a.hist.offset = 0, 0
		a.hist.clamp(len(a.historyRecords()))
		return a, nil
	case "esc":
		a.hist.searching = false
		return a, nil
	}

	var cmd tea.Cmd
	a.hist.search, cmd = a.hist.search.Update(msg)
	return a, cmd
}

func (a App) renderHistoryTab(cw, h int) string {
	t := theme.Active
	cur := a.cfg.General.Currency
	records := a.historyRecords()

	innerW := components.CardInnerWidth(cw)

	headerStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface).Bold(true)
	rowStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	mutedStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	selStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.SurfaceBright).Bold(true)

	const (
		dateW   = 12
		dayW    = 5
		amountW = 14
	)
	catW := max(10, innerW-dateW-dayW-amountW)

	var b strings.Builder

	switch {
	case a.hist.searching:
		b.WriteString(mutedStyle.Render("Filter: "))
		b.WriteString(a.hist.search.View())
		b.WriteString("\n")
	case a.hist.filter != "":
		b.WriteString(mutedStyle.Render(fmt.Sprintf("Filter: %q  [/] change  [Esc] clear", a.hist.filter)))
		b.WriteString("\n")
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("%-*s%-*s%-*s%*s",
		dateW, "Date", dayW, "Day", catW, "Category", amountW, "Amount")))
	b.WriteString("\n")

	if len(records) == 0 {
		if a.hist.filter != "" {
			b.WriteString(mutedStyle.Render("No expenses match " + a.hist.filter))
		} else {
			b.WriteString(mutedStyle.Render("No expenses yet. Press a to add one."))
		}
		return components.ContentCard("History", b.String(), cw)
	}

	// Card border, title, header and footer take 6 rows.
	visible := max(1, h-6-strings.Count(b.String(), "\n")+1)
	hist := a.hist
	hist.scrollTo(visible)

	end := min(len(records), hist.offset+visible)
	for i := hist.offset; i < end; i++ {
		e := records[i]
		line := fmt.Sprintf("%-*s%-*s%-*s%*s",
			dateW, e.Date().String(),
			dayW, cli.FormatDayOfWeek(int(e.Date().Time().Weekday())),
			catW, truncStr(e.Category(), catW-1),
			amountW, cli.FormatAmount(e.Amount(), cur))
		if i == hist.cursor {
			b.WriteString(selStyle.Render(lipgloss.NewStyle().Width(innerW).Render(line)))
		} else {
			b.WriteString(rowStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d-%d of %d  [j/k] move  [g/G] first/last  [/] filter",
		hist.offset+1, end, len(records))))

	title := fmt.Sprintf("History (%s)", cli.FormatAmount(pipeline.Aggregate(records, model.Date{}, model.Date{}).Total, cur))
	return components.ContentCard(title, b.String(), cw)
}
