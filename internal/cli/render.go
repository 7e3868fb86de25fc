package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/tui/theme"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	amount lipgloss.Style
	warn   lipgloss.Style
	dim    lipgloss.Style
	border lipgloss.Color
}

// currentStyles builds the styles from the active theme, so a theme chosen
// in config applies to command output too.
func currentStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		amount: lipgloss.NewStyle().Foreground(t.Green),
		warn:   lipgloss.NewStyle().Foreground(t.Orange),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		border: t.Border,
	}
}

// Table represents a bordered text table for CLI output.
//
// A row holding the single cell "---" renders as a separator line.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	s := currentStyles()
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(s.title.Render(title))
}

// RenderWarning renders a one-line warning.
func RenderWarning(msg string) string {
	return currentStyles().warn.Render("  ! " + msg)
}

// RenderMuted renders secondary text such as hints and footers.
func RenderMuted(msg string) string {
	return currentStyles().muted.Render(msg)
}

// RenderAmount renders a formatted amount in the amount color.
func RenderAmount(s string) string {
	return currentStyles().amount.Render(s)
}

// pad pads s with spaces to w terminal cells, on the right or the left.
func pad(s string, w int, right bool) string {
	gap := w - lipgloss.Width(s)
	if gap <= 0 {
		return s
	}
	if right {
		return strings.Repeat(" ", gap) + s
	}
	return s + strings.Repeat(" ", gap)
}

// RenderTable renders a bordered table with headers and rows. The first
// column is left-aligned, the others right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	s := currentStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(s.header.Render(t.Title))
		b.WriteString("\n")
	}

	rule := func(left, mid, right string) {
		b.WriteString(s.dim.Render(left))
		for i, w := range widths {
			b.WriteString(s.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(s.dim.Render(mid))
			}
		}
		b.WriteString(s.dim.Render(right))
		b.WriteString("\n")
	}

	rule("╭", "┬", "╮")

	if len(t.Headers) > 0 {
		b.WriteString(s.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(s.header.Render(" " + pad(h, widths[i], false) + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
		rule("├", "┼", "┤")
	}

	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			rule("├", "┼", "┤")
			continue
		}

		b.WriteString(s.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(s.value.Render(" " + pad(cell, widths[i], i > 0) + " "))
			if i < numCols-1 {
				b.WriteString(s.dim.Render("│"))
			}
		}
		b.WriteString(s.dim.Render("│"))
		b.WriteString("\n")
	}

	rule("╰", "┴", "╯")

	return b.String()
}

// RenderProgressBar renders a simple text progress bar.
func RenderProgressBar(current, total int, width int) string {
	if total <= 0 {
		return ""
	}

	pct := float64(current) / float64(total)
	if pct > 1 {
		pct = 1
	}

	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s/%s",
		currentStyles().muted.Render(bar),
		FormatNumber(int64(current)),
		FormatNumber(int64(total)),
	)
}

// RenderSparkline generates a unicode block sparkline from a series of values.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}
	if maxVal == 0 {
		maxVal = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int(v / maxVal * float64(len(blocks)-1))
		if idx >= len(blocks) {
			idx = len(blocks) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// HorizontalBar returns the bar for value scaled against maxValue, at most
// maxWidth cells wide and unstyled. Any positive value gets at least one
// cell.
func HorizontalBar(value, maxValue float64, maxWidth int) string {
	if maxValue <= 0 || value <= 0 || maxWidth <= 0 {
		return ""
	}
	barLen := int(value / maxValue * float64(maxWidth))
	if barLen < 1 {
		barLen = 1
	}
	if barLen > maxWidth {
		barLen = maxWidth
	}
	return strings.Repeat("█", barLen)
}
