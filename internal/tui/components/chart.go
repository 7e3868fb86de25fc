package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/theirongolddev/spendr/internal/tui/theme"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := 0.0
	for _, v := range values {
		peak = math.Max(peak, v)
	}
	if peak == 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = max(0, min(idx, len(sparkBlocks)-1))
		buf.WriteRune(sparkBlocks[idx])
	}

	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// Slice is one segment of a ShareBar.
type Slice struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// ShareBar renders slices as one stacked bar of the given width, each slice
// taking space in proportion to its value. Any slice with a positive value
// gets at least one cell while width allows.
func ShareBar(slices []Slice, width int) string {
	t := theme.Active
	cells := shareCells(slices, width)

	var b strings.Builder
	for i, n := range cells {
		if n == 0 {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(slices[i].Color).Background(t.Surface).
			Render(strings.Repeat("█", n)))
	}
	return b.String()
}

// shareCells splits width among slices by largest remainder.
func shareCells(slices []Slice, width int) []int {
	cells := make([]int, len(slices))
	total := 0.0
	for _, s := range slices {
		if s.Value > 0 {
			total += s.Value
		}
	}
	if total == 0 || width <= 0 {
		return cells
	}

	type rem struct {
		idx  int
		frac float64
	}
	var rems []rem
	used := 0
	for i, s := range slices {
		if s.Value <= 0 {
			continue
		}
		exact := s.Value / total * float64(width)
		cells[i] = int(exact)
		used += cells[i]
		rems = append(rems, rem{i, exact - float64(cells[i])})
	}

	// Hand out leftover cells: empty positive slices first, then by remainder.
	for used < width && len(rems) > 0 {
		best := -1
		for j, r := range rems {
			if best < 0 ||
				(cells[r.idx] == 0 && cells[rems[best].idx] != 0) ||
				(cells[r.idx] == 0) == (cells[rems[best].idx] == 0) && r.frac > rems[best].frac {
				best = j
			}
		}
		cells[rems[best].idx]++
		used++
		rems = append(rems[:best], rems[best+1:]...)
	}
	return cells
}

// chartScale holds the y-axis layout of a BarChart.
type chartScale struct {
	ceiling  float64
	step     float64
	rowsTick int
	height   int
	labelW   int
}

func newChartScale(maxVal float64, height int) chartScale {
	step := chartTickStep(maxVal)
	maxIntervals := max(2, height/2)
	for int(math.Ceil(maxVal/step)) > maxIntervals {
		step *= 2
	}
	ceiling := math.Ceil(maxVal/step) * step
	intervals := max(1, int(math.Round(ceiling/step)))
	rowsTick := max(2, height/intervals)

	return chartScale{
		ceiling:  ceiling,
		step:     step,
		rowsTick: rowsTick,
		height:   rowsTick * intervals,
		labelW:   max(4, len(formatChartLabel(ceiling))+1),
	}
}

// label returns the tick label for a row, or "" between ticks.
func (s chartScale) label(row int) string {
	if row%s.rowsTick != 0 {
		return ""
	}
	return formatChartLabel(s.step * float64(row/s.rowsTick))
}

// BarChart renders a vertical bar chart with a labelled y axis and optional
// x labels. Narrow charts fall back to a sparkline; when bars would be
// thinner than two cells the series is sampled down.
func BarChart(values []float64, labels []string, color lipgloss.Color, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, color)
	}

	t := theme.Active

	maxVal := 0.0
	for _, v := range values {
		maxVal = math.Max(maxVal, v)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	sc := newChartScale(maxVal, height)
	chartW := max(5, width-sc.labelW-1)

	n := len(values)
	gap := 1
	barW := chartW
	if n > 1 {
		barW = (chartW - (n - 1)) / n
	} else {
		gap = 0
	}
	if barW < 2 && n > 1 {
		values, labels = sampleSeries(values, labels, max(2, (chartW+1)/3))
		n = len(values)
		barW = 2
	}
	barW = min(barW, 6)
	axisLen := n*barW + max(0, n-1)*gap

	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)

	var b strings.Builder
	for row := sc.height; row >= 1; row-- {
		rowTop := sc.ceiling * float64(row) / float64(sc.height)
		rowBottom := sc.ceiling * float64(row-1) / float64(sc.height)

		// Upper rows use the brighter accent.
		barColor := color
		if float64(row)/float64(sc.height) > 0.8 {
			barColor = t.AccentBright
		}
		barStyle := lipgloss.NewStyle().Foreground(barColor).Background(t.Surface)

		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", sc.labelW, sc.label(row))))
		b.WriteString(axisStyle.Render("│"))

		for i, v := range values {
			if i > 0 && gap > 0 {
				b.WriteString(blank.Render(strings.Repeat(" ", gap)))
			}
			switch {
			case v >= rowTop:
				b.WriteString(barStyle.Render(strings.Repeat("█", barW)))
			case v > rowBottom:
				idx := int((v - rowBottom) / (rowTop - rowBottom) * 8)
				idx = max(1, min(idx, 8))
				b.WriteString(barStyle.Render(strings.Repeat(string(blocks[idx]), barW)))
			default:
				b.WriteString(blank.Render(strings.Repeat(" ", barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", sc.labelW, "0")))
	b.WriteString(axisStyle.Render("└" + strings.Repeat("─", axisLen)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", sc.labelW+1)))
		b.WriteString(axisStyle.Render(xAxisLabels(labels, barW, gap, axisLen)))
	}

	return b.String()
}

// sampleSeries picks n evenly spaced points, keeping first and last.
func sampleSeries(values []float64, labels []string, n int) ([]float64, []string) {
	src := len(values)
	sampled := make([]float64, n)
	var sampledLabels []string
	if len(labels) == src {
		sampledLabels = make([]string, n)
	}
	for i := range sampled {
		idx := i * (src - 1) / (n - 1)
		sampled[i] = values[idx]
		if sampledLabels != nil {
			sampledLabels[i] = labels[idx]
		}
	}
	return sampled, sampledLabels
}

// xAxisLabels lays labels under their bars, skipping any that would collide,
// and always tries to show the last one.
func xAxisLabels(labels []string, barW, gap, axisLen int) string {
	n := len(labels)
	buf := []rune(strings.Repeat(" ", axisLen))
	put := func(pos int, lbl string) int {
		r := []rune(lbl)
		end := min(pos+len(r), axisLen)
		copy(buf[pos:end], r[:end-pos])
		return end
	}

	step := max(1, (n*8)/(axisLen+1))
	lastEnd := -1
	for i := 0; i < n; i += step {
		pos := i * (barW + gap)
		if pos <= lastEnd || axisLen-pos < 3 {
			continue
		}
		lastEnd = put(pos, labels[i]) + 1
	}
	if n > 1 {
		lbl := []rune(labels[n-1])
		pos := (n - 1) * (barW + gap)
		if pos+len(lbl) > axisLen {
			pos = axisLen - len(lbl)
		}
		if pos >= 0 && pos > lastEnd {
			put(pos, string(lbl))
		}
	}
	return strings.TrimRight(string(buf), " ")
}

// chartTickStep computes a nice tick interval targeting ~5 ticks.
func chartTickStep(maxVal float64) float64 {
	if maxVal <= 0 {
		return 1
	}
	rough := maxVal / 5
	base := math.Pow(10, math.Floor(math.Log10(rough)))
	frac := rough / base

	switch {
	case frac < 1.5:
		return base
	case frac < 3.5:
		return 2 * base
	default:
		return 5 * base
	}
}

func formatChartLabel(v float64) string {
	unit := func(div float64, suffix string) string {
		if v == math.Trunc(v/div)*div {
			return fmt.Sprintf("%.0f%s", v/div, suffix)
		}
		return fmt.Sprintf("%.1f%s", v/div, suffix)
	}
	switch {
	case v >= 1e9:
		return unit(1e9, "B")
	case v >= 1e6:
		return unit(1e6, "M")
	case v >= 1e3:
		return unit(1e3, "k")
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
