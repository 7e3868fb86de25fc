package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/theirongolddev/spendr/internal/tui/theme"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func TestLayoutRowSumsToTotal(t *testing.T) {
	for total := 10; total < 200; total += 7 {
		for n := 1; n <= 6; n++ {
			sum := 0
			for _, w := range LayoutRow(total, n) {
				sum += w
			}
			if sum != total {
				t.Fatalf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(10, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestCardRowBackgroundFill(t *testing.T) {
	theme.SetActive("flexoki-dark")

	shortCard := ContentCard("Short", "Content", 22)
	tallCard := ContentCard("Tall", "Line 1\nLine 2\nLine 3\nLine 4\nLine 5", 22)

	shortLines := lipgloss.Height(shortCard)
	tallLines := lipgloss.Height(tallCard)
	if shortLines >= tallLines {
		t.Fatal("short card should be shorter than tall card")
	}

	joined := CardRow([]string{shortCard, tallCard})
	lines := strings.Split(joined, "\n")
	if len(lines) != tallLines {
		t.Fatalf("joined height = %d, want %d", len(lines), tallLines)
	}

	// Below the short card, its column is padding and must still be styled.
	for i := shortLines; i < len(lines); i++ {
		if !strings.HasPrefix(lines[i], "\x1b[") {
			t.Errorf("line %d padding has no ANSI background: %q", i, lines[i])
		}
	}
}

func TestMetricCardRowWidth(t *testing.T) {
	metrics := []Metric{
		{Label: "Total", Value: "$100.00"},
		{Label: "Expenses", Value: "3", Hint: "2 categories"},
		{Label: "Average", Value: "$33.33"},
	}
	row := MetricCardRow(metrics, 90)
	for i, line := range strings.Split(row, "\n") {
		if w := lipgloss.Width(line); w != 90 {
			t.Errorf("line %d width = %d, want 90", i, w)
		}
	}
}

func TestTabVisualWidth(t *testing.T) {
	if got := TabVisualWidth(Tabs[0], false); got != len("Overview")+2 {
		t.Errorf("Overview width = %d", got)
	}
	settings := Tabs[len(Tabs)-1]
	if got := TabVisualWidth(settings, false); got != len("Settings")+5 {
		t.Errorf("inactive Settings width = %d", got)
	}
	if got := TabVisualWidth(settings, true); got != len("Settings")+2 {
		t.Errorf("active Settings width = %d", got)
	}
}

func TestRenderTabBarMatchesTabWidths(t *testing.T) {
	for active := range Tabs {
		want := 0
		for i, tab := range Tabs {
			want += TabVisualWidth(tab, i == active)
		}
		want += len(Tabs) - 1

		bar := RenderTabBar(active, want)
		if got := lipgloss.Width(bar); got != want {
			t.Errorf("active=%d: bar width %d, want %d", active, got, want)
		}
	}
}

func TestTabIdxByKey(t *testing.T) {
	if got := TabIdxByKey('h'); got != 2 {
		t.Errorf("TabIdxByKey(h) = %d, want 2", got)
	}
	if got := TabIdxByKey('z'); got != -1 {
		t.Errorf("TabIdxByKey(z) = %d, want -1", got)
	}
}
