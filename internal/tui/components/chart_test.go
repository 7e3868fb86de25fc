package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestShareCells(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		width  int
		want   []int
	}{
		{"even split", []float64{80, 20}, 10, []int{8, 2}},
		{"tiny slice still shows", []float64{99, 1}, 10, []int{9, 1}},
		{"zero slice stays empty", []float64{50, 0, 50}, 10, []int{5, 0, 5}},
		{"nothing to show", []float64{0, 0}, 10, []int{0, 0}},
		{"no width", []float64{1}, 0, []int{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slices := make([]Slice, len(tt.values))
			for i, v := range tt.values {
				slices[i] = Slice{Value: v}
			}
			got := shareCells(slices, tt.width)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("shareCells = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestShareBarWidth(t *testing.T) {
	bar := ShareBar([]Slice{{Value: 3, Color: "#ff0000"}, {Value: 7, Color: "#00ff00"}, {Value: 1, Color: "#0000ff"}}, 40)
	if w := lipgloss.Width(bar); w != 40 {
		t.Errorf("ShareBar width = %d, want 40", w)
	}
}

func TestBarChartHeightAndLabels(t *testing.T) {
	values := []float64{10, 20, 5, 40}
	labels := []string{"Jan", "2", "3", "4"}
	chart := BarChart(values, labels, "#00ff00", 40, 8)

	lines := strings.Split(chart, "\n")
	// Bars, x axis, label row.
	if len(lines) < 4 {
		t.Fatalf("chart has %d lines", len(lines))
	}
	if !strings.Contains(lines[len(lines)-1], "Jan") {
		t.Errorf("label row missing first label: %q", lines[len(lines)-1])
	}
	if !strings.Contains(lines[len(lines)-2], "└") {
		t.Errorf("axis row = %q", lines[len(lines)-2])
	}
}

func TestBarChartNarrowFallsBackToSparkline(t *testing.T) {
	got := BarChart([]float64{1, 2, 3}, nil, "#00ff00", 10, 8)
	if strings.Contains(got, "\n") {
		t.Errorf("narrow chart should be one sparkline row, got %q", got)
	}
}

func TestChartTickStep(t *testing.T) {
	tests := []struct {
		max  float64
		want float64
	}{
		{0, 1},
		{10, 2},
		{100, 20},
		{37, 5},
		{1000, 200},
	}
	for _, tt := range tests {
		if got := chartTickStep(tt.max); got != tt.want {
			t.Errorf("chartTickStep(%v) = %v, want %v", tt.max, got, tt.want)
		}
	}
}

func TestFormatChartLabel(t *testing.T) {
	tests := map[float64]string{
		0.5:     "0.50",
		20:      "20",
		1000:    "1k",
		1500:    "1.5k",
		2000000: "2M",
	}
	for in, want := range tests {
		if got := formatChartLabel(in); got != want {
			t.Errorf("formatChartLabel(%v) = %q, want %q", in, got, want)
		}
	}
}
