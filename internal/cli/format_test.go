package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in       string
		currency string
		want     string
	}{
		{"0", "$", "$0.00"},
		{"12.5", "$", "$12.50"},
		{"1234.5", "$", "$1,234.50"},
		{"1234567.891", "€", "€1,234,567.89"},
		{"-42", "$", "-$42.00"},
		{"999.999", "", "1,000.00"},
	}
	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.in), tt.currency)
		if got != tt.want {
			t.Errorf("FormatAmount(%s, %q) = %q, want %q", tt.in, tt.currency, got, tt.want)
		}
	}
}

func TestFormatAmountShort(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.5", "$12.50"},
		{"9999", "$9,999.00"},
		{"12345", "$12.3K"},
		{"2500000", "$2.5M"},
	}
	for _, tt := range tests {
		if got := FormatAmountShort(decimal.RequireFromString(tt.in), "$"); got != tt.want {
			t.Errorf("FormatAmountShort(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatCountAndPercent(t *testing.T) {
	if got := FormatCount(1, "expense"); got != "1 expense" {
		t.Errorf("got %q", got)
	}
	if got := FormatCount(1200, "expense"); got != "1,200 expenses" {
		t.Errorf("got %q", got)
	}
	if got := FormatPercent(66.666); got != "66.7%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatDayOfWeek(1); got != "Mon" {
		t.Errorf("FormatDayOfWeek(1) = %q", got)
	}
}

func TestHorizontalBar(t *testing.T) {
	tests := []struct {
		value, max float64
		width      int
		want       int
	}{
		{50, 100, 20, 10},
		{100, 100, 20, 20},
		{0.1, 100, 20, 1},
		{0, 100, 20, 0},
		{10, 0, 20, 0},
	}
	for _, tt := range tests {
		got := HorizontalBar(tt.value, tt.max, tt.width)
		if n := strings.Count(got, "█"); n != tt.want {
			t.Errorf("HorizontalBar(%v, %v, %d) has %d cells, want %d", tt.value, tt.max, tt.width, n, tt.want)
		}
	}
}

func TestRenderTableAlignsWideRunes(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Категория", "Сумма"},
		Rows: [][]string{
			{"Еда", "80.00"},
			{"---"},
			{"Итого", "100.00"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("got %d lines, want 7:\n%s", len(lines), out)
	}
	want := len([]rune(stripANSI(lines[0])))
	for i, l := range lines {
		if got := len([]rune(stripANSI(l))); got != want {
			t.Errorf("line %d is %d runes wide, want %d: %q", i, got, want, stripANSI(l))
		}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
