// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount formats a money amount with two decimals, thousands
// separators and the currency symbol in front.
// e.g., (1234.5, "$") -> "$1,234.50"
func FormatAmount(d decimal.Decimal, currency string) string {
	if d.IsNegative() {
		return "-" + FormatAmount(d.Neg(), currency)
	}

	fixed := d.StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return currency + fixed
	}
	return currency + FormatNumber(n) + "." + frac
}

// FormatAmountShort formats an amount with a human-readable suffix for
// tight spaces like metric cards.
// e.g., 1234 -> "$1.2K", 1234567 -> "$1.2M", 12.5 -> "$12.50"
func FormatAmountShort(d decimal.Decimal, currency string) string {
	f := d.InexactFloat64()
	abs := f
	if abs < 0 {
		abs = -abs
	}

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%s%.1fB", currency, f/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%s%.1fM", currency, f/1_000_000)
	case abs >= 10_000:
		return fmt.Sprintf("%s%.1fK", currency, f/1_000)
	default:
		return FormatAmount(d, currency)
	}
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-100 share as a percentage string.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatCount formats n with a noun, pluralized with a trailing "s".
// e.g., (1, "expense") -> "1 expense", (1200, "expense") -> "1,200 expenses"
func FormatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return FormatNumber(int64(n)) + " " + noun + "s"
}

// FormatDayOfWeek returns a 3-letter day abbreviation from a weekday number.
func FormatDayOfWeek(weekday int) string {
	days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if weekday >= 0 && weekday < 7 {
		return days[weekday]
	}
	return "???"
}
