package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SummaryStats holds the top-level aggregate across all expenses.
type SummaryStats struct {
	Count      int
	Categories int
	ActiveDays int

	Total   decimal.Decimal
	Average decimal.Decimal // per expense
	Largest decimal.Decimal

	PerActiveDay decimal.Decimal

	First Date
	Last  Date
}

// CategoryStats holds aggregated amounts for a single category.
type CategoryStats struct {
	Category     string
	Count        int
	Total        decimal.Decimal
	SharePercent float64
}

// DailyStats holds spending for a single calendar day.
type DailyStats struct {
	Date  Date
	Count int
	Total decimal.Decimal
}

// MonthlyStats holds spending for one calendar month.
type MonthlyStats struct {
	Year  int
	Month time.Month
	Count int
	Total decimal.Decimal
}

// Label returns the month as "Jan 2006".
func (m MonthlyStats) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("Jan 2006")
}

// WeekdayStats holds spending attributed to one day of the week.
type WeekdayStats struct {
	Weekday time.Weekday
	Count   int
	Total   decimal.Decimal
}
