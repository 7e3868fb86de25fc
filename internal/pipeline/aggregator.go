// Package pipeline loads expense workbooks and computes aggregate metrics.
package pipeline

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/model"
)

var hundred = decimal.NewFromInt(100)

// Aggregate computes summary statistics from records dated within
// [since, until]. Zero dates leave that side of the range open.
func Aggregate(records []model.Expense, since, until model.Date) model.SummaryStats {
	filtered := FilterByTime(records, since, until)

	var stats model.SummaryStats
	activeDays := make(map[model.Date]struct{})
	categories := make(map[string]struct{})

	for _, e := range filtered {
		stats.Count++
		stats.Total = stats.Total.Add(e.Amount())
		if e.Amount().GreaterThan(stats.Largest) {
			stats.Largest = e.Amount()
		}

		categories[e.Category()] = struct{}{}

		d := e.Date()
		if d.IsZero() {
			continue
		}
		activeDays[d] = struct{}{}
		if stats.First.IsZero() || d.Before(stats.First) {
			stats.First = d
		}
		if stats.Last.IsZero() || d.After(stats.Last) {
			stats.Last = d
		}
	}

	stats.Categories = len(categories)
	stats.ActiveDays = len(activeDays)

	if stats.Count > 0 {
		stats.Average = stats.Total.Div(decimal.NewFromInt(int64(stats.Count)))
	}
	if stats.ActiveDays > 0 {
		stats.PerActiveDay = stats.Total.Div(decimal.NewFromInt(int64(stats.ActiveDays)))
	}

	return stats
}

// AggregateCategories computes per-category totals and their share of the
// overall total, sorted by total descending. Ties keep first-seen order.
func AggregateCategories(records []model.Expense, since, until model.Date) []model.CategoryStats {
	filtered := FilterByTime(records, since, until)

	catMap := make(map[string]*model.CategoryStats)
	var order []string
	total := decimal.Zero

	for _, e := range filtered {
		cs, ok := catMap[e.Category()]
		if !ok {
			cs = &model.CategoryStats{Category: e.Category()}
			catMap[e.Category()] = cs
			order = append(order, e.Category())
		}
		cs.Count++
		cs.Total = cs.Total.Add(e.Amount())
		total = total.Add(e.Amount())
	}

	cats := make([]model.CategoryStats, 0, len(catMap))
	for _, name := range order {
		cs := catMap[name]
		cs.SharePercent = SharePercent(cs.Total, total)
		cats = append(cats, *cs)
	}
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Total.GreaterThan(cats[j].Total)
	})

	return cats
}

// SharePercent returns part as a percentage of whole, or 0 when whole is 0.
func SharePercent(part, whole decimal.Decimal) float64 {
	if whole.IsZero() {
		return 0
	}
	return part.Div(whole).Mul(hundred).InexactFloat64()
}

// AggregateDays computes per-day totals, most recent first. When both since
// and until are set every day in between is present, so charts show gaps as
// zeros.
func AggregateDays(records []model.Expense, since, until model.Date) []model.DailyStats {
	filtered := FilterByTime(records, since, until)

	dayMap := make(map[model.Date]*model.DailyStats)

	for _, e := range filtered {
		d := e.Date()
		if d.IsZero() {
			continue
		}
		ds, ok := dayMap[d]
		if !ok {
			ds = &model.DailyStats{Date: d}
			dayMap[d] = ds
		}
		ds.Count++
		ds.Total = ds.Total.Add(e.Amount())
	}

	if !since.IsZero() && !until.IsZero() {
		for day := since; !day.After(until); day = model.DateOf(day.Time().AddDate(0, 0, 1)) {
			if _, ok := dayMap[day]; !ok {
				dayMap[day] = &model.DailyStats{Date: day}
			}
		}
	}

	days := make([]model.DailyStats, 0, len(dayMap))
	for _, ds := range dayMap {
		days = append(days, *ds)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.After(days[j].Date)
	})

	return days
}

// AggregateMonths computes per-month totals in chronological order.
func AggregateMonths(records []model.Expense, since, until model.Date) []model.MonthlyStats {
	filtered := FilterByTime(records, since, until)

	type key struct {
		year  int
		month int
	}
	monthMap := make(map[key]*model.MonthlyStats)

	for _, e := range filtered {
		d := e.Date()
		if d.IsZero() {
			continue
		}
		t := d.Time()
		k := key{t.Year(), int(t.Month())}
		ms, ok := monthMap[k]
		if !ok {
			ms = &model.MonthlyStats{Year: t.Year(), Month: t.Month()}
			monthMap[k] = ms
		}
		ms.Count++
		ms.Total = ms.Total.Add(e.Amount())
	}

	months := make([]model.MonthlyStats, 0, len(monthMap))
	for _, ms := range monthMap {
		months = append(months, *ms)
	}
	sort.Slice(months, func(i, j int) bool {
		if months[i].Year != months[j].Year {
			return months[i].Year < months[j].Year
		}
		return months[i].Month < months[j].Month
	})

	return months
}

// AggregateWeekdays computes spending by day of week, Sunday first.
func AggregateWeekdays(records []model.Expense, since, until model.Date) []model.WeekdayStats {
	filtered := FilterByTime(records, since, until)

	days := make([]model.WeekdayStats, 7)
	for i := range days {
		days[i].Weekday = time.Weekday(i)
	}

	for _, e := range filtered {
		if e.Date().IsZero() {
			continue
		}
		w := e.Date().Time().Weekday()
		days[w].Count++
		days[w].Total = days[w].Total.Add(e.Amount())
	}
	return days
}

// FilterByTime returns records dated within [since, until]. Records without
// a date are dropped once either bound is set.
func FilterByTime(records []model.Expense, since, until model.Date) []model.Expense {
	if since.IsZero() && until.IsZero() {
		return records
	}

	var result []model.Expense
	for _, e := range records {
		d := e.Date()
		if d.IsZero() {
			continue
		}
		if !since.IsZero() && d.Before(since) {
			continue
		}
		if !until.IsZero() && d.After(until) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// FilterByCategory returns records whose category contains the given
// substring, ignoring case.
func FilterByCategory(records []model.Expense, category string) []model.Expense {
	if category == "" {
		return records
	}
	var result []model.Expense
	for _, e := range records {
		if containsIgnoreCase(e.Category(), category) {
			result = append(result, e)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
