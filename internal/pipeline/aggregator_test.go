package pipeline

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/model"
)

func exp(cat, amount string, y int, m time.Month, d int) model.Expense {
	return model.NewExpense(cat, decimal.RequireFromString(amount), model.NewDate(y, m, d))
}

func fixture() []model.Expense {
	return []model.Expense{
		exp("Groceries", "50", 2024, time.January, 1),
		exp("Transport", "20", 2024, time.January, 1),
		exp("Groceries", "30", 2024, time.January, 3),
		exp("Health", "20", 2024, time.February, 10),
	}
}

func TestAggregate(t *testing.T) {
	stats := Aggregate(fixture(), model.Date{}, model.Date{})

	if stats.Count != 4 {
		t.Errorf("Count = %d, want 4", stats.Count)
	}
	if stats.Categories != 3 {
		t.Errorf("Categories = %d, want 3", stats.Categories)
	}
	if stats.ActiveDays != 3 {
		t.Errorf("ActiveDays = %d, want 3", stats.ActiveDays)
	}
	if !stats.Total.Equal(decimal.NewFromInt(120)) {
		t.Errorf("Total = %s, want 120", stats.Total)
	}
	if !stats.Average.Equal(decimal.NewFromInt(30)) {
		t.Errorf("Average = %s, want 30", stats.Average)
	}
	if !stats.PerActiveDay.Equal(decimal.NewFromInt(40)) {
		t.Errorf("PerActiveDay = %s, want 40", stats.PerActiveDay)
	}
	if !stats.Largest.Equal(decimal.NewFromInt(50)) {
		t.Errorf("Largest = %s, want 50", stats.Largest)
	}
	if got := stats.First.String(); got != "2024-01-01" {
		t.Errorf("First = %s", got)
	}
	if got := stats.Last.String(); got != "2024-02-10" {
		t.Errorf("Last = %s", got)
	}
}

func TestAggregateEmpty(t *testing.T) {
	stats := Aggregate(nil, model.Date{}, model.Date{})
	if stats.Count != 0 || !stats.Total.IsZero() || !stats.Average.IsZero() {
		t.Errorf("empty aggregate = %+v", stats)
	}
	if !stats.First.IsZero() {
		t.Errorf("First = %s, want zero", stats.First)
	}
}

func TestAggregateCategories(t *testing.T) {
	cats := AggregateCategories(fixture(), model.Date{}, model.Date{})

	want := []struct {
		name  string
		total int64
		share float64
	}{
		{"Groceries", 80, 80.0 / 120 * 100},
		{"Transport", 20, 20.0 / 120 * 100},
		{"Health", 20, 20.0 / 120 * 100},
	}
	if len(cats) != len(want) {
		t.Fatalf("got %d categories, want %d", len(cats), len(want))
	}
	for i, w := range want {
		c := cats[i]
		if c.Category != w.name {
			t.Errorf("cats[%d] = %s, want %s", i, c.Category, w.name)
		}
		if !c.Total.Equal(decimal.NewFromInt(w.total)) {
			t.Errorf("%s total = %s, want %d", w.name, c.Total, w.total)
		}
		if diff := c.SharePercent - w.share; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%s share = %f, want %f", w.name, c.SharePercent, w.share)
		}
	}
}

func TestSharePercentZeroWhole(t *testing.T) {
	if got := SharePercent(decimal.NewFromInt(5), decimal.Zero); got != 0 {
		t.Errorf("SharePercent(5, 0) = %f, want 0", got)
	}
}

func TestAggregateDaysFillsGaps(t *testing.T) {
	since := model.NewDate(2024, time.January, 1)
	until := model.NewDate(2024, time.January, 4)
	days := AggregateDays(fixture(), since, until)

	if len(days) != 4 {
		t.Fatalf("got %d days, want 4", len(days))
	}
	wantDates := []string{"2024-01-04", "2024-01-03", "2024-01-02", "2024-01-01"}
	wantTotals := []int64{0, 30, 0, 70}
	for i := range days {
		if days[i].Date.String() != wantDates[i] {
			t.Errorf("days[%d].Date = %s, want %s", i, days[i].Date, wantDates[i])
		}
		if !days[i].Total.Equal(decimal.NewFromInt(wantTotals[i])) {
			t.Errorf("days[%d].Total = %s, want %d", i, days[i].Total, wantTotals[i])
		}
	}
}

func TestAggregateMonths(t *testing.T) {
	months := AggregateMonths(fixture(), model.Date{}, model.Date{})
	if len(months) != 2 {
		t.Fatalf("got %d months, want 2", len(months))
	}
	if months[0].Label() != "Jan 2024" || months[1].Label() != "Feb 2024" {
		t.Errorf("labels = %s, %s", months[0].Label(), months[1].Label())
	}
	if !months[0].Total.Equal(decimal.NewFromInt(100)) || months[0].Count != 3 {
		t.Errorf("January = %+v", months[0])
	}
}

func TestAggregateWeekdays(t *testing.T) {
	days := AggregateWeekdays(fixture(), model.Date{}, model.Date{})
	if len(days) != 7 {
		t.Fatalf("got %d weekdays", len(days))
	}
	// 2024-01-01 was a Monday.
	if !days[time.Monday].Total.Equal(decimal.NewFromInt(70)) {
		t.Errorf("Monday total = %s, want 70", days[time.Monday].Total)
	}
	if days[time.Sunday].Weekday != time.Sunday {
		t.Errorf("days[0] = %s", days[0].Weekday)
	}
}

func TestFilterByTime(t *testing.T) {
	tests := []struct {
		name         string
		since, until model.Date
		want         int
	}{
		{"open", model.Date{}, model.Date{}, 4},
		{"since inclusive", model.NewDate(2024, time.January, 3), model.Date{}, 2},
		{"until inclusive", model.Date{}, model.NewDate(2024, time.January, 1), 2},
		{"window", model.NewDate(2024, time.January, 2), model.NewDate(2024, time.January, 31), 1},
		{"empty window", model.NewDate(2025, time.January, 1), model.Date{}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FilterByTime(fixture(), tt.since, tt.until); len(got) != tt.want {
				t.Errorf("got %d records, want %d", len(got), tt.want)
			}
		})
	}
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		filter string
		want   int
	}{
		{"", 4},
		{"groceries", 2},
		{"PORT", 1},
		{"rent", 0},
	}
	for _, tt := range tests {
		if got := FilterByCategory(fixture(), tt.filter); len(got) != tt.want {
			t.Errorf("FilterByCategory(%q) = %d records, want %d", tt.filter, len(got), tt.want)
		}
	}
}
