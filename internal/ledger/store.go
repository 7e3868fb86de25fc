// Package ledger holds the in-memory expense store for one session.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/model"
)

// Store groups expenses by category. It is not safe for concurrent use;
// wrap it in Synced when more than one goroutine touches it.
type Store struct {
	byCategory map[string][]model.Expense
	order      []string // categories in first-insertion order
	count      int
}

// New returns an empty store.
func New() *Store {
	return &Store{byCategory: make(map[string][]model.Expense)}
}

// AddExpense appends a record under category, creating the group if needed.
func (s *Store) AddExpense(category string, amount decimal.Decimal, date model.Date) {
	if s.byCategory == nil {
		s.byCategory = make(map[string][]model.Expense)
	}
	list, ok := s.byCategory[category]
	if !ok {
		s.order = append(s.order, category)
	}
	s.byCategory[category] = append(list, model.NewExpense(category, amount, date))
	s.count++
}

// Add appends existing records, keeping their categories.
func (s *Store) Add(records ...model.Expense) {
	for _, e := range records {
		s.AddExpense(e.Category(), e.Amount(), e.Date())
	}
}

// TotalExpenses returns the sum of every amount, zero when empty.
func (s *Store) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, cat := range s.order {
		total = total.Add(sumAmounts(s.byCategory[cat]))
	}
	return total
}

// TotalByCategory returns the sum per category. Only categories holding at
// least one record appear.
func (s *Store) TotalByCategory() map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal, len(s.order))
	for _, cat := range s.order {
		totals[cat] = sumAmounts(s.byCategory[cat])
	}
	return totals
}

// Records returns all expenses: categories in the order they were first
// added, records in insertion order within each category.
func (s *Store) Records() []model.Expense {
	out := make([]model.Expense, 0, s.count)
	for _, cat := range s.order {
		out = append(out, s.byCategory[cat]...)
	}
	return out
}

// ByCategory returns a copy of the records filed under category.
func (s *Store) ByCategory(category string) []model.Expense {
	return append([]model.Expense(nil), s.byCategory[category]...)
}

// Categories returns the categories present, in first-insertion order.
func (s *Store) Categories() []string {
	return append([]string(nil), s.order...)
}

// Len returns the number of records.
func (s *Store) Len() int { return s.count }

func sumAmounts(list []model.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range list {
		sum = sum.Add(e.Amount())
	}
	return sum
}
