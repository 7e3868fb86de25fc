package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/model"
)

// Synced guards a Store with a read/write mutex for callers that add
// expenses on one goroutine while exporting or rendering on another.
type Synced struct {
	mu    sync.RWMutex
	store *Store
}

// NewSynced wraps s. A nil s gets a fresh Store.
func NewSynced(s *Store) *Synced {
	if s == nil {
		s = New()
	}
	return &Synced{store: s}
}

// AddExpense implements Store.AddExpense under the write lock.
func (l *Synced) AddExpense(category string, amount decimal.Decimal, date model.Date) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.AddExpense(category, amount, date)
}

// Add implements Store.Add under the write lock.
func (l *Synced) Add(records ...model.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.store.Add(records...)
}

// TotalExpenses implements Store.TotalExpenses.
func (l *Synced) TotalExpenses() decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.TotalExpenses()
}

// TotalByCategory implements Store.TotalByCategory.
func (l *Synced) TotalByCategory() map[string]decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.TotalByCategory()
}

// Records implements Store.Records. The returned slice is a snapshot.
func (l *Synced) Records() []model.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Records()
}

// Categories implements Store.Categories.
func (l *Synced) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Categories()
}

// Len implements Store.Len.
func (l *Synced) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.store.Len()
}
