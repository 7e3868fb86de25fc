// Package input parses and validates the text a user types before it
// reaches the expense store.
package input

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendr/internal/fault"
	"github.com/theirongolddev/spendr/internal/model"
)

// DefaultCategories is the category list offered when the config sets none.
var DefaultCategories = []string{
	"Groceries",
	"Transport",
	"Entertainment",
	"Clothing",
	"Housing",
	"Utilities",
	"Communication",
	"Health",
	"Education",
	"Other",
}

// ValidationError describes one rejected field.
type ValidationError struct {
	Field  string // "amount", "date" or "category"
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, fault.ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == fault.ErrValidation
}

// MaxSignificantDigits bounds amounts to what a spreadsheet number cell
// stores exactly.
const MaxSignificantDigits = 15

// ParseAmount reads a non-negative decimal. Both "12.34" and "12,34" work.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, &ValidationError{Field: "amount", Reason: "is required"}
	}
	s = strings.ReplaceAll(s, ",", ".")
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "is not a number"}
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "is not a number"}
	}
	if d.IsNegative() {
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw, Reason: "must not be negative"}
	}
	if n := len(strings.TrimRight(d.Coefficient().String(), "0")); n > MaxSignificantDigits {
		return decimal.Zero, &ValidationError{Field: "amount", Value: raw,
			Reason: fmt.Sprintf("has %d significant digits, max %d", n, MaxSignificantDigits)}
	}
	return d, nil
}

// ParseDate reads a YYYY-MM-DD date.
func ParseDate(s string) (model.Date, error) {
	raw := s
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Date{}, &ValidationError{Field: "date", Reason: "is required"}
	}
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, &ValidationError{Field: "date", Value: raw, Reason: "must look like YYYY-MM-DD"}
	}
	return d, nil
}

// ParseCategory checks a category name. With a non-empty allowed list the
// name must match one entry, ignoring case, and the canonical spelling is
// returned.
func ParseCategory(s string, allowed []string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &ValidationError{Field: "category", Reason: "pick one of the listed categories"}
	}
	if len(allowed) == 0 {
		return s, nil
	}
	for _, c := range allowed {
		if strings.EqualFold(c, s) {
			return c, nil
		}
	}
	return "", &ValidationError{Field: "category", Value: s, Reason: "is not a known category"}
}

// ParseExpense validates all three fields and builds the record.
func ParseExpense(category, amount, date string, allowed []string) (model.Expense, error) {
	cat, err := ParseCategory(category, allowed)
	if err != nil {
		return model.Expense{}, err
	}
	amt, err := ParseAmount(amount)
	if err != nil {
		return model.Expense{}, err
	}
	day, err := ParseDate(date)
	if err != nil {
		return model.Expense{}, err
	}
	return model.NewExpense(cat, amt, day), nil
}
