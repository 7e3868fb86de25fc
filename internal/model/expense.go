// Package model defines domain types for spendr expenses and their aggregates.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the canonical text form of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time component.
type Date struct {
	t time.Time
}

// NewDate returns the date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time-of-day part of t, keeping its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Time returns the date as midnight UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool { return d.t.After(o.t) }

// Equal reports whether d and o are the same day.
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }

// String formats the date as YYYY-MM-DD.
func (d Date) String() string { return d.t.Format(DateLayout) }

// Expense is one immutable transaction entry.
type Expense struct {
	category string
	amount   decimal.Decimal
	date     Date
}

// NewExpense builds an Expense. No validation happens here; callers parse
// and check their input first.
func NewExpense(category string, amount decimal.Decimal, date Date) Expense {
	return Expense{category: category, amount: amount, date: date}
}

// Category returns the expense category.
func (e Expense) Category() string { return e.category }

// Amount returns the expense amount.
func (e Expense) Amount() decimal.Decimal { return e.amount }

// Date returns the day the expense happened.
func (e Expense) Date() Date { return e.date }

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}
