package domain

import (
	"time"
)

// DefaultExpenseCategory is assigned to every new expense. Categories are
// kept for forward compatibility; no computed view uses them yet.
const DefaultExpenseCategory = "General"

// Expense represents a single logged expense. Date is an ISO timestamp; its
// local calendar year and month bucket the expense into the monthly view.
// Amount is a currency-agnostic non-negative magnitude.
type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category"`
}

// NewExpense creates an expense logged at the given instant.
func NewExpense(id string, amount float64, description string, at time.Time) Expense {
	return Expense{
		ID:          id,
		Amount:      amount,
		Description: description,
		Date:        at.Format(time.RFC3339),
		Category:    DefaultExpenseCategory,
	}
}

// Time parses the expense timestamp. Stored values are RFC 3339, but a bare
// day key is accepted too since early snapshots recorded dates without a
// time component. Returns the zero time when the value is unparsable.
func (e Expense) Time() time.Time {
	if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
		return t
	}
	if d, err := ParseDay(e.Date); err == nil {
		return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
	}
	return time.Time{}
}

// InMonth reports whether the expense falls in the given local calendar
// year and month.
func (e Expense) InMonth(year int, month time.Month) bool {
	t := e.Time()
	if t.IsZero() {
		return false
	}
	local := t.Local()
	return local.Year() == year && local.Month() == month
}

// ExpensePatch names the expense fields a partial update may replace.
// Nil fields are left untouched.
type ExpensePatch struct {
	Amount      *float64
	Description *string
	Date        *time.Time
	Category    *string
}

// Apply merges the patch over the expense field by field.
func (e Expense) Apply(p ExpensePatch) Expense {
	if p.Amount != nil {
		e.Amount = *p.Amount
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.Date != nil {
		e.Date = p.Date.Format(time.RFC3339)
	}
	if p.Category != nil {
		e.Category = *p.Category
	}
	return e
}
