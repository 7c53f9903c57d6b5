package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewExpense(t *testing.T) {
	at := time.Date(2025, time.February, 1, 9, 30, 0, 0, time.Local)
	e := NewExpense("e1", 12.50, "Lunch", at)

	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, 12.50, e.Amount)
	assert.Equal(t, "Lunch", e.Description)
	assert.Equal(t, at.Format(time.RFC3339), e.Date)
	assert.Equal(t, DefaultExpenseCategory, e.Category)
}

func TestExpense_Time(t *testing.T) {
	t.Run("should parse RFC 3339 timestamps", func(t *testing.T) {
		e := Expense{Date: "2025-02-01T09:30:00Z"}
		assert.Equal(t, time.Date(2025, time.February, 1, 9, 30, 0, 0, time.UTC), e.Time().UTC())
	})

	t.Run("should accept bare day keys from early snapshots", func(t *testing.T) {
		e := Expense{Date: "2025-02-01"}
		parsed := e.Time()
		assert.Equal(t, 2025, parsed.Year())
		assert.Equal(t, time.February, parsed.Month())
		assert.Equal(t, 1, parsed.Day())
	})

	t.Run("should return the zero time for garbage", func(t *testing.T) {
		e := Expense{Date: "whenever"}
		assert.True(t, e.Time().IsZero())
	})
}

func TestExpense_InMonth(t *testing.T) {
	e := NewExpense("e1", 10, "Groceries", time.Date(2025, time.February, 28, 18, 0, 0, 0, time.Local))

	assert.True(t, e.InMonth(2025, time.February))
	assert.False(t, e.InMonth(2025, time.March))
	assert.False(t, e.InMonth(2024, time.February))
}

func TestExpense_Apply(t *testing.T) {
	base := NewExpense("e1", 10, "Coffee", time.Date(2025, time.February, 1, 8, 0, 0, 0, time.Local))

	t.Run("should leave the expense untouched for an empty patch", func(t *testing.T) {
		assert.Equal(t, base, base.Apply(ExpensePatch{}))
	})

	t.Run("should replace only the named fields", func(t *testing.T) {
		amount := 12.75
		updated := base.Apply(ExpensePatch{Amount: &amount})

		assert.Equal(t, 12.75, updated.Amount)
		assert.Equal(t, base.Description, updated.Description)
		assert.Equal(t, base.Date, updated.Date)
		assert.Equal(t, base.Category, updated.Category)
	})

	t.Run("should reformat a patched date as RFC 3339", func(t *testing.T) {
		at := time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)
		updated := base.Apply(ExpensePatch{Date: &at})
		assert.Equal(t, "2025-03-05T12:00:00Z", updated.Date)
	})
}
