package repository

import (
	"context"
	"sort"
	"time"

	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/storage"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// ExpenseKey is the storage slot holding the expense collection.
const ExpenseKey = "doit-expenses"

// ExpenseRepository owns the expense collection. New expenses are
// prepended so the collection reads newest-first without a sort key.
type ExpenseRepository struct {
	store    sqlite.Store
	key      string
	expenses []domain.Expense
}

// NewExpenseRepository loads the expense collection from the store.
func NewExpenseRepository(ctx context.Context, store sqlite.Store, key string) *ExpenseRepository {
	if key == "" {
		key = ExpenseKey
	}
	return &ExpenseRepository{
		store:    store,
		key:      key,
		expenses: storage.LoadCollection[domain.Expense](ctx, store, key),
	}
}

func (r *ExpenseRepository) save(ctx context.Context) error {
	return storage.SaveCollection(ctx, r.store, r.key, r.expenses)
}

func (r *ExpenseRepository) indexOf(id string) int {
	for i, e := range r.expenses {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// Add prepends the expense to the collection.
func (r *ExpenseRepository) Add(ctx context.Context, expense domain.Expense) error {
	r.expenses = append([]domain.Expense{expense}, r.expenses...)
	return r.save(ctx)
}

// Delete removes the expense with the given id; missing ids are a no-op.
func (r *ExpenseRepository) Delete(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
	return r.save(ctx)
}

// Edit applies a partial field replacement in one atomic step.
func (r *ExpenseRepository) Edit(ctx context.Context, id string, patch domain.ExpensePatch) error {
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("expense", id)
	}
	r.expenses[i] = r.expenses[i].Apply(patch)
	return r.save(ctx)
}

// All returns a copy of the whole collection, newest first.
func (r *ExpenseRepository) All() []domain.Expense {
	out := make([]domain.Expense, len(r.expenses))
	copy(out, r.expenses)
	return out
}

// ForMonth returns the expenses falling in the given local calendar year
// and month, in collection order.
func (r *ExpenseRepository) ForMonth(year int, month time.Month) []domain.Expense {
	var out []domain.Expense
	for _, e := range r.expenses {
		if e.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

// TotalForMonth sums the amounts of a month's expenses; zero for an empty
// month.
func (r *ExpenseRepository) TotalForMonth(year int, month time.Month) float64 {
	var total float64
	for _, e := range r.ForMonth(year, month) {
		total += e.Amount
	}
	return total
}

// SortedForDisplay orders expenses most recent first. This is the finance
// view's ordering, layered on top of ForMonth rather than stored.
func (r *ExpenseRepository) SortedForDisplay(expenses []domain.Expense) []domain.Expense {
	out := make([]domain.Expense, len(expenses))
	copy(out, expenses)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time().After(out[j].Time())
	})
	return out
}
