package repository

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/storage"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// GoalKey is the storage slot holding the goal collection.
const GoalKey = "goals"

// GoalRepository owns the goal collection. Goals mirror the task lifecycle
// minus priority and day bucketing: prepend on add, toggle, idempotent
// delete.
type GoalRepository struct {
	store sqlite.Store
	key   string
	goals []domain.Goal
}

// NewGoalRepository loads the goal collection from the store.
func NewGoalRepository(ctx context.Context, store sqlite.Store, key string) *GoalRepository {
	if key == "" {
		key = GoalKey
	}
	return &GoalRepository{
		store: store,
		key:   key,
		goals: storage.LoadCollection[domain.Goal](ctx, store, key),
	}
}

func (r *GoalRepository) save(ctx context.Context) error {
	return storage.SaveCollection(ctx, r.store, r.key, r.goals)
}

func (r *GoalRepository) indexOf(id string) int {
	for i, g := range r.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}

// Add prepends the goal to the collection.
func (r *GoalRepository) Add(ctx context.Context, goal domain.Goal) error {
	r.goals = append([]domain.Goal{goal}, r.goals...)
	return r.save(ctx)
}

// Toggle flips the completed flag of the goal with the given id.
func (r *GoalRepository) Toggle(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("goal", id)
	}
	r.goals[i].Completed = !r.goals[i].Completed
	return r.save(ctx)
}

// Delete removes the goal with the given id; missing ids are a no-op.
func (r *GoalRepository) Delete(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.goals = append(r.goals[:i], r.goals[i+1:]...)
	return r.save(ctx)
}

// ClearCompleted removes every completed goal in one save and reports how
// many were removed. Nothing is written when no goal is completed.
func (r *GoalRepository) ClearCompleted(ctx context.Context) (int, error) {
	var kept []domain.Goal
	for _, g := range r.goals {
		if !g.Completed {
			kept = append(kept, g)
		}
	}

	removed := len(r.goals) - len(kept)
	if removed == 0 {
		return 0, nil
	}

	r.goals = kept
	return removed, r.save(ctx)
}

// All returns a copy of the whole collection, newest first.
func (r *GoalRepository) All() []domain.Goal {
	out := make([]domain.Goal, len(r.goals))
	copy(out, r.goals)
	return out
}
