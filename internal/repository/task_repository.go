package repository

import (
	"context"
	"sort"
	"strings"

	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/storage"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// TaskKey is the storage slot holding the task collection.
const TaskKey = "doit-tasks"

// TaskRepository owns the task collection. It keeps the collection in
// memory, mirrors every mutation to the persistent store as a full
// snapshot, and computes the derived task views. There is a single writer
// per process, so no locking is needed.
type TaskRepository struct {
	store sqlite.Store
	key   string
	tasks []domain.Task
}

// NewTaskRepository loads the task collection from the store. A missing or
// corrupt slot starts the repository empty.
func NewTaskRepository(ctx context.Context, store sqlite.Store, key string) *TaskRepository {
	if key == "" {
		key = TaskKey
	}
	return &TaskRepository{
		store: store,
		key:   key,
		tasks: storage.LoadCollection[domain.Task](ctx, store, key),
	}
}

func (r *TaskRepository) save(ctx context.Context) error {
	return storage.SaveCollection(ctx, r.store, r.key, r.tasks)
}

// indexOf returns the position of the task with the given id, or -1.
func (r *TaskRepository) indexOf(id string) int {
	for i, t := range r.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

// Add appends the task to the collection. Append order is creation order
// for same-day tasks, which the day view relies on for tie-breaking.
func (r *TaskRepository) Add(ctx context.Context, task domain.Task) error {
	r.tasks = append(r.tasks, task)
	return r.save(ctx)
}

// Toggle flips the completed flag of the task with the given id. A missing
// id is reported as not found and leaves the collection untouched.
func (r *TaskRepository) Toggle(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks[i].Completed = !r.tasks[i].Completed
	return r.save(ctx)
}

// Delete removes the task with the given id. Deleting a nonexistent id is
// a no-op, not an error.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
	return r.save(ctx)
}

// EditText replaces the task's text. Text that is empty after trimming is
// rejected so the display state never becomes inconsistent.
func (r *TaskRepository) EditText(ctx context.Context, id, text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NewValidationError("task text cannot be empty", nil)
	}
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks[i].Text = text
	return r.save(ctx)
}

// EditPriority replaces the task's priority.
func (r *TaskRepository) EditPriority(ctx context.Context, id string, priority domain.Priority) error {
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks[i].Priority = priority
	return r.save(ctx)
}

// Update applies a partial field replacement in one atomic step. Deadline
// edits pass Date and Deadline together so the two keys stay in sync.
func (r *TaskRepository) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	if patch.Text != nil && strings.TrimSpace(*patch.Text) == "" {
		return errors.NewValidationError("task text cannot be empty", nil)
	}
	i := r.indexOf(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	r.tasks[i] = r.tasks[i].Apply(patch)
	return r.save(ctx)
}

// All returns a copy of the whole collection in insertion order.
func (r *TaskRepository) All() []domain.Task {
	out := make([]domain.Task, len(r.tasks))
	copy(out, r.tasks)
	return out
}

// ForDate returns the tasks belonging to the given calendar day in
// insertion order.
func (r *TaskRepository) ForDate(day domain.Day) []domain.Task {
	key := day.String()
	var out []domain.Task
	for _, t := range r.tasks {
		if t.Date == key {
			out = append(out, t)
		}
	}
	return out
}

// PendingCount returns the number of incomplete tasks for the given day.
func (r *TaskRepository) PendingCount(day domain.Day) int {
	key := day.String()
	count := 0
	for _, t := range r.tasks {
		if t.Date == key && !t.Completed {
			count++
		}
	}
	return count
}

// SortedForDisplay orders tasks for the day view: incomplete before
// completed, then by priority descending. The sort is stable, so ties keep
// their insertion order.
func (r *TaskRepository) SortedForDisplay(tasks []domain.Task) []domain.Task {
	out := make([]domain.Task, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		return out[i].Priority.Rank() > out[j].Priority.Rank()
	})
	return out
}

// WithDeadlineSorted returns the tasks that carry a deadline, incomplete
// before completed, with incomplete tasks ascending by deadline. Completed
// deadline tasks are only partitioned, not ordered further.
func (r *TaskRepository) WithDeadlineSorted() []domain.Task {
	var out []domain.Task
	for _, t := range r.tasks {
		if t.HasDeadline() {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Completed != out[j].Completed {
			return !out[i].Completed
		}
		if out[i].Completed {
			return false
		}
		return out[i].DeadlineDay().Before(out[j].DeadlineDay())
	})
	return out
}
