package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

func day(y int, m time.Month, d int) domain.Day {
	return domain.Day{Year: y, Month: m, Day: d}
}

func TestTaskRepository_AddAndForDate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	monday := day(2025, time.March, 10)
	tuesday := day(2025, time.March, 11)

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "First", domain.PriorityMedium, monday)))
	require.NoError(t, repo.Add(ctx, domain.NewTask("t2", "Second", domain.PriorityHigh, monday)))
	require.NoError(t, repo.Add(ctx, domain.NewTask("t3", "Elsewhere", domain.PriorityLow, tuesday)))

	got := repo.ForDate(monday)
	require.Len(t, got, 2)

	// Insertion order is preserved within a day.
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
}

func TestTaskRepository_RoundTrip(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	today := day(2025, time.March, 10)

	repo := NewTaskRepository(ctx, store, "")
	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Keep", domain.PriorityHigh, today)))
	require.NoError(t, repo.Add(ctx, domain.NewTask("t2", "Drop", domain.PriorityLow, today)))
	require.NoError(t, repo.Toggle(ctx, "t1"))
	require.NoError(t, repo.EditText(ctx, "t1", "Keep edited"))
	require.NoError(t, repo.Delete(ctx, "t2"))

	// A fresh repository over the same store sees identical field values.
	reloaded := NewTaskRepository(ctx, store, "")
	assert.Equal(t, repo.All(), reloaded.All())

	tasks := reloaded.All()
	require.Len(t, tasks, 1)
	assert.Equal(t, "Keep edited", tasks[0].Text)
	assert.True(t, tasks[0].Completed)
}

func TestTaskRepository_Toggle(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Task", domain.PriorityMedium, day(2025, time.March, 10))))

	require.NoError(t, repo.Toggle(ctx, "t1"))
	assert.True(t, repo.All()[0].Completed)

	require.NoError(t, repo.Toggle(ctx, "t1"))
	assert.False(t, repo.All()[0].Completed)
}

func TestTaskRepository_Toggle_MissingID(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Task", domain.PriorityMedium, day(2025, time.March, 10))))
	before := repo.All()

	err := repo.Toggle(ctx, "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))

	// The collection must be untouched.
	assert.Equal(t, before, repo.All())
}

func TestTaskRepository_Delete_Idempotent(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Task", domain.PriorityMedium, day(2025, time.March, 10))))

	require.NoError(t, repo.Delete(ctx, "t1"))
	afterFirst := repo.All()

	// Deleting the same id again produces the same end state, no error.
	require.NoError(t, repo.Delete(ctx, "t1"))
	assert.Equal(t, afterFirst, repo.All())
	assert.Empty(t, repo.All())
}

func TestTaskRepository_EditText(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Original", domain.PriorityMedium, day(2025, time.March, 10))))

	t.Run("should replace the text", func(t *testing.T) {
		require.NoError(t, repo.EditText(ctx, "t1", "Edited"))
		assert.Equal(t, "Edited", repo.All()[0].Text)
	})

	t.Run("should reject text that is empty after trimming", func(t *testing.T) {
		err := repo.EditText(ctx, "t1", "   ")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		assert.Equal(t, "Edited", repo.All()[0].Text)
	})

	t.Run("should report a missing id", func(t *testing.T) {
		err := repo.EditText(ctx, "missing", "New text")
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
	})
}

func TestTaskRepository_EditPriority(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Task", domain.PriorityLow, day(2025, time.March, 10))))

	require.NoError(t, repo.EditPriority(ctx, "t1", domain.PriorityHigh))
	assert.Equal(t, domain.PriorityHigh, repo.All()[0].Priority)
}

func TestTaskRepository_Update_DeadlineEditKeepsDateInSync(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	deadline := day(2025, time.March, 10)
	require.NoError(t, repo.Add(ctx, domain.NewDeadlineTask("t1", "File taxes", domain.PriorityMedium, deadline)))

	newDay := day(2025, time.April, 1)
	text := "File taxes late"
	priority := domain.PriorityHigh

	require.NoError(t, repo.Update(ctx, "t1", domain.TaskPatch{
		Text:     &text,
		Date:     &newDay,
		Deadline: &newDay,
		Priority: &priority,
	}))

	got := repo.All()[0]
	assert.Equal(t, "File taxes late", got.Text)
	assert.Equal(t, "2025-04-01", got.Date)
	assert.Equal(t, "2025-04-01", got.Deadline)
	assert.Equal(t, domain.PriorityHigh, got.Priority)
}

func TestTaskRepository_DeadlineBucketing(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	deadline := day(2025, time.March, 10)
	require.NoError(t, repo.Add(ctx, domain.NewDeadlineTask("t1", "Ship release", domain.PriorityHigh, deadline)))

	// The deadline flow sets date equal to deadline, so the task shows up
	// in that day's list immediately.
	got := repo.ForDate(deadline)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-10", got[0].Date)
	assert.Equal(t, "2025-03-10", got[0].Deadline)
}

func TestTaskRepository_SortedForDisplay(t *testing.T) {
	store := setupTestStore(t)
	repo := NewTaskRepository(context.Background(), store, "")

	tasks := []domain.Task{
		{ID: "a", Priority: domain.PriorityLow, Completed: false},
		{ID: "b", Priority: domain.PriorityHigh, Completed: true},
		{ID: "c", Priority: domain.PriorityHigh, Completed: false},
		{ID: "d", Priority: domain.PriorityMedium, Completed: false},
	}

	sorted := repo.SortedForDisplay(tasks)

	ids := make([]string, len(sorted))
	for i, task := range sorted {
		ids[i] = task.ID
	}
	assert.Equal(t, []string{"c", "d", "a", "b"}, ids)

	// The input slice must not be reordered.
	assert.Equal(t, "a", tasks[0].ID)
}

func TestTaskRepository_SortedForDisplay_Stable(t *testing.T) {
	store := setupTestStore(t)
	repo := NewTaskRepository(context.Background(), store, "")

	tasks := []domain.Task{
		{ID: "first", Priority: domain.PriorityMedium},
		{ID: "second", Priority: domain.PriorityMedium},
		{ID: "third", Priority: domain.PriorityMedium},
	}

	sorted := repo.SortedForDisplay(tasks)

	// Equal keys keep insertion order.
	assert.Equal(t, "first", sorted[0].ID)
	assert.Equal(t, "second", sorted[1].ID)
	assert.Equal(t, "third", sorted[2].ID)
}

func TestTaskRepository_WithDeadlineSorted(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	require.NoError(t, repo.Add(ctx, domain.NewTask("plain", "No deadline", domain.PriorityHigh, day(2025, time.March, 1))))
	require.NoError(t, repo.Add(ctx, domain.NewDeadlineTask("late", "Later", domain.PriorityMedium, day(2025, time.March, 20))))
	require.NoError(t, repo.Add(ctx, domain.NewDeadlineTask("done", "Finished", domain.PriorityMedium, day(2025, time.March, 5))))
	require.NoError(t, repo.Add(ctx, domain.NewDeadlineTask("soon", "Sooner", domain.PriorityMedium, day(2025, time.March, 12))))
	require.NoError(t, repo.Toggle(ctx, "done"))

	got := repo.WithDeadlineSorted()
	require.Len(t, got, 3)

	// Tasks without a deadline never appear; incomplete tasks come first,
	// soonest deadline on top; completed tasks trail.
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "late", got[1].ID)
	assert.Equal(t, "done", got[2].ID)
}

func TestTaskRepository_PendingCount(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()
	repo := NewTaskRepository(ctx, store, "")

	today := day(2025, time.March, 10)
	other := day(2025, time.March, 11)

	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "One", domain.PriorityMedium, today)))
	require.NoError(t, repo.Add(ctx, domain.NewTask("t2", "Two", domain.PriorityMedium, today)))
	require.NoError(t, repo.Add(ctx, domain.NewTask("t3", "Other day", domain.PriorityMedium, other)))
	require.NoError(t, repo.Toggle(ctx, "t1"))

	assert.Equal(t, 1, repo.PendingCount(today))
	assert.Equal(t, 1, repo.PendingCount(other))
	assert.Equal(t, 0, repo.PendingCount(day(2025, time.March, 12)))
}

func TestTaskRepository_CorruptSlotRecovery(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, TaskKey, []byte(`{"definitely": "not a task array`)))

	repo := NewTaskRepository(ctx, store, "")
	assert.Empty(t, repo.All())

	// Adding after corruption recovery persists normally.
	require.NoError(t, repo.Add(ctx, domain.NewTask("t1", "Fresh start", domain.PriorityMedium, day(2025, time.March, 10))))

	reloaded := NewTaskRepository(ctx, store, "")
	require.Len(t, reloaded.All(), 1)
	assert.Equal(t, "Fresh start", reloaded.All()[0].Text)
}
