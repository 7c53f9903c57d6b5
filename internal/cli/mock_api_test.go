package cli

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
	"github.com/tabrez-nitr/doit/internal/services"
)

// mockAPI implements the api.API interface in memory for handler tests.
// An optional forced error short-circuits every mutating call so error
// paths can be exercised.
type mockAPI struct {
	tasks    []domain.Task
	expenses []domain.Expense
	goals    []domain.Goal
	nextID   int
	failWith error
}

func newMockAPI() *mockAPI {
	return &mockAPI{}
}

func (m *mockAPI) id() string {
	m.nextID++
	return fmt.Sprintf("id-%d", m.nextID)
}

func (m *mockAPI) taskIndex(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (m *mockAPI) AddTask(ctx context.Context, text string, priority domain.Priority, day domain.Day) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	task := domain.NewTask(m.id(), text, priority, day)
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockAPI) AddDeadlineTask(ctx context.Context, text string, priority domain.Priority, deadline domain.Day) (*domain.Task, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	task := domain.NewDeadlineTask(m.id(), text, priority, deadline)
	m.tasks = append(m.tasks, task)
	return &task, nil
}

func (m *mockAPI) ToggleTask(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	i := m.taskIndex(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	m.tasks[i].Completed = !m.tasks[i].Completed
	return nil
}

func (m *mockAPI) DeleteTask(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	if i := m.taskIndex(id); i >= 0 {
		m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
	}
	return nil
}

func (m *mockAPI) EditTaskText(ctx context.Context, id, text string) error {
	if m.failWith != nil {
		return m.failWith
	}
	i := m.taskIndex(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	m.tasks[i].Text = text
	return nil
}

func (m *mockAPI) EditTaskPriority(ctx context.Context, id string, priority domain.Priority) error {
	if m.failWith != nil {
		return m.failWith
	}
	i := m.taskIndex(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	m.tasks[i].Priority = priority
	return nil
}

func (m *mockAPI) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) error {
	if m.failWith != nil {
		return m.failWith
	}
	i := m.taskIndex(id)
	if i < 0 {
		return errors.NewNotFoundError("task", id)
	}
	m.tasks[i] = m.tasks[i].Apply(patch)
	return nil
}

func (m *mockAPI) ListTasks() []domain.Task {
	return m.tasks
}

func (m *mockAPI) TasksForDay(day domain.Day) []domain.Task {
	var out []domain.Task
	for _, t := range m.tasks {
		if t.Date == day.String() {
			out = append(out, t)
		}
	}
	return out
}

func (m *mockAPI) DeadlineTasks() []domain.Task {
	var out []domain.Task
	for _, t := range m.tasks {
		if t.HasDeadline() {
			out = append(out, t)
		}
	}
	return out
}

func (m *mockAPI) PendingCount(day domain.Day) int {
	count := 0
	for _, t := range m.tasks {
		if t.Date == day.String() && !t.Completed {
			count++
		}
	}
	return count
}

func (m *mockAPI) AddExpense(ctx context.Context, amount float64, description string) (*domain.Expense, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	expense := domain.NewExpense(m.id(), amount, description, time.Now())
	m.expenses = append([]domain.Expense{expense}, m.expenses...)
	return &expense, nil
}

func (m *mockAPI) DeleteExpense(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, e := range m.expenses {
		if e.ID == id {
			m.expenses = append(m.expenses[:i], m.expenses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockAPI) EditExpense(ctx context.Context, id string, patch domain.ExpensePatch) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, e := range m.expenses {
		if e.ID == id {
			m.expenses[i] = e.Apply(patch)
			return nil
		}
	}
	return errors.NewNotFoundError("expense", id)
}

func (m *mockAPI) ExpensesForMonth(year int, month time.Month) []domain.Expense {
	var out []domain.Expense
	for _, e := range m.expenses {
		if e.InMonth(year, month) {
			out = append(out, e)
		}
	}
	return out
}

func (m *mockAPI) MonthlyTotal(year int, month time.Month) float64 {
	var total float64
	for _, e := range m.ExpensesForMonth(year, month) {
		total += e.Amount
	}
	return total
}

func (m *mockAPI) AddGoal(ctx context.Context, text string) (*domain.Goal, error) {
	if m.failWith != nil {
		return nil, m.failWith
	}
	goal := domain.NewGoal(m.id(), text, time.Now())
	m.goals = append([]domain.Goal{goal}, m.goals...)
	return &goal, nil
}

func (m *mockAPI) ToggleGoal(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, g := range m.goals {
		if g.ID == id {
			m.goals[i].Completed = !m.goals[i].Completed
			return nil
		}
	}
	return errors.NewNotFoundError("goal", id)
}

func (m *mockAPI) DeleteGoal(ctx context.Context, id string) error {
	if m.failWith != nil {
		return m.failWith
	}
	for i, g := range m.goals {
		if g.ID == id {
			m.goals = append(m.goals[:i], m.goals[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockAPI) ClearCompletedGoals(ctx context.Context) (int, error) {
	if m.failWith != nil {
		return 0, m.failWith
	}
	var kept []domain.Goal
	for _, g := range m.goals {
		if !g.Completed {
			kept = append(kept, g)
		}
	}
	removed := len(m.goals) - len(kept)
	m.goals = kept
	return removed, nil
}

func (m *mockAPI) ListGoals() []domain.Goal {
	return m.goals
}

func (m *mockAPI) Summary() services.Summary {
	return services.NewAnalyticsService(m).Summary()
}

func (m *mockAPI) PriorityBreakdown() services.PriorityBreakdown {
	return services.NewAnalyticsService(m).PriorityBreakdown()
}

func (m *mockAPI) WeeklyActivity(today domain.Day) []services.DayActivity {
	return services.NewAnalyticsService(m).WeeklyActivity(today)
}

func (m *mockAPI) DailyComparison(today domain.Day) services.DailyComparison {
	return services.NewAnalyticsService(m).DailyComparison(today)
}

func (m *mockAPI) ActivityCounts(from, to domain.Day) map[string]int {
	return services.NewAnalyticsService(m).ActivityCounts(from, to)
}

func (m *mockAPI) CurrentStreak(today domain.Day) int {
	return services.NewAnalyticsService(m).CurrentStreak(today)
}

// All satisfies services.TaskSource so the mock can reuse the real
// analytics computations.
func (m *mockAPI) All() []domain.Task {
	return m.tasks
}

var _ api.API = (*mockAPI)(nil)

// setupTestApp builds an App over a fresh mock with captured output.
func setupTestApp(t *testing.T) (*App, *mockAPI, *bytes.Buffer) {
	t.Helper()

	mock := newMockAPI()
	var out bytes.Buffer

	app := NewApp(mock)
	app.out = &out
	return app, mock, &out
}
