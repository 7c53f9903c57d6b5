package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tabrez-nitr/doit/internal/config"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/repository"
	"github.com/tabrez-nitr/doit/internal/services"
	"github.com/tabrez-nitr/doit/internal/validation"
)

// API defines the interface for all task, expense and goal operations. It
// is the single surface the CLI talks to; ids are generated here so
// callers never invent them.
type API interface {
	// Task operations
	AddTask(ctx context.Context, text string, priority domain.Priority, day domain.Day) (*domain.Task, error)
	AddDeadlineTask(ctx context.Context, text string, priority domain.Priority, deadline domain.Day) (*domain.Task, error)
	ToggleTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
	EditTaskText(ctx context.Context, id, text string) error
	EditTaskPriority(ctx context.Context, id string, priority domain.Priority) error
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) error

	// Task views
	ListTasks() []domain.Task
	TasksForDay(day domain.Day) []domain.Task
	DeadlineTasks() []domain.Task
	PendingCount(day domain.Day) int

	// Expense operations
	AddExpense(ctx context.Context, amount float64, description string) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, id string) error
	EditExpense(ctx context.Context, id string, patch domain.ExpensePatch) error
	ExpensesForMonth(year int, month time.Month) []domain.Expense
	MonthlyTotal(year int, month time.Month) float64

	// Goal operations
	AddGoal(ctx context.Context, text string) (*domain.Goal, error)
	ToggleGoal(ctx context.Context, id string) error
	DeleteGoal(ctx context.Context, id string) error
	ClearCompletedGoals(ctx context.Context) (int, error)
	ListGoals() []domain.Goal

	// Analytics
	Summary() services.Summary
	PriorityBreakdown() services.PriorityBreakdown
	WeeklyActivity(today domain.Day) []services.DayActivity
	DailyComparison(today domain.Day) services.DailyComparison
	ActivityCounts(from, to domain.Day) map[string]int
	CurrentStreak(today domain.Day) int
}

type apiImpl struct {
	tasks            *repository.TaskRepository
	expenses         *repository.ExpenseRepository
	goals            *repository.GoalRepository
	analytics        services.AnalyticsService
	taskValidator    *validation.TaskValidator
	expenseValidator *validation.ExpenseValidator
}

// New creates a new API instance over the three repositories using default
// validation limits.
func New(tasks *repository.TaskRepository, expenses *repository.ExpenseRepository, goals *repository.GoalRepository) API {
	return NewWithConfig(tasks, expenses, goals, nil)
}

// NewWithConfig creates a new API instance whose validators honour the
// configured limits. Both validators share one underlying Validator.
func NewWithConfig(tasks *repository.TaskRepository, expenses *repository.ExpenseRepository, goals *repository.GoalRepository, cfg *config.Config) API {
	validator := validation.NewValidator()
	if cfg != nil {
		validator = validation.NewValidatorWithConfig(cfg)
	}

	return &apiImpl{
		tasks:            tasks,
		expenses:         expenses,
		goals:            goals,
		analytics:        services.NewAnalyticsService(tasks),
		taskValidator:    validation.NewTaskValidatorWith(validator),
		expenseValidator: validation.NewExpenseValidatorWith(validator),
	}
}

// Task operations

func (a *apiImpl) AddTask(ctx context.Context, text string, priority domain.Priority, day domain.Day) (*domain.Task, error) {
	if err := a.taskValidator.ValidateForCreation(text, priority, day); err != nil {
		return nil, err
	}
	cleaned, err := a.taskValidator.GetValidText(text)
	if err != nil {
		return nil, err
	}

	task := domain.NewTask(uuid.NewString(), cleaned, priority, day)
	if err := a.tasks.Add(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) AddDeadlineTask(ctx context.Context, text string, priority domain.Priority, deadline domain.Day) (*domain.Task, error) {
	if err := a.taskValidator.ValidateForCreation(text, priority, deadline); err != nil {
		return nil, err
	}
	cleaned, err := a.taskValidator.GetValidText(text)
	if err != nil {
		return nil, err
	}

	task := domain.NewDeadlineTask(uuid.NewString(), cleaned, priority, deadline)
	if err := a.tasks.Add(ctx, task); err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) ToggleTask(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	return a.tasks.Toggle(ctx, id)
}

func (a *apiImpl) DeleteTask(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	return a.tasks.Delete(ctx, id)
}

func (a *apiImpl) EditTaskText(ctx context.Context, id, text string) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	cleaned, err := a.taskValidator.GetValidText(text)
	if err != nil {
		return err
	}
	return a.tasks.EditText(ctx, id, cleaned)
}

func (a *apiImpl) EditTaskPriority(ctx context.Context, id string, priority domain.Priority) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	if err := a.taskValidator.ValidatePriority(priority); err != nil {
		return err
	}
	return a.tasks.EditPriority(ctx, id, priority)
}

func (a *apiImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	if patch.Text != nil {
		cleaned, err := a.taskValidator.GetValidText(*patch.Text)
		if err != nil {
			return err
		}
		patch.Text = &cleaned
	}
	if patch.Priority != nil {
		if err := a.taskValidator.ValidatePriority(*patch.Priority); err != nil {
			return err
		}
	}
	return a.tasks.Update(ctx, id, patch)
}

// Task views

func (a *apiImpl) ListTasks() []domain.Task {
	return a.tasks.SortedForDisplay(a.tasks.All())
}

func (a *apiImpl) TasksForDay(day domain.Day) []domain.Task {
	return a.tasks.SortedForDisplay(a.tasks.ForDate(day))
}

func (a *apiImpl) DeadlineTasks() []domain.Task {
	return a.tasks.WithDeadlineSorted()
}

func (a *apiImpl) PendingCount(day domain.Day) int {
	return a.tasks.PendingCount(day)
}

// Expense operations

func (a *apiImpl) AddExpense(ctx context.Context, amount float64, description string) (*domain.Expense, error) {
	if err := a.expenseValidator.ValidateForCreation(amount, description); err != nil {
		return nil, err
	}

	expense := domain.NewExpense(uuid.NewString(), amount, description, time.Now())
	if err := a.expenses.Add(ctx, expense); err != nil {
		return nil, err
	}
	return &expense, nil
}

func (a *apiImpl) DeleteExpense(ctx context.Context, id string) error {
	if err := a.expenseValidator.ValidateID(id); err != nil {
		return err
	}
	return a.expenses.Delete(ctx, id)
}

func (a *apiImpl) EditExpense(ctx context.Context, id string, patch domain.ExpensePatch) error {
	if err := a.expenseValidator.ValidateID(id); err != nil {
		return err
	}
	if patch.Amount != nil {
		if err := a.expenseValidator.ValidateAmount(*patch.Amount); err != nil {
			return err
		}
	}
	if patch.Description != nil {
		if err := a.expenseValidator.ValidateDescription(*patch.Description); err != nil {
			return err
		}
	}
	return a.expenses.Edit(ctx, id, patch)
}

func (a *apiImpl) ExpensesForMonth(year int, month time.Month) []domain.Expense {
	return a.expenses.SortedForDisplay(a.expenses.ForMonth(year, month))
}

func (a *apiImpl) MonthlyTotal(year int, month time.Month) float64 {
	return a.expenses.TotalForMonth(year, month)
}

// Goal operations

func (a *apiImpl) AddGoal(ctx context.Context, text string) (*domain.Goal, error) {
	cleaned, err := a.taskValidator.GetValidText(text)
	if err != nil {
		return nil, err
	}

	goal := domain.NewGoal(uuid.NewString(), cleaned, time.Now())
	if err := a.goals.Add(ctx, goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (a *apiImpl) ToggleGoal(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	return a.goals.Toggle(ctx, id)
}

func (a *apiImpl) DeleteGoal(ctx context.Context, id string) error {
	if err := a.taskValidator.ValidateID(id); err != nil {
		return err
	}
	return a.goals.Delete(ctx, id)
}

func (a *apiImpl) ClearCompletedGoals(ctx context.Context) (int, error) {
	return a.goals.ClearCompleted(ctx)
}

func (a *apiImpl) ListGoals() []domain.Goal {
	return a.goals.All()
}

// Analytics

func (a *apiImpl) Summary() services.Summary {
	return a.analytics.Summary()
}

func (a *apiImpl) PriorityBreakdown() services.PriorityBreakdown {
	return a.analytics.PriorityBreakdown()
}

func (a *apiImpl) WeeklyActivity(today domain.Day) []services.DayActivity {
	return a.analytics.WeeklyActivity(today)
}

func (a *apiImpl) DailyComparison(today domain.Day) services.DailyComparison {
	return a.analytics.DailyComparison(today)
}

func (a *apiImpl) ActivityCounts(from, to domain.Day) map[string]int {
	return a.analytics.ActivityCounts(from, to)
}

func (a *apiImpl) CurrentStreak(today domain.Day) int {
	return a.analytics.CurrentStreak(today)
}
