package cli

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

const expenseUsage = "usage: doit expense add <amount> \"description\" | list [YYYY-MM] | edit <id> <amount> [\"description\"] | rm <id>"

// ExpenseCommand handles the expense command and its verbs
type ExpenseCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewExpenseCommand creates a new expense command handler
func NewExpenseCommand(app *App) *ExpenseCommand {
	return &ExpenseCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the expense command
func (c *ExpenseCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.list("")
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "add":
		return c.add(ctx, rest)
	case "list":
		month := ""
		if len(rest) > 0 {
			month = rest[0]
		}
		return c.list(month)
	case "edit":
		return c.edit(ctx, rest)
	case "rm":
		return c.remove(ctx, rest)
	default:
		return errors.NewInvalidInputError("command", verb, expenseUsage)
	}
}

func (c *ExpenseCommand) add(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "expense add", expenseUsage)
	}

	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.NewInvalidInputError("amount", args[0], "must be a number")
	}
	description := strings.Join(args[1:], " ")

	expense, err := c.api.AddExpense(ctx, amount, description)
	if err != nil {
		return c.errorHandler.Handle("add expense", err)
	}

	c.app.printf("Logged expense: %.2f for %s\n", expense.Amount, expense.Description)
	return nil
}

func (c *ExpenseCommand) list(month string) error {
	year, m, err := parseMonthArg(month)
	if err != nil {
		return errors.NewInvalidInputError("month", month, "use YYYY-MM")
	}

	expenses := c.api.ExpensesForMonth(year, m)
	if len(expenses) == 0 {
		c.app.printf("No expenses for %04d-%02d\n", year, m)
		return nil
	}

	for _, e := range expenses {
		c.app.printf("%s  %8.2f  %s  %s\n", e.Time().Format(domain.DayKeyFormat), e.Amount, e.Description, e.ID)
	}
	c.app.printf("Total: %.2f\n", c.api.MonthlyTotal(year, m))
	return nil
}

func (c *ExpenseCommand) edit(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "expense edit", expenseUsage)
	}

	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return errors.NewInvalidInputError("amount", args[1], "must be a number")
	}

	patch := domain.ExpensePatch{Amount: &amount}
	if len(args) > 2 {
		description := strings.Join(args[2:], " ")
		patch.Description = &description
	}

	if err := c.api.EditExpense(ctx, args[0], patch); err != nil {
		return c.errorHandler.Handle("edit expense", err)
	}

	c.app.printf("Updated expense %s\n", args[0])
	return nil
}

func (c *ExpenseCommand) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "expense rm", expenseUsage)
	}

	if err := c.api.DeleteExpense(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete expense", err)
	}

	c.app.printf("Deleted expense %s\n", args[0])
	return nil
}

// parseMonthArg resolves a YYYY-MM argument; empty means the current month.
func parseMonthArg(s string) (int, time.Month, error) {
	if strings.TrimSpace(s) == "" {
		now := time.Now()
		return now.Year(), now.Month(), nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, err
	}
	return t.Year(), t.Month(), nil
}
