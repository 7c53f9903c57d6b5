package cli

import (
	"context"
	"strings"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	// Flag values assigned by the root command before Execute
	Priority string
	Date     string
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: doit add \"your task here\"")
	}
	text := strings.Join(args, " ")

	priority := domain.PriorityMedium
	if c.Priority != "" {
		parsed, err := domain.ParsePriority(c.Priority)
		if err != nil {
			return errors.NewInvalidInputError("priority", c.Priority, "use high, medium or low")
		}
		priority = parsed
	}

	day, err := parseDayArg(c.Date)
	if err != nil {
		return errors.NewInvalidInputError("date", c.Date, "use YYYY-MM-DD, today or tomorrow")
	}

	task, err := c.api.AddTask(ctx, text, priority, day)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	c.app.printf("Added task: %s (%s, %s)\n", task.Text, task.Priority, task.Date)
	return nil
}
