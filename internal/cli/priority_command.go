package cli

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// PriorityCommand handles the priority command
type PriorityCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewPriorityCommand creates a new priority command handler
func NewPriorityCommand(app *App) *PriorityCommand {
	return &PriorityCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the priority command
func (c *PriorityCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "priority", "usage: doit priority <task id> <high|medium|low>")
	}

	priority, err := domain.ParsePriority(args[1])
	if err != nil {
		return errors.NewInvalidInputError("priority", args[1], "use high, medium or low")
	}

	if err := c.api.EditTaskPriority(ctx, args[0], priority); err != nil {
		return c.errorHandler.Handle("set priority", err)
	}

	c.app.printf("Set priority of task %s to %s\n", args[0], priority)
	return nil
}
