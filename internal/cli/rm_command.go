package cli

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// RmCommand handles the rm command
type RmCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewRmCommand creates a new rm command handler
func NewRmCommand(app *App) *RmCommand {
	return &RmCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the rm command
func (c *RmCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "rm", "usage: doit rm <task id>")
	}

	if err := c.api.DeleteTask(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.printf("Deleted task %s\n", args[0])
	return nil
}
