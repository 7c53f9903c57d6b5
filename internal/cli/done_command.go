package cli

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// DoneCommand handles the done command
type DoneCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewDoneCommand creates a new done command handler
func NewDoneCommand(app *App) *DoneCommand {
	return &DoneCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the done command
func (c *DoneCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "done", "usage: doit done <task id>")
	}

	if err := c.api.ToggleTask(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}

	c.app.printf("Toggled task %s\n", args[0])
	return nil
}
