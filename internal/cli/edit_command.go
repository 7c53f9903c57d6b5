package cli

import (
	"context"
	"strings"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the edit command
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "edit", "usage: doit edit <task id> \"new text\"")
	}

	id := args[0]
	text := strings.Join(args[1:], " ")

	if err := c.api.EditTaskText(ctx, id, text); err != nil {
		return c.errorHandler.Handle("edit task", err)
	}

	c.app.printf("Updated task %s\n", id)
	return nil
}
