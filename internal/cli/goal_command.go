package cli

import (
	"context"
	"strings"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/errors"
)

const goalUsage = "usage: doit goal add \"your goal\" | list | done <id> | rm <id> | clear"

// GoalCommand handles the goal command and its verbs
type GoalCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewGoalCommand creates a new goal command handler
func NewGoalCommand(app *App) *GoalCommand {
	return &GoalCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the goal command
func (c *GoalCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.list()
	}

	verb, rest := args[0], args[1:]
	switch verb {
	case "add":
		return c.add(ctx, rest)
	case "list":
		return c.list()
	case "done":
		return c.toggle(ctx, rest)
	case "rm":
		return c.remove(ctx, rest)
	case "clear":
		return c.clear(ctx)
	default:
		return errors.NewInvalidInputError("command", verb, goalUsage)
	}
}

func (c *GoalCommand) add(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "goal add", goalUsage)
	}

	goal, err := c.api.AddGoal(ctx, strings.Join(args, " "))
	if err != nil {
		return c.errorHandler.Handle("add goal", err)
	}

	c.app.printf("Added goal: %s\n", goal.Text)
	return nil
}

func (c *GoalCommand) list() error {
	goals := c.api.ListGoals()
	if len(goals) == 0 {
		c.app.printf("No goals\n")
		return nil
	}

	for _, g := range goals {
		c.app.printf("%s %s  %s\n", checkbox(g.Completed), g.Text, g.ID)
	}
	return nil
}

func (c *GoalCommand) toggle(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "goal done", goalUsage)
	}

	if err := c.api.ToggleGoal(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("toggle goal", err)
	}

	c.app.printf("Toggled goal %s\n", args[0])
	return nil
}

func (c *GoalCommand) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "goal rm", goalUsage)
	}

	if err := c.api.DeleteGoal(ctx, args[0]); err != nil {
		return c.errorHandler.Handle("delete goal", err)
	}

	c.app.printf("Deleted goal %s\n", args[0])
	return nil
}

func (c *GoalCommand) clear(ctx context.Context) error {
	removed, err := c.api.ClearCompletedGoals(ctx)
	if err != nil {
		return c.errorHandler.Handle("clear completed goals", err)
	}

	if removed == 0 {
		c.app.printf("No completed goals to clear\n")
		return nil
	}
	c.app.printf("Cleared %d completed goals\n", removed)
	return nil
}
