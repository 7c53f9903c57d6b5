package cli

import (
	"context"
	"strings"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// DeadlineCommand handles the deadline command. Without arguments it lists
// the deadlines view; with arguments it creates a deadline task.
type DeadlineCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	// Flag values assigned by the root command before Execute
	Priority string
}

// NewDeadlineCommand creates a new deadline command handler
func NewDeadlineCommand(app *App) *DeadlineCommand {
	return &DeadlineCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the deadline command
func (c *DeadlineCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.listDeadlines()
	}
	if args[0] == "edit" {
		return c.edit(ctx, args[1:])
	}
	if len(args) < 2 {
		return errors.NewInvalidInputError("command", "deadline",
			"usage: doit deadline \"your task\" <YYYY-MM-DD> | edit <id> \"your task\" <YYYY-MM-DD>")
	}

	// The last argument is the deadline day; everything before it is text.
	deadline, err := parseDayArg(args[len(args)-1])
	if err != nil {
		return errors.NewInvalidInputError("deadline", args[len(args)-1], "use YYYY-MM-DD, today or tomorrow")
	}
	text := strings.Join(args[:len(args)-1], " ")

	priority := domain.PriorityMedium
	if c.Priority != "" {
		parsed, err := domain.ParsePriority(c.Priority)
		if err != nil {
			return errors.NewInvalidInputError("priority", c.Priority, "use high, medium or low")
		}
		priority = parsed
	}

	task, err := c.api.AddDeadlineTask(ctx, text, priority, deadline)
	if err != nil {
		return c.errorHandler.Handle("add deadline task", err)
	}

	c.app.printf("Added deadline task: %s (due %s, %s)\n",
		task.Text, task.Deadline, domain.DeadlineLabel(task.DeadlineDay(), domain.Today()))
	return nil
}

// edit rewrites a deadline task's text and due day in one update. Date and
// Deadline travel in the same patch so the task stays scheduled on its due
// day.
func (c *DeadlineCommand) edit(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return errors.NewInvalidInputError("command", "deadline edit",
			"usage: doit deadline edit <id> \"your task\" <YYYY-MM-DD>")
	}

	id := args[0]
	deadline, err := parseDayArg(args[len(args)-1])
	if err != nil {
		return errors.NewInvalidInputError("deadline", args[len(args)-1], "use YYYY-MM-DD, today or tomorrow")
	}
	text := strings.Join(args[1:len(args)-1], " ")

	patch := domain.TaskPatch{Text: &text, Date: &deadline, Deadline: &deadline}
	if c.Priority != "" {
		parsed, err := domain.ParsePriority(c.Priority)
		if err != nil {
			return errors.NewInvalidInputError("priority", c.Priority, "use high, medium or low")
		}
		patch.Priority = &parsed
	}

	if err := c.api.UpdateTask(ctx, id, patch); err != nil {
		return c.errorHandler.Handle("edit deadline task", err)
	}

	c.app.printf("Updated deadline task %s (due %s, %s)\n",
		id, deadline, domain.DeadlineLabel(deadline, domain.Today()))
	return nil
}

func (c *DeadlineCommand) listDeadlines() error {
	tasks := c.api.DeadlineTasks()
	if len(tasks) == 0 {
		c.app.printf("No deadline tasks\n")
		return nil
	}

	today := domain.Today()
	for _, task := range tasks {
		c.app.printf("%s %s  due %s (%s)  %s\n",
			checkbox(task.Completed), task.Text, task.Deadline,
			domain.DeadlineLabel(task.DeadlineDay(), today), task.ID)
	}
	return nil
}
