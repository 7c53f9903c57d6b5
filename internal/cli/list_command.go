package cli

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
	"github.com/tabrez-nitr/doit/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	// Flag values assigned by the root command before Execute
	Date string
	All  bool
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	if c.All {
		c.printTasks(c.api.ListTasks())
		return nil
	}

	day, err := parseDayArg(c.Date)
	if err != nil {
		return errors.NewInvalidInputError("date", c.Date, "use YYYY-MM-DD, today or tomorrow")
	}

	tasks := c.api.TasksForDay(day)
	if len(tasks) == 0 {
		c.app.printf("No tasks for %s\n", day)
		return nil
	}

	c.app.printf("Tasks for %s:\n", day)
	c.printTasks(tasks)
	c.app.printf("%d pending\n", c.api.PendingCount(day))
	return nil
}

func (c *ListCommand) printTasks(tasks []domain.Task) {
	for _, task := range tasks {
		line := checkbox(task.Completed) + " " + task.Text
		if task.Deadline != "" {
			line += " (" + domain.DeadlineLabel(task.DeadlineDay(), domain.Today()) + ")"
		}
		c.app.printf("%s  [%s]  %s\n", line, task.Priority, task.ID)
	}
}
