package cli

import (
	"context"
	"time"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/notify"
)

// RemindCommand runs the reminder scheduler in the foreground until the
// context is cancelled.
type RemindCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler

	// Flag values assigned by the root command before Execute
	Interval time.Duration
}

// NewRemindCommand creates a new remind command handler
func NewRemindCommand(app *App) *RemindCommand {
	return &RemindCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the remind command
func (c *RemindCommand) Execute(ctx context.Context, args []string) error {
	notifier := notify.NewTerminalNotifier(c.app.in, c.app.out)

	if notifier.RequestPermission() != notify.PermissionGranted {
		c.app.printf("Reminders are off\n")
		return nil
	}

	interval := c.Interval
	if interval <= 0 && c.app.config != nil {
		interval = c.app.config.Notifications.Interval
	}

	scheduler := notify.NewScheduler(c.api, notifier, interval)
	c.app.printf("Reminders on, checking every %s. Press Ctrl+C to stop.\n", scheduler.Interval())

	scheduler.Start(ctx)
	return nil
}
