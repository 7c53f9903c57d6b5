package cli

import (
	"context"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/domain"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{
		app:          app,
		api:          app.api,
		errorHandler: NewErrorHandler(),
	}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(ctx context.Context, args []string) error {
	today := domain.Today()

	summary := c.api.Summary()
	c.app.printf("Tasks: %d total, %d completed, %d pending (%.0f%%)\n",
		summary.Total, summary.Completed, summary.Pending, summary.CompletionRate*100)

	breakdown := c.api.PriorityBreakdown()
	c.app.printf("Priorities: %d high, %d medium, %d low\n",
		breakdown.High, breakdown.Medium, breakdown.Low)

	c.app.printf("Streak: %d days\n", c.api.CurrentStreak(today))

	comparison := c.api.DailyComparison(today)
	c.app.printf("Today vs yesterday: %d vs %d (%s)\n",
		comparison.Today, comparison.Yesterday, comparison.Trend)

	c.app.printf("Last 7 days:\n")
	for _, day := range c.api.WeeklyActivity(today) {
		c.app.printf("  %s  %d done, %d pending\n", day.Day, day.Completed, day.Pending)
	}
	return nil
}
