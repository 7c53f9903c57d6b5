package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/config"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd    *cobra.Command
	api    api.API
	config *config.Config
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(apiInstance api.API, cfg *config.Config) *RootCommand {
	root := &RootCommand{
		api:    apiInstance,
		config: cfg,
	}

	root.cmd = &cobra.Command{
		Use:   "doit",
		Short: "A local task, deadline and expense tracker",
		Long: `doit is a command-line application for daily to-do lists, deadline
tracking, lightweight expense logging, goals and derived statistics.
All data lives in a local database; nothing ever leaves the device.

EXAMPLES:
  doit add "Buy milk" --priority high        # Add a task for today
  doit add "Call mum" --date tomorrow        # Add a task for tomorrow
  doit list                                  # Show today's tasks
  doit done <id>                             # Toggle a task's completion
  doit deadline "File taxes" 2025-04-15      # Add a deadline task
  doit deadline                              # Show the deadlines view
  doit expense add 12.50 "Groceries"         # Log an expense
  doit expense list 2025-02                  # February's expenses and total
  doit goal add "Run a marathon"             # Track a long-running goal
  doit stats                                 # Completion stats and streaks
  doit remind                                # Run reminders in the foreground

CONFIGURATION:
  Priority order: command-line flags > environment variables > config file > defaults

  DOIT_DB_DIR            Database directory (default: ~/.doit)
  DOIT_DB_FILENAME       Database filename (default: doit.db)
  DOIT_CONFIG            Config file path (default: <db dir>/config.yaml)
  DOIT_NOTIFY_INTERVAL   Reminder interval (default: 2h)
  DOIT_APP_VERBOSE       Enable verbose output (default: false)
  DOIT_DEBUG             Enable debug logging`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.getConfigFromFlags()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	flags.String("db-dir", "", "Database directory (overrides DOIT_DB_DIR)")
	flags.String("db-filename", "", "Database filename (overrides DOIT_DB_FILENAME)")
	flags.Duration("app-timeout", 0, "Application timeout (overrides DOIT_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides DOIT_APP_VERBOSE)")
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	app := func() *App { return NewAppWithConfig(r.api, r.config) }

	addCmd := &cobra.Command{
		Use:   "add [task text]",
		Short: "Add a task",
		Long:  "Add a task to a day's list. Defaults to today with medium priority.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewAddCommand(app())
			handler.Priority, _ = cmd.Flags().GetString("priority")
			handler.Date, _ = cmd.Flags().GetString("date")
			return handler.Execute(ctx, args)
		},
	}
	addCmd.Flags().StringP("priority", "p", "", "Task priority: high, medium or low")
	addCmd.Flags().StringP("date", "d", "", "Day to add the task to (YYYY-MM-DD, today, tomorrow)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List a day's tasks, incomplete first, ordered by priority.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewListCommand(app())
			handler.Date, _ = cmd.Flags().GetString("date")
			handler.All, _ = cmd.Flags().GetBool("all")
			return handler.Execute(ctx, args)
		},
	}
	listCmd.Flags().StringP("date", "d", "", "Day to list (YYYY-MM-DD, today, tomorrow)")
	listCmd.Flags().BoolP("all", "a", false, "List every task regardless of day")

	doneCmd := &cobra.Command{
		Use:   "done <task id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewDoneCommand(app()).Execute(ctx, args)
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit <task id> [new text]",
		Short: "Edit a task's text",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewEditCommand(app()).Execute(ctx, args)
		},
	}

	priorityCmd := &cobra.Command{
		Use:   "priority <task id> <high|medium|low>",
		Short: "Change a task's priority",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewPriorityCommand(app()).Execute(ctx, args)
		},
	}

	rmCmd := &cobra.Command{
		Use:   "rm <task id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewRmCommand(app()).Execute(ctx, args)
		},
	}

	deadlineCmd := &cobra.Command{
		Use:   "deadline [edit <id>] [task text] [due day]",
		Short: "Add, edit or list deadline tasks",
		Long: `Without arguments, list every task that has a deadline, soonest first.
With arguments, create a task due on the given day; the task is also
scheduled on that day's list.

The edit verb rewrites an existing deadline task's text and due day in
one step, moving the task to the new day's list:
  doit deadline edit <id> "new text" 2025-05-01 --priority high`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()

			handler := NewDeadlineCommand(app())
			handler.Priority, _ = cmd.Flags().GetString("priority")
			return handler.Execute(ctx, args)
		},
	}
	deadlineCmd.Flags().StringP("priority", "p", "", "Task priority: high, medium or low")

	expenseCmd := &cobra.Command{
		Use:   "expense [add|list|edit|rm]",
		Short: "Log and review expenses",
		Long: `Track expenses and monthly totals.

Examples:
  doit expense add 12.50 "Groceries"
  doit expense list 2025-02
  doit expense edit <id> 15.00
  doit expense rm <id>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewExpenseCommand(app()).Execute(ctx, args)
		},
	}

	goalCmd := &cobra.Command{
		Use:   "goal [add|list|done|rm|clear]",
		Short: "Track long-running goals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewGoalCommand(app()).Execute(ctx, args)
		},
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Show completion statistics and streaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.commandContext()
			defer cancel()
			return NewStatsCommand(app()).Execute(ctx, args)
		},
	}

	remindCmd := &cobra.Command{
		Use:   "remind",
		Short: "Run task reminders in the foreground",
		Long: `Ask for reminder permission and, when granted, check on an interval
whether today still has pending tasks, printing a reminder when it does.
Runs until interrupted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Reminders run until interrupted, not until a timeout.
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			handler := NewRemindCommand(app())
			handler.Interval, _ = cmd.Flags().GetDuration("interval")
			return handler.Execute(ctx, args)
		},
	}
	remindCmd.Flags().DurationP("interval", "i", 0, "Reminder check interval (overrides DOIT_NOTIFY_INTERVAL)")

	r.cmd.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		editCmd,
		priorityCmd,
		rmCmd,
		deadlineCmd,
		expenseCmd,
		goalCmd,
		statsCmd,
		remindCmd,
	)
}

// commandContext returns the bounded context ordinary commands run under
func (r *RootCommand) commandContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// getConfigFromFlags updates the configuration with values from command-line flags
func (r *RootCommand) getConfigFromFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	flags := r.cmd.PersistentFlags()

	if dbDir, _ := flags.GetString("db-dir"); dbDir != "" {
		r.config.Storage.Dir = dbDir
	}
	if dbFilename, _ := flags.GetString("db-filename"); dbFilename != "" {
		r.config.Storage.Filename = dbFilename
	}
	if appTimeout, _ := flags.GetDuration("app-timeout"); appTimeout > 0 {
		r.config.Application.Timeout = appTimeout
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		r.config.Application.Verbose = verbose
	}

	return nil
}
