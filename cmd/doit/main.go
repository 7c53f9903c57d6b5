package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tabrez-nitr/doit/internal/api"
	"github.com/tabrez-nitr/doit/internal/cli"
	"github.com/tabrez-nitr/doit/internal/config"
	"github.com/tabrez-nitr/doit/internal/logging"
	"github.com/tabrez-nitr/doit/internal/repository"
)

func main() {
	// Load configuration from file, environment and defaults
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Application.Verbose || logging.DebugEnabled()); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	// Create the store based on environment
	factory := NewStoreFactory(getEnvironment(), cfg)
	store, err := factory.CreateStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	// Repositories load their collections up front
	ctx := context.Background()
	tasks := repository.NewTaskRepository(ctx, store, cfg.Storage.TaskKey)
	expenses := repository.NewExpenseRepository(ctx, store, cfg.Storage.ExpenseKey)
	goals := repository.NewGoalRepository(ctx, store, cfg.Storage.GoalKey)

	// Create API instance with the configured validation limits
	apiInstance := api.NewWithConfig(tasks, expenses, goals, cfg)

	// Wire the command tree with the loaded configuration
	root := cli.NewRootCommand(apiInstance, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
