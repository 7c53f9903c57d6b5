package config

import (
	"fmt"
	"os"

	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// CreateStore creates a slot store instance using the configuration system
func CreateStore(config *Config) (sqlite.Store, error) {
	if err := os.MkdirAll(config.Storage.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	store, err := sqlite.New(config.GetDatabasePath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return store, nil
}

// CreateTestStore creates an in-memory store for testing
func CreateTestStore() (sqlite.Store, error) {
	store, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return store, nil
}
