package main

import (
	"fmt"
	"os"

	"github.com/tabrez-nitr/doit/internal/config"
	"github.com/tabrez-nitr/doit/internal/storage/sqlite"
)

// Environment represents the current environment
type Environment string

const (
	Development Environment = "development"
	Testing     Environment = "testing"
	Production  Environment = "production"
)

// StoreFactory creates storage instances based on environment
type StoreFactory struct {
	env Environment
	cfg *config.Config
}

// NewStoreFactory creates a new store factory for the given environment
func NewStoreFactory(env Environment, cfg *config.Config) *StoreFactory {
	return &StoreFactory{env: env, cfg: cfg}
}

// CreateStore creates a store instance based on the current environment
func (sf *StoreFactory) CreateStore() (sqlite.Store, error) {
	switch sf.env {
	case Development:
		return sf.createDevelopmentStore()
	case Testing:
		return sf.createTestingStore()
	case Production:
		return sf.createProductionStore()
	default:
		return sf.createProductionStore()
	}
}

// createDevelopmentStore uses a local database file in the working directory
func (sf *StoreFactory) createDevelopmentStore() (sqlite.Store, error) {
	store, err := sqlite.New("doit.db")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize development database: %w", err)
	}
	return store, nil
}

// createTestingStore uses an in-memory database
func (sf *StoreFactory) createTestingStore() (sqlite.Store, error) {
	store, err := config.CreateTestStore()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize testing database: %w", err)
	}
	return store, nil
}

// createProductionStore uses the configured database location
func (sf *StoreFactory) createProductionStore() (sqlite.Store, error) {
	store, err := config.CreateStore(sf.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize production database: %w", err)
	}
	return store, nil
}

// getEnvironment determines the current environment
func getEnvironment() Environment {
	switch os.Getenv("DOIT_ENV") {
	case "development":
		return Development
	case "testing":
		return Testing
	case "production":
		return Production
	default:
		// Default to production for safety
		return Production
	}
}
