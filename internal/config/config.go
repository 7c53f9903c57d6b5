package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the doit application
type Config struct {
	Storage       StorageConfig
	Notifications NotificationsConfig
	Validation    ValidationConfig
	Application   ApplicationConfig
}

// StorageConfig holds storage-related configuration
type StorageConfig struct {
	Dir        string `env:"DOIT_DB_DIR" yaml:"dir"`
	Filename   string `env:"DOIT_DB_FILENAME" yaml:"filename"`
	TaskKey    string `env:"DOIT_TASK_KEY" yaml:"task_key"`
	ExpenseKey string `env:"DOIT_EXPENSE_KEY" yaml:"expense_key"`
	GoalKey    string `env:"DOIT_GOAL_KEY" yaml:"goal_key"`
}

// NotificationsConfig holds reminder scheduling configuration
type NotificationsConfig struct {
	Interval time.Duration `env:"DOIT_NOTIFY_INTERVAL" yaml:"interval"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TaskTextMinLength int `env:"DOIT_VALIDATION_TASK_TEXT_MIN" yaml:"task_text_min_length"`
	TaskTextMaxLength int `env:"DOIT_VALIDATION_TASK_TEXT_MAX" yaml:"task_text_max_length"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"DOIT_APP_TIMEOUT" yaml:"timeout"`
	Verbose bool          `env:"DOIT_APP_VERBOSE" yaml:"verbose"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".doit")

	return &Config{
		Storage: StorageConfig{
			Dir:        defaultDBDir,
			Filename:   "doit.db",
			TaskKey:    "doit-tasks",
			ExpenseKey: "doit-expenses",
			GoalKey:    "goals",
		},
		Notifications: NotificationsConfig{
			Interval: 2 * time.Hour,
		},
		Validation: ValidationConfig{
			TaskTextMinLength: 1,
			TaskTextMaxLength: 255,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("DOIT_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("DOIT_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("DOIT_TASK_KEY"); key != "" {
		c.Storage.TaskKey = key
	}
	if key := os.Getenv("DOIT_EXPENSE_KEY"); key != "" {
		c.Storage.ExpenseKey = key
	}
	if key := os.Getenv("DOIT_GOAL_KEY"); key != "" {
		c.Storage.GoalKey = key
	}

	// Notifications configuration
	if interval := os.Getenv("DOIT_NOTIFY_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Notifications.Interval = d
		}
	}

	// Validation configuration
	if minLen := os.Getenv("DOIT_VALIDATION_TASK_TEXT_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TaskTextMinLength = n
		}
	}
	if maxLen := os.Getenv("DOIT_VALIDATION_TASK_TEXT_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TaskTextMaxLength = n
		}
	}

	// Application configuration
	if timeout := os.Getenv("DOIT_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("DOIT_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.TaskKey == "" {
		return &ConfigError{Field: "storage.task_key", Message: "task slot key cannot be empty"}
	}
	if c.Storage.ExpenseKey == "" {
		return &ConfigError{Field: "storage.expense_key", Message: "expense slot key cannot be empty"}
	}
	if c.Storage.GoalKey == "" {
		return &ConfigError{Field: "storage.goal_key", Message: "goal slot key cannot be empty"}
	}
	if c.Storage.TaskKey == c.Storage.ExpenseKey ||
		c.Storage.TaskKey == c.Storage.GoalKey ||
		c.Storage.ExpenseKey == c.Storage.GoalKey {
		return &ConfigError{Field: "storage", Message: "slot keys must be distinct"}
	}

	// Validate notifications configuration
	if c.Notifications.Interval <= 0 {
		return &ConfigError{Field: "notifications.interval", Message: "notification interval must be positive"}
	}

	// Validate validation configuration
	if c.Validation.TaskTextMinLength < 1 {
		return &ConfigError{Field: "validation.task_text_min_length", Message: "task text minimum length must be at least 1"}
	}
	if c.Validation.TaskTextMaxLength < c.Validation.TaskTextMinLength {
		return &ConfigError{Field: "validation.task_text_max_length", Message: "task text maximum length must be greater than minimum length"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
