package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the optional YAML config file
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	if err := l.config.LoadFromFile(l.configFilePath()); err != nil {
		return nil, err
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// configFilePath returns the config file location. DOIT_CONFIG overrides the
// default of <storage dir>/config.yaml.
func (l *Loader) configFilePath() string {
	if path := os.Getenv("DOIT_CONFIG"); path != "" {
		return path
	}
	return filepath.Join(l.config.Storage.Dir, "config.yaml")
}

// fileDuration decodes YAML duration values written either as strings
// ("2h", "45m") or as raw nanosecond integers, matching the environment
// variable format.
type fileDuration time.Duration

func (d *fileDuration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = fileDuration(parsed)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration value %q", value.Value)
	}
	*d = fileDuration(n)
	return nil
}

// fileConfig mirrors Config with optional fields so absent YAML keys leave
// the defaults untouched.
type fileConfig struct {
	Storage struct {
		Dir        *string `yaml:"dir"`
		Filename   *string `yaml:"filename"`
		TaskKey    *string `yaml:"task_key"`
		ExpenseKey *string `yaml:"expense_key"`
		GoalKey    *string `yaml:"goal_key"`
	} `yaml:"storage"`
	Notifications struct {
		Interval *fileDuration `yaml:"interval"`
	} `yaml:"notifications"`
	Validation struct {
		TaskTextMinLength *int `yaml:"task_text_min_length"`
		TaskTextMaxLength *int `yaml:"task_text_max_length"`
	} `yaml:"validation"`
	Application struct {
		Timeout *fileDuration `yaml:"timeout"`
		Verbose *bool         `yaml:"verbose"`
	} `yaml:"application"`
}

// LoadFromFile merges the YAML file at path into the configuration. A
// missing file is not an error; a malformed one is.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Storage.Dir != nil {
		c.Storage.Dir = *fc.Storage.Dir
	}
	if fc.Storage.Filename != nil {
		c.Storage.Filename = *fc.Storage.Filename
	}
	if fc.Storage.TaskKey != nil {
		c.Storage.TaskKey = *fc.Storage.TaskKey
	}
	if fc.Storage.ExpenseKey != nil {
		c.Storage.ExpenseKey = *fc.Storage.ExpenseKey
	}
	if fc.Storage.GoalKey != nil {
		c.Storage.GoalKey = *fc.Storage.GoalKey
	}
	if fc.Notifications.Interval != nil {
		c.Notifications.Interval = time.Duration(*fc.Notifications.Interval)
	}
	if fc.Validation.TaskTextMinLength != nil {
		c.Validation.TaskTextMinLength = *fc.Validation.TaskTextMinLength
	}
	if fc.Validation.TaskTextMaxLength != nil {
		c.Validation.TaskTextMaxLength = *fc.Validation.TaskTextMaxLength
	}
	if fc.Application.Timeout != nil {
		c.Application.Timeout = time.Duration(*fc.Application.Timeout)
	}
	if fc.Application.Verbose != nil {
		c.Application.Verbose = *fc.Application.Verbose
	}

	return nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Storage overrides
	DBDir      *string
	DBFilename *string

	// Notifications overrides
	NotifyInterval *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.DBDir != nil {
		config.Storage.Dir = *overrides.DBDir
	}
	if overrides.DBFilename != nil {
		config.Storage.Filename = *overrides.DBFilename
	}
	if overrides.NotifyInterval != nil {
		config.Notifications.Interval = *overrides.NotifyInterval
	}
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
