// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"strings"

	"fjacquet/chat-txn/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Bounds for batch.workers
const (
	MinWorkers = 1
	MaxWorkers = 64
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Interpreter struct {
		TaxonomyFile string `mapstructure:"taxonomy_file" yaml:"taxonomy_file"`
		Currency     string `mapstructure:"currency" yaml:"currency"`
		Diagnostics  bool   `mapstructure:"diagnostics" yaml:"diagnostics"`
	} `mapstructure:"interpreter" yaml:"interpreter"`

	Batch struct {
		Workers int `mapstructure:"workers" yaml:"workers"`
	} `mapstructure:"batch" yaml:"batch"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading.
// A non-empty configFile replaces the search of the standard locations.
func InitializeConfig(configFile string) (*Config, error) {
	v := viper.New()

	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("$HOME/.chat-txn")
		v.AddConfigPath(".chat-txn")
		v.AddConfigPath(".")
	}

	// 3. Environment variables
	v.SetEnvPrefix("CHATTXN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// Unprefixed LOG_LEVEL and LOG_FORMAT are honoured as a fallback
	_ = v.BindEnv("log.level", "CHATTXN_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", "CHATTXN_LOG_FORMAT", "LOG_FORMAT")

	// 4. Read config file (optional unless given explicitly)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 5. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("interpreter.taxonomy_file", "")
	v.SetDefault("interpreter.currency", "BDT")
	v.SetDefault("interpreter.diagnostics", true)

	v.SetDefault("batch.workers", 4)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len([]rune(config.CSV.Delimiter)) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if strings.TrimSpace(config.Interpreter.Currency) == "" {
		return fmt.Errorf("interpreter.currency must not be empty")
	}

	if config.Batch.Workers < MinWorkers || config.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch.workers must be between %d and %d, got: %d",
			MinWorkers, MaxWorkers, config.Batch.Workers)
	}

	return nil
}

// Delimiter returns the CSV delimiter as a rune.
func (c *Config) Delimiter() rune {
	for _, r := range c.CSV.Delimiter {
		return r
	}
	return ','
}

// NewLogger builds the application logger from the log settings.
func (c *Config) NewLogger() logging.Logger {
	return logging.NewLogrusAdapter(c.Log.Level, c.Log.Format)
}
