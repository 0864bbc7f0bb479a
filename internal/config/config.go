// Package config holds runtime configuration for the task tracker, loaded
// from defaults, an optional .env file, environment variables and flags, in
// that priority order.
package config

import (
	"os"
	"strconv"
	"time"

	"compliance-tracker/internal/domain"
)

// Config holds all configuration options for the task tracker service
type Config struct {
	Server      ServerConfig
	Database    DatabaseConfig
	Stats       StatsConfig
	Sweep       SweepConfig
	Application ApplicationConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr            string        `env:"CT_ADDR"`
	StaticDir       string        `env:"CT_STATIC_DIR"`
	ShutdownTimeout time.Duration `env:"CT_SHUTDOWN_TIMEOUT"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Path         string        `env:"CT_DB_PATH"`
	QueryTimeout time.Duration `env:"CT_DB_QUERY_TIMEOUT"`
}

// StatsConfig selects the aggregation profile the stats endpoint serves
type StatsConfig struct {
	Profile string `env:"CT_STATS_PROFILE"`
}

// SweepConfig holds the scheduled maintenance job configuration
type SweepConfig struct {
	Enabled  bool   `env:"CT_SWEEP_ENABLED"`
	Schedule string `env:"CT_SWEEP_SCHEDULE"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	RequestTimeout time.Duration `env:"CT_REQUEST_TIMEOUT"`
	LogLevel       string        `env:"CT_LOG_LEVEL"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:            ":3000",
			StaticDir:       "static",
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Path:         "tasks.db",
			QueryTimeout: 10 * time.Second,
		},
		Stats: StatsConfig{
			Profile: string(domain.ProfileDueWindows),
		},
		Sweep: SweepConfig{
			Enabled:  true,
			Schedule: "5 0 * * *", // daily, just after midnight
		},
		Application: ApplicationConfig{
			RequestTimeout: 10 * time.Second,
			LogLevel:       "info",
		},
	}
}

// StatsProfile returns the configured profile as a domain value.
func (c *Config) StatsProfile() domain.StatsProfile {
	return domain.StatsProfile(c.Stats.Profile)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	if addr := os.Getenv("CT_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if dir := os.Getenv("CT_STATIC_DIR"); dir != "" {
		c.Server.StaticDir = dir
	}
	if timeout := os.Getenv("CT_SHUTDOWN_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Server.ShutdownTimeout = d
		}
	}

	if path := os.Getenv("CT_DB_PATH"); path != "" {
		c.Database.Path = path
	}
	if timeout := os.Getenv("CT_DB_QUERY_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Database.QueryTimeout = d
		}
	}

	if profile := os.Getenv("CT_STATS_PROFILE"); profile != "" {
		c.Stats.Profile = profile
	}

	if enabled := os.Getenv("CT_SWEEP_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			c.Sweep.Enabled = b
		}
	}
	if schedule := os.Getenv("CT_SWEEP_SCHEDULE"); schedule != "" {
		c.Sweep.Schedule = schedule
	}

	if timeout := os.Getenv("CT_REQUEST_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.RequestTimeout = d
		}
	}
	if level := os.Getenv("CT_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return &ConfigError{Field: "server.addr", Message: "listen address cannot be empty"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Database.Path == "" {
		return &ConfigError{Field: "database.path", Message: "database path cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if !c.StatsProfile().Valid() {
		return &ConfigError{Field: "stats.profile", Message: "profile must be due-windows or status-counts"}
	}
	if c.Sweep.Enabled && c.Sweep.Schedule == "" {
		return &ConfigError{Field: "sweep.schedule", Message: "schedule cannot be empty when the sweep is enabled"}
	}
	if c.Application.RequestTimeout <= 0 {
		return &ConfigError{Field: "application.request_timeout", Message: "request timeout must be positive"}
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
