package config

import (
	"github.com/joho/godotenv"
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
// 2. Merge a .env file into the environment if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// A missing .env file is fine; the environment simply stays as-is.
	_ = godotenv.Load()

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	Addr         *string
	StaticDir    *string
	DBPath       *string
	StatsProfile *string
	SweepEnabled *bool
	LogLevel     *string
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	cfg, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		applyOverrides(cfg, overrides)

		// Re-validate after applying overrides
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func applyOverrides(cfg *Config, overrides *ConfigOverrides) {
	if overrides.Addr != nil && *overrides.Addr != "" {
		cfg.Server.Addr = *overrides.Addr
	}
	if overrides.StaticDir != nil && *overrides.StaticDir != "" {
		cfg.Server.StaticDir = *overrides.StaticDir
	}
	if overrides.DBPath != nil && *overrides.DBPath != "" {
		cfg.Database.Path = *overrides.DBPath
	}
	if overrides.StatsProfile != nil && *overrides.StatsProfile != "" {
		cfg.Stats.Profile = *overrides.StatsProfile
	}
	if overrides.SweepEnabled != nil {
		cfg.Sweep.Enabled = *overrides.SweepEnabled
	}
	if overrides.LogLevel != nil && *overrides.LogLevel != "" {
		cfg.Application.LogLevel = *overrides.LogLevel
	}
}
