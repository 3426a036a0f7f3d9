package app

import (
	"navstack/internal/config"
)

// Config holds the application configuration
type Config struct {
	// Debug settings
	Debug bool

	// Quiet suppresses all log output
	Quiet bool

	// Custom configuration path (optional)
	// When empty, the per-user default directory is used
	ConfigPath string

	// Navigation configuration loaded during bootstrap
	NavConfig *config.Config
}

// NewConfig creates a new application configuration
func NewConfig(debug, quiet bool, configPath string) *Config {
	return &Config{
		Debug:      debug,
		Quiet:      quiet,
		ConfigPath: configPath,
	}
}
