package config

import "time"

// Config is the top-level configuration structure for navstack.
type Config struct {
	Logging    LoggingConfig     `yaml:"logging,omitempty"`
	Catalog    CatalogConfig     `yaml:"catalog,omitempty"`
	Containers []ContainerConfig `yaml:"containers,omitempty"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn, error (default: info)
}

// CatalogConfig locates the view definition catalog.
type CatalogConfig struct {
	Dir      string        `yaml:"dir,omitempty"`      // Directory holding per-path definition YAML files
	Watch    bool          `yaml:"watch,omitempty"`    // Watch the directory and invalidate cached definitions on change
	Debounce time.Duration `yaml:"debounce,omitempty"` // Quiet period per path before invalidation fires (default: 500ms)
}

// ContainerConfig declares one navigation container. Screen, modal and
// window layers are entries here, not distinct types.
type ContainerConfig struct {
	Name            string        `yaml:"name"`
	DefaultPooling  bool          `yaml:"defaultPooling,omitempty"`  // Pool released views unless the reference overrides
	LockInteraction bool          `yaml:"lockInteraction,omitempty"` // Disable input while a transition runs
	Animation       time.Duration `yaml:"animation,omitempty"`       // Enter/exit animation duration, 0 disables animation
}
