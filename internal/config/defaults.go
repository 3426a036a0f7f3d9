package config

import "time"

const (
	// DefaultCatalogDebounce is the quiet period applied to catalog file
	// changes when the config does not set one.
	DefaultCatalogDebounce = 500 * time.Millisecond
)

// GetDefaultConfig returns the configuration used when no config file
// exists: a single screen container and no catalog.
func GetDefaultConfig() Config {
	return Config{
		Logging: LoggingConfig{
			Level: "info",
		},
		Catalog: CatalogConfig{
			Debounce: DefaultCatalogDebounce,
		},
		Containers: []ContainerConfig{
			{Name: "screen"},
		},
	}
}
