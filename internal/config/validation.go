package config

import "fmt"

// Validate checks the structural invariants the YAML schema cannot
// express: at least one container, unique non-empty container names and
// non-negative durations.
func (c Config) Validate() error {
	if len(c.Containers) == 0 {
		return fmt.Errorf("at least one container must be configured")
	}

	seen := make(map[string]bool, len(c.Containers))
	for i, cc := range c.Containers {
		if cc.Name == "" {
			return fmt.Errorf("container at index %d has an empty name", i)
		}
		if seen[cc.Name] {
			return fmt.Errorf("container %s is configured more than once", cc.Name)
		}
		seen[cc.Name] = true

		if cc.Animation < 0 {
			return fmt.Errorf("container %s has a negative animation duration", cc.Name)
		}
	}

	if c.Catalog.Debounce < 0 {
		return fmt.Errorf("catalog debounce must not be negative")
	}
	return nil
}
