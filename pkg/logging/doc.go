// Package logging provides the structured logging system for navstack.
//
// It is a thin layer over Go's standard slog package that adds a subsystem
// tag to every entry and printf-style message formatting, so call sites stay
// compact:
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//	logging.Info("Container", "pushed %s onto %s", path, name)
//	logging.Error("Loader", err, "failed to resolve %s", path)
//
// Log entries are organized by subsystem to enable filtering:
//
//   - Container: transition state machine operations
//   - Pool: view reclaim and reuse
//   - Loader / Catalog / CatalogWatcher: view resolution and definitions
//   - System: container registration and lookup
//   - Scenario: scripted navigation runs
//   - Shell: interactive session
//   - Bootstrap / Config: startup and configuration loading
//
// Level filtering happens at the slog handler, so formatting costs are only
// paid for enabled levels. The package is safe for concurrent use.
package logging
