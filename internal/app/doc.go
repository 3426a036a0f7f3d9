// Package app provides application bootstrap and lifecycle management
// for navstack.
//
// The package ties the configuration, loader and container layers
// together into one Application value that the command surfaces share.
// Bootstrap is strictly ordered: logging first so configuration
// failures are visible, then the configuration itself, then the
// runtime components built from it.
//
// # Initialization Flow
//
//	cfg := app.NewConfig(debug, quiet, configPath)
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return err
//	}
//	defer application.Close(ctx)
//
//	if err := application.Start(ctx); err != nil {
//	    return err
//	}
//	sys := application.System()
//
// # Component Wiring
//
// InitializeServices builds the runtime from the loaded configuration:
//
//   - A definition catalog when catalog.dir is set, with an optional
//     fsnotify watcher keeping its cache fresh
//   - One loader registry shared by every container, falling back to
//     placeholder views for paths without a registered factory
//   - One container per configuration entry, all registered with a
//     single system that doubles as their transition event sink
//
// Application code extends the runtime by registering view factories on
// the returned registry; the shell and the scenario runner work against
// the placeholder fallback without any.
package app
