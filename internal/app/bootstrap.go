package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"navstack/internal/config"
	"navstack/internal/loader"
	"navstack/internal/system"
	"navstack/pkg/logging"
)

// Application bootstraps and owns a running navigation system. It
// encapsulates the configuration, loader and container registry needed
// by the command surfaces.
//
// The Application follows a two-phase initialization pattern:
//  1. Bootstrap phase: load configuration, initialize logging, build services
//  2. Execution phase: start background services, hand the system to a frontend
//
// Example usage:
//
//	cfg := app.NewConfig(false, false, "") // default config dir
//	application, err := app.NewApplication(cfg)
//	if err != nil {
//	    return fmt.Errorf("failed to create application: %w", err)
//	}
//	defer application.Close(ctx)
//	if err := application.Start(ctx); err != nil {
//	    return err
//	}
type Application struct {
	config   *Config
	services *Services
}

// NewApplication creates and initializes a new application instance with
// the provided configuration. This function performs the complete
// bootstrap sequence:
//
//  1. Configures logging based on debug and quiet settings
//  2. Loads the navigation configuration
//  3. Builds the catalog, loader registry, containers and system
//
// Configuration Loading Behavior:
//   - If cfg.ConfigPath is set: loads navstack.yaml from that directory
//   - If cfg.ConfigPath is empty: uses the per-user default directory
//
// A missing config file is not an error; the defaults apply. The log
// level comes from the loaded config unless the debug flag forces it.
func NewApplication(cfg *Config) (*Application, error) {
	// Configure logging based on debug flag
	appLogLevel := logging.LevelInfo
	if cfg.Debug {
		appLogLevel = logging.LevelDebug
	}

	// Logs go to stderr; stdout belongs to command output and reports
	var logOutput io.Writer = os.Stderr
	if cfg.Quiet {
		logOutput = io.Discard
	}
	logging.Init(appLogLevel, logOutput)

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	navCfg, err := config.LoadConfig(configPath)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to load navigation configuration from %s", configPath)
		return nil, fmt.Errorf("failed to load configuration from %s: %w", configPath, err)
	}
	cfg.NavConfig = &navCfg

	// The config file may lower or raise the level unless debug forced it
	if !cfg.Debug {
		logging.Init(logging.ParseLevel(navCfg.Logging.Level), logOutput)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		logging.Error("Bootstrap", err, "Failed to initialize services")
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &Application{
		config:   cfg,
		services: services,
	}, nil
}

// Start launches background services. Currently that is the catalog
// watcher when the configuration enables it.
func (a *Application) Start(ctx context.Context) error {
	if a.services.Watcher != nil {
		if err := a.services.Watcher.Start(ctx); err != nil {
			return fmt.Errorf("failed to start catalog watcher: %w", err)
		}
	}
	return nil
}

// Close stops background services and shuts down every container.
func (a *Application) Close(ctx context.Context) error {
	if a.services.Watcher != nil {
		if err := a.services.Watcher.Stop(); err != nil {
			logging.Error("Bootstrap", err, "Failed to stop catalog watcher")
		}
	}
	return a.services.System.Shutdown(ctx)
}

// System returns the container registry.
func (a *Application) System() *system.System {
	return a.services.System
}

// Registry returns the loader registry for factory registration.
func (a *Application) Registry() *loader.Registry {
	return a.services.Registry
}

// Catalog returns the definition catalog, or nil when none is
// configured.
func (a *Application) Catalog() *loader.Catalog {
	return a.services.Catalog
}
