package app

import (
	"context"
	"fmt"

	"navstack/internal/animation"
	"navstack/internal/container"
	"navstack/internal/loader"
	"navstack/internal/system"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Services holds the initialized runtime components of the application.
//
// The components are built in dependency order: catalog first, then the
// loader registry on top of it, then one container per configuration
// entry sharing that registry, all registered with a single system that
// also serves as their transition event sink.
type Services struct {
	// System is the container registry and transition event hub.
	System *system.System

	// Registry resolves resource paths to view instances through
	// registered factories.
	Registry *loader.Registry

	// Catalog holds view definitions; nil when no catalog directory is
	// configured.
	Catalog *loader.Catalog

	// Watcher keeps the catalog cache fresh on file changes; nil unless
	// watching is enabled in the configuration.
	Watcher *loader.Watcher
}

// InitializeServices creates all runtime components from the loaded
// configuration.
//
// Every configured container shares the same loader registry, so a
// factory registered once serves all navigation layers. The registry
// falls back to a placeholder factory for paths no application factory
// claims, which keeps configured containers usable from the shell and
// the scenario runner without application code.
func InitializeServices(cfg *Config) (*Services, error) {
	navCfg := cfg.NavConfig

	var cat *loader.Catalog
	if navCfg.Catalog.Dir != "" {
		cat = loader.NewCatalog(navCfg.Catalog.Dir)
		logging.Info("Services", "Using view catalog at %s", navCfg.Catalog.Dir)
	}

	registry := loader.NewRegistry(cat)
	registry.SetFallback(placeholderFactory)

	sys := system.New()

	for _, cc := range navCfg.Containers {
		var animator animation.Animator
		if cc.Animation > 0 {
			animator = animation.Delay{Duration: cc.Animation}
		}

		c, err := container.New(container.Options{
			Name:            cc.Name,
			Loader:          registry,
			Animator:        animator,
			DefaultPooling:  cc.DefaultPooling,
			LockInteraction: cc.LockInteraction,
			EventSink:       sys,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create container %s: %w", cc.Name, err)
		}
		if err := sys.Register(c); err != nil {
			return nil, fmt.Errorf("failed to register container %s: %w", cc.Name, err)
		}
	}
	logging.Info("Services", "Initialized %d containers", len(navCfg.Containers))

	var watcher *loader.Watcher
	if cat != nil && navCfg.Catalog.Watch {
		watcher = loader.NewWatcher(cat, navCfg.Catalog.Debounce)
	}

	return &Services{
		System:   sys,
		Registry: registry,
		Catalog:  cat,
		Watcher:  watcher,
	}, nil
}

// placeholderView backs resource paths no application factory claims.
// It holds its definition so tooling can still display title and
// metadata.
type placeholderView struct {
	view.BaseView
	def *loader.Definition
}

// placeholderFactory builds placeholder views. Installed as the
// registry fallback.
func placeholderFactory(ctx context.Context, def *loader.Definition) (view.View, error) {
	return &placeholderView{def: def}, nil
}
