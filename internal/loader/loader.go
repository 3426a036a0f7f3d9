package loader

import (
	"context"
	"fmt"
	"sync"

	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Loader resolves a resource path to a fresh view instance.
//
// Load is called by a container whenever a push (or a bring-to-front miss)
// needs an instance the pool cannot supply. Implementations may read
// definition files, construct scene objects or fetch remote assets; they
// are not responsible for lifecycle hooks, the container drives those
// after loading.
type Loader interface {
	// Load builds a new view for the given resource path. It must return
	// either a non-nil view or an error.
	Load(ctx context.Context, resourcePath string) (view.View, error)
}

// Func adapts a plain function to the Loader interface.
type Func func(ctx context.Context, resourcePath string) (view.View, error)

// Load implements Loader.
func (f Func) Load(ctx context.Context, resourcePath string) (view.View, error) {
	return f(ctx, resourcePath)
}

// Factory constructs a view instance from a catalog definition.
//
// The definition is never nil: when the catalog has no file for the
// requested path, or the registry runs without a catalog, the registry
// passes a synthesized definition carrying only the resource path.
type Factory func(ctx context.Context, def *Definition) (view.View, error)

// Registry is a catalog-aware Loader that dispatches to registered
// factories.
//
// Resolution order is an exact-path factory first, then the fallback
// factory. Paths with no matching factory fail the load.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	fallback  Factory
	catalog   *Catalog
}

// NewRegistry creates an empty factory registry. The catalog is optional;
// without one, factories receive synthesized definitions.
func NewRegistry(catalog *Catalog) *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		catalog:   catalog,
	}
}

// Register binds a factory to an exact resource path, replacing any
// previous binding for that path.
func (r *Registry) Register(resourcePath string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[resourcePath] = f
}

// SetFallback installs the factory used for paths without an exact
// binding.
func (r *Registry) SetFallback(f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fallback = f
}

// Catalog returns the definition catalog backing this registry, or nil
// when the registry runs without one.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Load implements Loader.
func (r *Registry) Load(ctx context.Context, resourcePath string) (view.View, error) {
	if resourcePath == "" {
		return nil, fmt.Errorf("resource path must not be empty")
	}

	r.mu.RLock()
	factory, exact := r.factories[resourcePath]
	if !exact {
		factory = r.fallback
	}
	r.mu.RUnlock()

	if factory == nil {
		return nil, fmt.Errorf("no factory registered for resource path %s", resourcePath)
	}

	def, err := r.definition(ctx, resourcePath)
	if err != nil {
		return nil, err
	}

	v, err := factory(ctx, def)
	if err != nil {
		return nil, fmt.Errorf("factory for %s failed: %w", resourcePath, err)
	}
	if v == nil {
		return nil, fmt.Errorf("factory for %s returned no view", resourcePath)
	}

	logging.Debug("Loader", "Loaded view for %s (exactFactory=%t)", resourcePath, exact)
	return v, nil
}

// definition fetches the catalog definition for the path, synthesizing a
// minimal one when the catalog is absent or has no file for the path.
func (r *Registry) definition(ctx context.Context, resourcePath string) (*Definition, error) {
	if r.catalog == nil {
		return &Definition{ResourcePath: resourcePath}, nil
	}

	def, err := r.catalog.Get(ctx, resourcePath)
	if err != nil {
		return nil, err
	}
	if def == nil {
		return &Definition{ResourcePath: resourcePath}, nil
	}
	return def, nil
}
