package pool

import (
	"context"
	"sync"

	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Pool is a per-container cache of released view instances keyed by
// resource path. Instead of destroying a view removed from the stack, the
// owning container hands it to the pool; a later push of the same path
// takes the cached instance back and skips the loader entirely.
//
// Multiple instances may be cached per path (a stack can hold several
// entries with the same resource path); takes are LIFO per key.
type Pool struct {
	mu             sync.Mutex
	entries        map[string][]view.View
	defaultEnabled bool
}

// New creates an empty pool. defaultEnabled is the container's default
// pooling policy, applied to references that carry
// view.PoolUseContainerDefault.
func New(defaultEnabled bool) *Pool {
	return &Pool{
		entries:        make(map[string][]view.View),
		defaultEnabled: defaultEnabled,
	}
}

// enabled resolves the effective pooling decision for a reference.
func (p *Pool) enabled(policy view.PoolingPolicy) bool {
	switch policy {
	case view.PoolEnabled:
		return true
	case view.PoolDisabled:
		return false
	default:
		return p.defaultEnabled
	}
}

// Release takes ownership of a reference that has been removed from the
// stack. When the effective policy allows pooling the view is deactivated
// and retained for reuse; otherwise it is disposed. A failing Deactivate
// downgrades to disposal so a half-deactivated instance is never handed
// back out.
func (p *Pool) Release(ctx context.Context, ref *view.Reference) {
	if ref == nil || ref.View == nil {
		return
	}

	if !p.enabled(ref.Pooling) {
		dispose(ref.View, ref.ResourcePath)
		return
	}

	if r, ok := ref.View.(view.Reusable); ok {
		if err := r.Deactivate(ctx); err != nil {
			logging.Warn("Pool", "Deactivate failed for %s, disposing instead: %v", ref.ResourcePath, err)
			dispose(ref.View, ref.ResourcePath)
			return
		}
	}

	p.mu.Lock()
	p.entries[ref.ResourcePath] = append(p.entries[ref.ResourcePath], ref.View)
	p.mu.Unlock()

	logging.Debug("Pool", "Retained view for %s", ref.ResourcePath)
}

// Take returns a cached instance for the path, reactivated and ready for
// use, or false when none is available. Instances whose Activate fails are
// disposed and skipped.
func (p *Pool) Take(ctx context.Context, resourcePath string) (view.View, bool) {
	for {
		p.mu.Lock()
		cached := p.entries[resourcePath]
		if len(cached) == 0 {
			p.mu.Unlock()
			return nil, false
		}
		v := cached[len(cached)-1]
		cached[len(cached)-1] = nil
		p.entries[resourcePath] = cached[:len(cached)-1]
		p.mu.Unlock()

		if r, ok := v.(view.Reusable); ok {
			if err := r.Activate(ctx); err != nil {
				logging.Warn("Pool", "Activate failed for pooled %s, disposing: %v", resourcePath, err)
				dispose(v, resourcePath)
				continue
			}
		}

		logging.Debug("Pool", "Reusing pooled view for %s", resourcePath)
		return v, true
	}
}

// Len reports how many instances are cached for a path.
func (p *Pool) Len(resourcePath string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries[resourcePath])
}

// Size reports the total number of cached instances across all paths.
func (p *Pool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	total := 0
	for _, cached := range p.entries {
		total += len(cached)
	}
	return total
}

// Paths returns the resource paths that currently have cached instances.
func (p *Pool) Paths() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	paths := make([]string, 0, len(p.entries))
	for path, cached := range p.entries {
		if len(cached) > 0 {
			paths = append(paths, path)
		}
	}
	return paths
}

// Drain disposes every cached instance and empties the pool. Called on
// container teardown.
func (p *Pool) Drain() {
	p.mu.Lock()
	entries := p.entries
	p.entries = make(map[string][]view.View)
	p.mu.Unlock()

	for path, cached := range entries {
		for _, v := range cached {
			dispose(v, path)
		}
	}
}

func dispose(v view.View, resourcePath string) {
	if d, ok := v.(view.Disposable); ok {
		d.Dispose()
	}
	logging.Debug("Pool", "Disposed view for %s", resourcePath)
}
