package loader

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"sigs.k8s.io/yaml"

	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Pooling override values accepted in definition files.
const (
	poolingEnabled  = "enabled"
	poolingDisabled = "disabled"
)

// Definition describes a view resource declared in the catalog directory.
//
// Definitions are optional; any resource path can be pushed without one.
// When present they carry display and policy data for factories and
// tooling.
type Definition struct {
	// ResourcePath identifies the resource. Filled from the file location
	// when the file omits it.
	ResourcePath string `json:"resourcePath,omitempty"`

	// Title is a display name used by CLI output.
	Title string `json:"title,omitempty"`

	// Pooling overrides the container pooling default for this resource.
	// Valid values are "enabled", "disabled" and "" (no override).
	Pooling string `json:"pooling,omitempty"`

	// Args are default arguments factories may bake into the view.
	Args map[string]interface{} `json:"args,omitempty"`

	// Metadata carries free-form key-value pairs for tooling.
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PoolingPolicy maps the textual pooling override to a policy value.
func (d *Definition) PoolingPolicy() view.PoolingPolicy {
	switch d.Pooling {
	case poolingEnabled:
		return view.PoolEnabled
	case poolingDisabled:
		return view.PoolDisabled
	default:
		return view.PoolUseContainerDefault
	}
}

// validate checks field values after parsing.
func (d *Definition) validate() error {
	switch d.Pooling {
	case "", poolingEnabled, poolingDisabled:
		return nil
	default:
		return fmt.Errorf("invalid pooling value %q (want %q or %q)", d.Pooling, poolingEnabled, poolingDisabled)
	}
}

// Catalog lazily loads view definitions from YAML files under a base
// directory.
//
// A resource path maps to <dir>/<path>.yaml (or .yml). Parsed definitions
// are cached until invalidated, including the not-found case; concurrent
// first fetches for the same path are collapsed with singleflight. A
// Watcher can keep the cache fresh when files change on disk.
type Catalog struct {
	mu    sync.RWMutex
	dir   string
	cache map[string]*Definition
	group singleflight.Group
}

// NewCatalog creates a catalog rooted at dir. The directory does not have
// to exist yet; lookups simply miss until files appear.
func NewCatalog(dir string) *Catalog {
	return &Catalog{
		dir:   dir,
		cache: make(map[string]*Definition),
	}
}

// Dir returns the catalog root directory.
func (c *Catalog) Dir() string {
	return c.dir
}

// Get returns the definition for resourcePath, or nil when the catalog
// has no file for it.
func (c *Catalog) Get(ctx context.Context, resourcePath string) (*Definition, error) {
	if err := validResourcePath(resourcePath); err != nil {
		return nil, err
	}

	c.mu.RLock()
	def, cached := c.cache[resourcePath]
	c.mu.RUnlock()
	if cached {
		return def, nil
	}

	// Collapse concurrent fetches for the same path.
	result, err, _ := c.group.Do(resourcePath, func() (interface{}, error) {
		// Double-check the cache after acquiring the singleflight slot.
		c.mu.RLock()
		def, cached := c.cache[resourcePath]
		c.mu.RUnlock()
		if cached {
			return def, nil
		}

		def, err := c.read(ctx, resourcePath)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cache[resourcePath] = def
		c.mu.Unlock()
		return def, nil
	})
	if err != nil {
		return nil, err
	}

	def, _ = result.(*Definition)
	return def, nil
}

// read loads and parses a single definition file. A missing file is not
// an error and yields a nil definition.
func (c *Catalog) read(ctx context.Context, resourcePath string) (*Definition, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		data []byte
		path string
		err  error
	)
	for _, ext := range []string{".yaml", ".yml"} {
		path = filepath.Join(c.dir, filepath.FromSlash(resourcePath)+ext)
		data, err = os.ReadFile(path)
		if err == nil {
			break
		}
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read definition file %s: %w", path, err)
		}
	}
	if err != nil {
		logging.Debug("Catalog", "No definition file for %s", resourcePath)
		return nil, nil
	}

	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse definition file %s: %w", path, err)
	}
	if def.ResourcePath == "" {
		def.ResourcePath = resourcePath
	}
	if err := def.validate(); err != nil {
		return nil, fmt.Errorf("invalid definition file %s: %w", path, err)
	}

	logging.Debug("Catalog", "Loaded definition for %s", resourcePath)
	return &def, nil
}

// Invalidate drops the cached definition for resourcePath. The next Get
// rereads the file.
func (c *Catalog) Invalidate(resourcePath string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, resourcePath)
}

// InvalidateAll drops every cached definition.
func (c *Catalog) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache = make(map[string]*Definition)
}

// Paths lists the resource paths of all definition files currently on
// disk, sorted. Used for shell completion and CLI listings.
func (c *Catalog) Paths() ([]string, error) {
	var paths []string
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isYAMLFile(path) {
			return nil
		}
		rel, err := filepath.Rel(c.dir, path)
		if err != nil {
			return err
		}
		rel = strings.TrimSuffix(rel, filepath.Ext(rel))
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list catalog %s: %w", c.dir, err)
	}

	sort.Strings(paths)
	return paths, nil
}

// validResourcePath rejects paths that would escape the catalog root.
func validResourcePath(resourcePath string) error {
	if resourcePath == "" {
		return fmt.Errorf("resource path must not be empty")
	}
	if strings.HasPrefix(resourcePath, "/") {
		return fmt.Errorf("resource path %s must be relative", resourcePath)
	}
	for _, part := range strings.Split(resourcePath, "/") {
		if part == ".." {
			return fmt.Errorf("resource path %s must not contain ..", resourcePath)
		}
	}
	return nil
}

// isYAMLFile checks if a file path is a YAML file.
func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
