package loader

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"navstack/pkg/logging"
)

// Watcher invalidates catalog entries when their files change on disk.
//
// It watches the catalog directory tree with fsnotify and debounces rapid
// successive events per resource path, so editors that write a file in
// several steps trigger a single invalidation.
type Watcher struct {
	mu sync.RWMutex

	// catalog is the cache being kept fresh
	catalog *Catalog

	// watcher is the fsnotify watcher instance
	watcher *fsnotify.Watcher

	// debounceInterval is how long to wait for additional changes
	debounceInterval time.Duration

	// pending tracks debounce timers per resource path
	pending map[string]*time.Timer

	// onChange, when set, runs after each invalidation
	onChange func(resourcePath string)

	// stopCh signals shutdown
	stopCh chan struct{}

	// running indicates if the watcher is active
	running bool
}

// NewWatcher creates a watcher for the given catalog.
func NewWatcher(catalog *Catalog, debounceInterval time.Duration) *Watcher {
	if debounceInterval == 0 {
		debounceInterval = 500 * time.Millisecond
	}

	return &Watcher{
		catalog:          catalog,
		debounceInterval: debounceInterval,
		pending:          make(map[string]*time.Timer),
		stopCh:           make(chan struct{}),
	}
}

// OnChange installs a callback invoked after each invalidation. Must be
// set before Start.
func (w *Watcher) OnChange(fn func(resourcePath string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching the catalog directory tree.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		w.mu.Unlock()
		return err
	}

	w.watcher = fsw
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	dir := w.catalog.Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		w.Stop()
		return err
	}
	if err := fsw.Add(dir); err != nil {
		w.Stop()
		return err
	}
	logging.Debug("CatalogWatcher", "Watching directory: %s", dir)

	// Existing subdirectories need their own watches; fsnotify is not
	// recursive.
	w.watchSubtree(dir, false)

	go w.processEvents(ctx, fsw)

	logging.Info("CatalogWatcher", "Started watching %s for definition changes", dir)
	return nil
}

// watchSubtree adds watches for every directory below dir. With
// sweepFiles set it also schedules invalidations for definition files
// already present, which covers files written before the watch existed.
func (w *Watcher) watchSubtree(dir string, sweepFiles bool) {
	w.mu.RLock()
	fsw := w.watcher
	w.mu.RUnlock()
	if fsw == nil {
		return
	}

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path == dir {
				return nil
			}
			if err := fsw.Add(path); err != nil {
				logging.Warn("CatalogWatcher", "Failed to watch directory %s: %v", path, err)
				return nil
			}
			logging.Debug("CatalogWatcher", "Watching directory: %s", path)
			return nil
		}
		if !sweepFiles || !isYAMLFile(path) {
			return nil
		}
		if rp, ok := w.resourcePathFor(path); ok {
			w.debounce(rp)
		}
		return nil
	})
}

// processEvents handles filesystem events until shutdown.
func (w *Watcher) processEvents(ctx context.Context, fsw *fsnotify.Watcher) {
	events, errs := fsw.Events, fsw.Errors

	for {
		select {
		case <-ctx.Done():
			w.cleanupPending()
			return

		case <-w.stopCh:
			w.cleanupPending()
			return

		case event, ok := <-events:
			if !ok {
				return
			}
			w.handleFsEvent(event)

		case err, ok := <-errs:
			if !ok {
				return
			}
			logging.Error("CatalogWatcher", err, "Filesystem watcher error")
		}
	}
}

// handleFsEvent processes a single filesystem event.
func (w *Watcher) handleFsEvent(event fsnotify.Event) {
	// A directory created after start needs its own watch, and any files
	// that landed inside it before the watch emit no events of their own.
	if event.Op&fsnotify.Create == fsnotify.Create {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.mu.RLock()
			fsw := w.watcher
			w.mu.RUnlock()
			if fsw != nil {
				if err := fsw.Add(event.Name); err != nil {
					logging.Warn("CatalogWatcher", "Failed to watch new directory %s: %v", event.Name, err)
				}
			}
			w.watchSubtree(event.Name, true)
			return
		}
	}

	if !isYAMLFile(event.Name) {
		return
	}

	resourcePath, ok := w.resourcePathFor(event.Name)
	if !ok {
		return
	}

	switch {
	case event.Op&fsnotify.Create == fsnotify.Create,
		event.Op&fsnotify.Write == fsnotify.Write,
		event.Op&fsnotify.Remove == fsnotify.Remove,
		event.Op&fsnotify.Rename == fsnotify.Rename:
		w.debounce(resourcePath)
	}
}

// debounce schedules an invalidation, resetting the timer when more
// events arrive for the same resource path.
func (w *Watcher) debounce(resourcePath string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, ok := w.pending[resourcePath]; ok {
		timer.Stop()
	}

	w.pending[resourcePath] = time.AfterFunc(w.debounceInterval, func() {
		w.mu.Lock()
		_, ok := w.pending[resourcePath]
		if ok {
			delete(w.pending, resourcePath)
		}
		onChange := w.onChange
		w.mu.Unlock()

		if !ok {
			return
		}

		w.catalog.Invalidate(resourcePath)
		logging.Debug("CatalogWatcher", "Invalidated definition for %s", resourcePath)

		if onChange != nil {
			onChange(resourcePath)
		}
	})
}

// resourcePathFor maps an absolute file path back to a resource path.
func (w *Watcher) resourcePathFor(path string) (string, bool) {
	rel, err := filepath.Rel(w.catalog.Dir(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", false
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.ToSlash(rel), true
}

// cleanupPending cancels all pending debounce timers.
func (w *Watcher) cleanupPending() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, timer := range w.pending {
		timer.Stop()
	}
	w.pending = make(map[string]*time.Timer)
}

// Stop gracefully stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return nil
	}

	w.running = false
	close(w.stopCh)

	if w.watcher != nil {
		if err := w.watcher.Close(); err != nil {
			logging.Error("CatalogWatcher", err, "Error closing filesystem watcher")
		}
		w.watcher = nil
	}

	logging.Info("CatalogWatcher", "Stopped catalog watcher")
	return nil
}
