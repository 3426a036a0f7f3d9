package container

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"navstack/internal/animation"
	"navstack/internal/loader"
	"navstack/internal/pool"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Container owns one ordered stack of views and drives the transitions
// between them.
//
// At most one transition is in flight per container, enforced by a flag
// rather than a lock: a command issued against a busy container is
// rejected with ErrTransitionBusy, never queued. The stack is mutated
// only by the active transition; the RWMutex below protects the slice
// for concurrent readers (Len, Top, FindMostRecent), it is not the
// transition mutual exclusion.
type Container struct {
	name string

	// Collaborators
	loader   loader.Loader
	animator animation.Animator
	pool     *pool.Pool

	// Interaction locking. The hold counter keeps disable/enable pairs
	// balanced when a new transition begins while the previous one is
	// still postprocessing.
	lockInteraction  bool
	interactionGuard func(enabled bool)
	interactionHolds atomic.Int32

	// inTransition is the Idle/InTransition flag.
	inTransition atomic.Bool

	mu sync.RWMutex

	// stack is ordered bottom to top; the last element is the visible
	// view.
	stack []*view.Reference

	// stacked records whether the most recent push retained the element
	// it covered. The next push consumes it for its removal decision.
	stacked bool

	receivers []Receiver
	closed    bool

	sink EventSink
}

// Options configures a container. Concrete navigation layers (screen,
// modal, window) are instances of this one engine with different
// options, not subclasses.
type Options struct {
	// Name identifies the container. Required, unique within a system.
	Name string

	// Loader resolves resource paths to view instances. Required.
	Loader loader.Loader

	// Animator plays enter/exit animations for views that bring none of
	// their own. Optional; nil means no animation.
	Animator animation.Animator

	// DefaultPooling is the container-wide pooling default applied to
	// references that carry no override.
	DefaultPooling bool

	// LockInteraction disables input on the container for the duration
	// of each transition.
	LockInteraction bool

	// InteractionGuard is invoked with the new input state whenever the
	// interaction lock flips. Optional.
	InteractionGuard func(enabled bool)

	// EventSink receives an event per finished transition. Optional.
	EventSink EventSink
}

// New creates a container from the given options.
func New(opts Options) (*Container, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("container name is required: %w", ErrInvalidArgument)
	}
	if opts.Loader == nil {
		return nil, fmt.Errorf("container %s needs a loader: %w", opts.Name, ErrInvalidArgument)
	}

	c := &Container{
		name:             opts.Name,
		loader:           opts.Loader,
		animator:         opts.Animator,
		pool:             pool.New(opts.DefaultPooling),
		lockInteraction:  opts.LockInteraction,
		interactionGuard: opts.InteractionGuard,
		stacked:          true,
		sink:             opts.EventSink,
	}

	logging.Debug("Container", "Created container %s (defaultPooling=%t lockInteraction=%t)",
		c.name, opts.DefaultPooling, opts.LockInteraction)
	return c, nil
}

// Name returns the container name. It also serves as the host identity
// handed to views in their after-load hook.
func (c *Container) Name() string {
	return c.name
}

// Pool exposes the container's view pool for inspection.
func (c *Container) Pool() *pool.Pool {
	return c.pool
}

// Len returns the current stack depth.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.stack)
}

// Top returns the current top reference, or false when the stack is
// empty.
func (c *Container) Top() (*view.Reference, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.stack) == 0 {
		return nil, false
	}
	return c.stack[len(c.stack)-1], true
}

// Stack returns a snapshot of the stack references, bottom first.
func (c *Container) Stack() []*view.Reference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	refs := make([]*view.Reference, len(c.stack))
	copy(refs, c.stack)
	return refs
}

// Paths returns the resource paths on the stack, bottom first.
func (c *Container) Paths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths := make([]string, len(c.stack))
	for i, ref := range c.stack {
		paths[i] = ref.ResourcePath
	}
	return paths
}

// FindMostRecent returns the stack index of the most recent entry with
// the given resource path, searching top-down. Multiple entries may
// share a path; the highest index wins.
func (c *Container) FindMostRecent(resourcePath string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.findMostRecentLocked(resourcePath)
}

func (c *Container) findMostRecentLocked(resourcePath string) (int, bool) {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].ResourcePath == resourcePath {
			return i, true
		}
	}
	return 0, false
}

// InTransition reports whether a transition is currently in flight.
func (c *Container) InTransition() bool {
	return c.inTransition.Load()
}

// Stacked reports whether the most recent push retained the element it
// covered. Diagnostic accessor for tooling.
func (c *Container) Stacked() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stacked
}

// Interactable reports whether container input is currently enabled.
// Always true when interaction locking is not configured.
func (c *Container) Interactable() bool {
	return c.interactionHolds.Load() == 0
}

// AddReceiver appends a receiver to the notification order.
func (c *Container) AddReceiver(r Receiver) {
	if r == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.receivers = append(c.receivers, r)
}

// RemoveReceiver removes a previously added receiver.
func (c *Container) RemoveReceiver(r Receiver) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, existing := range c.receivers {
		if existing == r {
			c.receivers = append(c.receivers[:i], c.receivers[i+1:]...)
			return
		}
	}
}

// Close tears the container down: every stack entry goes through its
// before-release hook and is disposed, and the pool is drained. Exit
// hooks do not run; close is teardown, not navigation. Further commands
// fail with ErrContainerClosed. Close rejects with ErrTransitionBusy
// while a transition is in flight.
func (c *Container) Close(ctx context.Context) error {
	if !c.inTransition.CompareAndSwap(false, true) {
		return fmt.Errorf("close of container %s: %w", c.name, ErrTransitionBusy)
	}
	defer c.inTransition.Store(false)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	refs := c.stack
	c.stack = nil
	c.mu.Unlock()

	// Top-down, the same order popping everything would use.
	for i := len(refs) - 1; i >= 0; i-- {
		c.release(ctx, refs[i])
	}
	c.pool.Drain()

	logging.Info("Container", "Closed container %s (%d views released)", c.name, len(refs))
	return nil
}

func (c *Container) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// top returns the current top reference without copying, or nil.
func (c *Container) top() *view.Reference {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

func (c *Container) setStacked(stacked bool) {
	c.mu.Lock()
	c.stacked = stacked
	c.mu.Unlock()
}

// disableInteraction turns container input off for the duration of a
// transition when interaction locking is configured.
func (c *Container) disableInteraction() {
	if !c.lockInteraction {
		return
	}
	if c.interactionHolds.Add(1) == 1 {
		if c.interactionGuard != nil {
			c.interactionGuard(false)
		}
		logging.Debug("Container", "Interaction disabled on container %s", c.name)
	}
}

// enableInteraction is the paired counterpart of disableInteraction and
// runs on every transition exit path, including failures.
func (c *Container) enableInteraction() {
	if !c.lockInteraction {
		return
	}
	if c.interactionHolds.Add(-1) == 0 {
		if c.interactionGuard != nil {
			c.interactionGuard(true)
		}
		logging.Debug("Container", "Interaction enabled on container %s", c.name)
	}
}

// release runs the before-release hook and hands the reference to the
// pool, which retains or disposes it per its effective policy. A failed
// before-release downgrades to disposal.
func (c *Container) release(ctx context.Context, ref *view.Reference) {
	if r, ok := ref.View.(view.Releasable); ok {
		if err := r.BeforeRelease(ctx); err != nil {
			logging.Error("Container", err, "Before-release failed for %s on container %s, disposing", ref.ResourcePath, c.name)
			c.disposeView(ref.View, ref.ResourcePath)
			return
		}
	}
	c.pool.Release(ctx, ref)
}

// disposeView destroys a view that will not reach the pool, such as an
// entering view rolled back before it ever joined the stack.
func (c *Container) disposeView(v view.View, resourcePath string) {
	if d, ok := v.(view.Disposable); ok {
		d.Dispose()
	}
	logging.Debug("Container", "Disposed view %s on container %s", resourcePath, c.name)
}
