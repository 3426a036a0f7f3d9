package view

import (
	"context"
)

// Args carries the caller-supplied arguments of a navigation command through
// to lifecycle hooks and callback receivers.
type Args map[string]interface{}

// Host is the parent a view is handed to after loading. It is implemented by
// the navigation container; views only need its identity, so the interface
// stays minimal and the view package does not depend on the container.
type Host interface {
	// Name returns the identity of the hosting container.
	Name() string
}

// View is the core contract every navigable unit implements: the six
// enter/exit lifecycle hooks invoked by the container in a fixed order
// during each transition.
//
// The push argument tells the view which kind of transition it is part of:
// true for push and bring-to-front (the view is covered or covering),
// false for pop (the view is being removed or revealed).
//
// Each hook may block; the container awaits each one before proceeding, so
// hooks are natural suspension points for asynchronous work.
type View interface {
	// BeforeEnter prepares the view to become the visible top. It runs
	// after the exiting side's BeforeExit and before any animation.
	BeforeEnter(ctx context.Context, push bool, args Args) error

	// Enter runs at the start of the view's enter animation phase.
	Enter(ctx context.Context, push bool, args Args) error

	// AfterEnter runs once the stack has been updated and the view is the
	// established top.
	AfterEnter(ctx context.Context, push bool, args Args) error

	// BeforeExit prepares the view to leave the top position. It always
	// runs before the entering side's BeforeEnter.
	BeforeExit(ctx context.Context, push bool, args Args) error

	// Exit runs at the start of the view's exit animation phase.
	Exit(ctx context.Context, push bool, args Args) error

	// AfterExit runs once the stack has been updated and the view is no
	// longer the top.
	AfterExit(ctx context.Context, push bool, args Args) error
}

// Loadable is an optional capability for views that need a hook right after
// the loader resolves them, before any transition sequencing begins.
type Loadable interface {
	// AfterLoad receives the hosting container and the push arguments.
	AfterLoad(ctx context.Context, host Host, args Args) error
}

// Releasable is an optional capability for views that need to tear down
// resources before being pooled or disposed.
type Releasable interface {
	// BeforeRelease runs after the view's AfterExit and after receivers
	// have been notified, immediately before pooling or disposal.
	BeforeRelease(ctx context.Context) error
}

// Animatable is an optional capability for views that supply their own
// transition animations. When implemented it takes precedence over the
// container's configured animator.
type Animatable interface {
	AnimateEnter(ctx context.Context) error
	AnimateExit(ctx context.Context) error
}

// Reusable is an optional capability for views that participate actively in
// pooling. Deactivate is called when the pool retains the instance,
// Activate when the instance is handed back out instead of a fresh load.
type Reusable interface {
	Activate(ctx context.Context) error
	Deactivate(ctx context.Context) error
}

// Disposable is an optional capability for views that hold resources which
// must be freed when the instance is destroyed rather than pooled.
type Disposable interface {
	Dispose()
}
