package container

import (
	"context"
	"fmt"

	"navstack/internal/animation"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Push loads the view for resourcePath and makes it the new stack top,
// running the full transition sequence. It blocks until the transition
// has completed and returns its outcome.
//
// Whether the covered element stays on the stack is decided by the
// stacked flag the previous push recorded; this push records opts.Stack
// for the next one.
func (c *Container) Push(ctx context.Context, resourcePath string, opts view.PushOptions, args view.Args) error {
	t := newTransition(OpPush, c.name)
	c.runPush(ctx, t, resourcePath, opts, args)
	return t.Err()
}

// PushAsync is the fire-and-forget form of Push. The returned Transition
// completes when the operation has finished; callers that do not care
// simply discard it.
func (c *Container) PushAsync(ctx context.Context, resourcePath string, opts view.PushOptions, args view.Args) *Transition {
	t := newTransition(OpPush, c.name)
	go c.runPush(ctx, t, resourcePath, opts, args)
	return t
}

func (c *Container) runPush(ctx context.Context, t *Transition, resourcePath string, opts view.PushOptions, args view.Args) {
	t.enteringPath = resourcePath
	err := c.doPush(ctx, t, resourcePath, opts, args)
	c.finish(t, opts.OnComplete, err)
}

// doPush runs the push sequence. Any error before the stack mutation
// rolls the container back to its pre-call state; errors after the
// mutation are logged and the transition completes.
func (c *Container) doPush(ctx context.Context, t *Transition, resourcePath string, opts view.PushOptions, args view.Args) error {
	if resourcePath == "" {
		return fmt.Errorf("push on container %s: %w", c.name, ErrInvalidArgument)
	}
	if c.isClosed() {
		return fmt.Errorf("push of %s on container %s: %w", resourcePath, c.name, ErrContainerClosed)
	}
	if !c.inTransition.CompareAndSwap(false, true) {
		logging.Debug("Container", "Push of %s rejected, container %s is mid-transition", resourcePath, c.name)
		return fmt.Errorf("push of %s on container %s: %w", resourcePath, c.name, ErrTransitionBusy)
	}
	t.began = true

	// The flag must clear on every path; on success it clears at the
	// mutation point, before the After* hooks.
	cleared := false
	clearFlag := func() {
		if !cleared {
			cleared = true
			c.inTransition.Store(false)
		}
	}
	defer clearFlag()

	c.disableInteraction()
	defer c.enableInteraction()

	// Pool first; a hit skips the loader entirely.
	entering, fromPool := c.pool.Take(ctx, resourcePath)
	if !fromPool {
		var err error
		entering, err = c.load(ctx, resourcePath, opts.LoadAsync)
		if err != nil {
			logging.Error("Container", err, "Load of %s failed on container %s", resourcePath, c.name)
			return fmt.Errorf("push of %s on container %s: %w: %w", resourcePath, c.name, ErrLoadFailed, err)
		}
	}

	// After-load runs on fresh loads and pool hits alike; it binds the
	// view to this container and this call's arguments.
	if l, ok := entering.(view.Loadable); ok {
		if err := l.AfterLoad(ctx, c, args); err != nil {
			c.disposeView(entering, resourcePath)
			return fmt.Errorf("after-load of %s on container %s: %w", resourcePath, c.name, err)
		}
	}

	exiting := c.top()
	var exitingView view.View
	if exiting != nil {
		exitingView = exiting.View
		t.exitingPath = exiting.ResourcePath
	}

	c.notifyReceivers("BeforePush", func(r Receiver) { r.BeforePush(entering, exitingView, args) })

	// Exit side prepares strictly before the enter side begins.
	if exitingView != nil {
		if err := exitingView.BeforeExit(ctx, true, args); err != nil {
			c.disposeView(entering, resourcePath)
			return fmt.Errorf("before-exit of %s on container %s: %w", t.exitingPath, c.name, err)
		}
	}
	if err := entering.BeforeEnter(ctx, true, args); err != nil {
		c.disposeView(entering, resourcePath)
		return fmt.Errorf("before-enter of %s on container %s: %w", resourcePath, c.name, err)
	}

	// Exit phase completes before the enter phase starts; the two are
	// sequenced, never concurrent.
	if exitingView != nil {
		if err := c.runPhase(ctx, exitingView, true, args, animation.Exit, opts.PlayAnimation); err != nil {
			c.disposeView(entering, resourcePath)
			return fmt.Errorf("exit phase of %s on container %s: %w", t.exitingPath, c.name, err)
		}
	}
	if err := c.runPhase(ctx, entering, true, args, animation.Enter, opts.PlayAnimation); err != nil {
		c.disposeView(entering, resourcePath)
		return fmt.Errorf("enter phase of %s on container %s: %w", resourcePath, c.name, err)
	}

	// Stack mutation. The removal decision consumes the stacked flag
	// recorded by the previous push.
	var removed *view.Reference
	c.mu.Lock()
	if !c.stacked && exiting != nil {
		last := len(c.stack) - 1
		c.stack[last] = nil
		c.stack = c.stack[:last]
		removed = exiting
	}
	c.stack = append(c.stack, view.NewReference(entering, resourcePath, opts.Pooling))
	c.mu.Unlock()
	clearFlag()

	if exitingView != nil {
		if err := exitingView.AfterExit(ctx, true, args); err != nil {
			logging.Error("Container", err, "After-exit of %s failed on container %s", t.exitingPath, c.name)
		}
	}
	if err := entering.AfterEnter(ctx, true, args); err != nil {
		logging.Error("Container", err, "After-enter of %s failed on container %s", resourcePath, c.name)
	}

	c.notifyReceivers("AfterPush", func(r Receiver) { r.AfterPush(entering, exitingView, args) })

	if removed != nil {
		c.release(ctx, removed)
	}

	c.setStacked(opts.Stack)

	logging.Debug("Container", "Pushed %s onto container %s (depth=%d stacked=%t)",
		resourcePath, c.name, c.Len(), opts.Stack)
	return nil
}
