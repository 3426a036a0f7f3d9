package container

import (
	"context"
	"fmt"

	"navstack/internal/animation"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Pop removes the current top view and reveals the element beneath it,
// which may be none. The popped view is released through the pool. Pop
// blocks until the transition has completed and returns its outcome.
func (c *Container) Pop(ctx context.Context, playAnimation bool, args view.Args) error {
	t := newTransition(OpPop, c.name)
	c.runPop(ctx, t, playAnimation, args)
	return t.Err()
}

// PopAsync is the fire-and-forget form of Pop.
func (c *Container) PopAsync(ctx context.Context, playAnimation bool, args view.Args) *Transition {
	t := newTransition(OpPop, c.name)
	go c.runPop(ctx, t, playAnimation, args)
	return t
}

func (c *Container) runPop(ctx context.Context, t *Transition, playAnimation bool, args view.Args) {
	err := c.doPop(ctx, t, playAnimation, args)
	c.finish(t, nil, err)
}

// doPop mirrors the push sequence without loading: the top is the
// exiting side, the element beneath is the entering side.
func (c *Container) doPop(ctx context.Context, t *Transition, playAnimation bool, args view.Args) error {
	if c.isClosed() {
		return fmt.Errorf("pop on container %s: %w", c.name, ErrContainerClosed)
	}
	if !c.inTransition.CompareAndSwap(false, true) {
		logging.Debug("Container", "Pop rejected, container %s is mid-transition", c.name)
		return fmt.Errorf("pop on container %s: %w", c.name, ErrTransitionBusy)
	}

	cleared := false
	clearFlag := func() {
		if !cleared {
			cleared = true
			c.inTransition.Store(false)
		}
	}
	defer clearFlag()

	c.mu.RLock()
	var exiting, entering *view.Reference
	if n := len(c.stack); n > 0 {
		exiting = c.stack[n-1]
		if n > 1 {
			entering = c.stack[n-2]
		}
	}
	c.mu.RUnlock()

	if exiting == nil {
		logging.Debug("Container", "Pop rejected, container %s stack is empty", c.name)
		return fmt.Errorf("pop on container %s: %w", c.name, ErrEmptyStack)
	}
	t.began = true
	t.exitingPath = exiting.ResourcePath

	var enteringView view.View
	if entering != nil {
		enteringView = entering.View
		t.enteringPath = entering.ResourcePath
	}

	c.disableInteraction()
	defer c.enableInteraction()

	c.notifyReceivers("BeforePop", func(r Receiver) { r.BeforePop(enteringView, exiting.View, args) })

	if err := exiting.View.BeforeExit(ctx, false, args); err != nil {
		return fmt.Errorf("before-exit of %s on container %s: %w", t.exitingPath, c.name, err)
	}
	if enteringView != nil {
		if err := enteringView.BeforeEnter(ctx, false, args); err != nil {
			return fmt.Errorf("before-enter of %s on container %s: %w", t.enteringPath, c.name, err)
		}
	}

	if err := c.runPhase(ctx, exiting.View, false, args, animation.Exit, playAnimation); err != nil {
		return fmt.Errorf("exit phase of %s on container %s: %w", t.exitingPath, c.name, err)
	}
	if enteringView != nil {
		if err := c.runPhase(ctx, enteringView, false, args, animation.Enter, playAnimation); err != nil {
			return fmt.Errorf("enter phase of %s on container %s: %w", t.enteringPath, c.name, err)
		}
	}

	c.mu.Lock()
	last := len(c.stack) - 1
	c.stack[last] = nil
	c.stack = c.stack[:last]
	c.mu.Unlock()
	clearFlag()

	if err := exiting.View.AfterExit(ctx, false, args); err != nil {
		logging.Error("Container", err, "After-exit of %s failed on container %s", t.exitingPath, c.name)
	}
	if enteringView != nil {
		if err := enteringView.AfterEnter(ctx, false, args); err != nil {
			logging.Error("Container", err, "After-enter of %s failed on container %s", t.enteringPath, c.name)
		}
	}

	c.notifyReceivers("AfterPop", func(r Receiver) { r.AfterPop(enteringView, exiting.View, args) })

	c.release(ctx, exiting)

	// The revealed element is the stable top again.
	c.setStacked(true)

	logging.Debug("Container", "Popped %s from container %s (depth=%d)", t.exitingPath, c.name, c.Len())
	return nil
}
