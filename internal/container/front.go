package container

import (
	"context"
	"fmt"

	"navstack/internal/animation"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// BringToFront promotes the most recent stack entry with the given
// resource path to the top, reordering without reloading: the view
// instance and its resource binding are preserved and nothing is
// released. The current top plays the exiting side of the transition.
//
// An entry already at the top is a silent no-op when ignoreFront is set;
// without it the entry replays its enter side. A path not on the stack
// fails with ErrNotFound and changes nothing.
func (c *Container) BringToFront(ctx context.Context, resourcePath string, ignoreFront bool, args view.Args) error {
	t := newTransition(OpBringToFront, c.name)
	c.runBringToFront(ctx, t, resourcePath, ignoreFront, args)
	return t.Err()
}

// BringToFrontAsync is the fire-and-forget form of BringToFront.
func (c *Container) BringToFrontAsync(ctx context.Context, resourcePath string, ignoreFront bool, args view.Args) *Transition {
	t := newTransition(OpBringToFront, c.name)
	go c.runBringToFront(ctx, t, resourcePath, ignoreFront, args)
	return t
}

func (c *Container) runBringToFront(ctx context.Context, t *Transition, resourcePath string, ignoreFront bool, args view.Args) {
	t.enteringPath = resourcePath
	err := c.doBringToFront(ctx, t, resourcePath, ignoreFront, args)
	c.finish(t, nil, err)
}

func (c *Container) doBringToFront(ctx context.Context, t *Transition, resourcePath string, ignoreFront bool, args view.Args) error {
	if resourcePath == "" {
		return fmt.Errorf("bring-to-front on container %s: %w", c.name, ErrInvalidArgument)
	}
	if c.isClosed() {
		return fmt.Errorf("bring-to-front of %s on container %s: %w", resourcePath, c.name, ErrContainerClosed)
	}
	if !c.inTransition.CompareAndSwap(false, true) {
		logging.Debug("Container", "Bring-to-front of %s rejected, container %s is mid-transition", resourcePath, c.name)
		return fmt.Errorf("bring-to-front of %s on container %s: %w", resourcePath, c.name, ErrTransitionBusy)
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
	idx, found := c.findMostRecentLocked(resourcePath)
	var target, exiting *view.Reference
	atTop := false
	if found {
		target = c.stack[idx]
		atTop = idx == len(c.stack)-1
		if !atTop {
			exiting = c.stack[len(c.stack)-1]
		}
	}
	c.mu.RUnlock()

	if !found {
		logging.Debug("Container", "Bring-to-front of %s on container %s: no matching entry", resourcePath, c.name)
		return fmt.Errorf("bring-to-front of %s on container %s: %w", resourcePath, c.name, ErrNotFound)
	}
	if atTop && ignoreFront {
		return nil
	}
	t.began = true

	var exitingView view.View
	if exiting != nil {
		exitingView = exiting.View
		t.exitingPath = exiting.ResourcePath
	}

	c.disableInteraction()
	defer c.enableInteraction()

	c.notifyReceivers("BeforePush", func(r Receiver) { r.BeforePush(target.View, exitingView, args) })

	if exitingView != nil {
		if err := exitingView.BeforeExit(ctx, true, args); err != nil {
			return fmt.Errorf("before-exit of %s on container %s: %w", t.exitingPath, c.name, err)
		}
	}
	if err := target.View.BeforeEnter(ctx, true, args); err != nil {
		return fmt.Errorf("before-enter of %s on container %s: %w", resourcePath, c.name, err)
	}

	if exitingView != nil {
		if err := c.runPhase(ctx, exitingView, true, args, animation.Exit, true); err != nil {
			return fmt.Errorf("exit phase of %s on container %s: %w", t.exitingPath, c.name, err)
		}
	}
	if err := c.runPhase(ctx, target.View, true, args, animation.Enter, true); err != nil {
		return fmt.Errorf("enter phase of %s on container %s: %w", resourcePath, c.name, err)
	}

	// Detach the entry and re-append it as the new top. An entry already
	// at the top stays where it is.
	if !atTop {
		c.mu.Lock()
		c.stack = append(c.stack[:idx], c.stack[idx+1:]...)
		c.stack = append(c.stack, target)
		c.mu.Unlock()
	}
	clearFlag()

	if exitingView != nil {
		if err := exitingView.AfterExit(ctx, true, args); err != nil {
			logging.Error("Container", err, "After-exit of %s failed on container %s", t.exitingPath, c.name)
		}
	}
	if err := target.View.AfterEnter(ctx, true, args); err != nil {
		logging.Error("Container", err, "After-enter of %s failed on container %s", resourcePath, c.name)
	}

	c.notifyReceivers("AfterPush", func(r Receiver) { r.AfterPush(target.View, exitingView, args) })

	// No release: both views remain on the stack. Any pending removal
	// intent from a prior push is superseded.
	c.setStacked(true)

	logging.Debug("Container", "Brought %s to front on container %s (depth=%d)", resourcePath, c.name, c.Len())
	return nil
}
