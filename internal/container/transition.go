package container

import (
	"context"
	"time"

	"github.com/google/uuid"

	"navstack/internal/animation"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Op identifies a navigation operation.
type Op string

const (
	OpPush         Op = "push"
	OpPop          Op = "pop"
	OpBringToFront Op = "bring-to-front"
)

// Transition is the awaitable handle returned by the asynchronous
// navigation commands. Fire-and-forget callers simply discard it; tests
// and orchestration code use Wait or Done to observe completion and the
// final error.
type Transition struct {
	id        string
	op        Op
	container string
	startedAt time.Time

	// Written by the transition goroutine before done is closed.
	enteringPath string
	exitingPath  string
	began        bool
	err          error

	done chan struct{}
}

func newTransition(op Op, container string) *Transition {
	return &Transition{
		id:        uuid.New().String(),
		op:        op,
		container: container,
		startedAt: time.Now(),
		done:      make(chan struct{}),
	}
}

// ID returns the unique identifier of this transition.
func (t *Transition) ID() string {
	return t.id
}

// Op returns the navigation operation this transition performs.
func (t *Transition) Op() Op {
	return t.op
}

// Container returns the name of the container the transition runs on.
func (t *Transition) Container() string {
	return t.container
}

// Done returns a channel closed when the transition has completed.
func (t *Transition) Done() <-chan struct{} {
	return t.done
}

// Err returns the transition outcome. It returns nil while the
// transition is still running.
func (t *Transition) Err() error {
	select {
	case <-t.done:
		return t.err
	default:
		return nil
	}
}

// Wait blocks until the transition completes or ctx expires. The
// transition itself keeps running if ctx expires first; no mid-flight
// cancellation is supported.
func (t *Transition) Wait(ctx context.Context) error {
	select {
	case <-t.done:
		return t.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finish completes the transition handle, fires the caller's completion
// callback and emits the transition event.
func (c *Container) finish(t *Transition, onComplete func(error), err error) {
	t.err = err
	close(t.done)

	if onComplete != nil {
		onComplete(err)
	}

	// Precondition rejections never entered the state machine and emit
	// no event.
	if !t.began {
		return
	}

	outcome := OutcomeCompleted
	if err != nil {
		outcome = OutcomeFailed
	}
	logging.Debug("Container", "Transition %s (%s) %s on container %s in %s",
		t.id, t.op, outcome, c.name, time.Since(t.startedAt))

	if c.sink == nil {
		return
	}
	c.sink.TransitionFinished(TransitionEvent{
		ID:           t.id,
		Container:    c.name,
		Op:           t.op,
		EnteringPath: t.enteringPath,
		ExitingPath:  t.exitingPath,
		Outcome:      outcome,
		Err:          err,
		StartedAt:    t.startedAt,
		Duration:     time.Since(t.startedAt),
	})
}

// runPhase executes one side of a transition: the lifecycle hook first,
// then the animation for that direction.
func (c *Container) runPhase(ctx context.Context, v view.View, push bool, args view.Args, dir animation.Direction, animate bool) error {
	var err error
	if dir == animation.Exit {
		err = v.Exit(ctx, push, args)
	} else {
		err = v.Enter(ctx, push, args)
	}
	if err != nil {
		return err
	}

	if !animate {
		return nil
	}
	return c.animate(ctx, v, dir)
}

// animate plays the view's own animation when it implements Animatable,
// falling back to the container animator, else completes immediately.
func (c *Container) animate(ctx context.Context, v view.View, dir animation.Direction) error {
	if a, ok := v.(view.Animatable); ok {
		if dir == animation.Exit {
			return a.AnimateExit(ctx)
		}
		return a.AnimateEnter(ctx)
	}
	if c.animator != nil {
		return c.animator.Play(ctx, v, dir)
	}
	return nil
}

// load resolves a view through the loader. With async set the loader
// runs on its own goroutine and load returns when it finishes or ctx
// expires.
func (c *Container) load(ctx context.Context, resourcePath string, async bool) (view.View, error) {
	if !async {
		return c.loader.Load(ctx, resourcePath)
	}

	type loadResult struct {
		v   view.View
		err error
	}
	ch := make(chan loadResult, 1)
	go func() {
		v, err := c.loader.Load(ctx, resourcePath)
		ch <- loadResult{v: v, err: err}
	}()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
