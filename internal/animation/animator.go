package animation

import (
	"context"
	"time"

	"navstack/internal/view"
)

// Direction identifies which side of a transition an animation plays for.
type Direction int

const (
	// Enter animates a view becoming the visible top.
	Enter Direction = iota
	// Exit animates a view leaving the visible top.
	Exit
)

// String makes Direction satisfy the fmt.Stringer interface.
func (d Direction) String() string {
	switch d {
	case Enter:
		return "enter"
	case Exit:
		return "exit"
	default:
		return "unknown"
	}
}

// Animator plays a transition animation for a view and returns once the
// animation has completed. Implementations belong to the presentation
// layer; the engine only depends on this start/await contract. A nil
// Animator on a container means transitions complete immediately.
type Animator interface {
	Play(ctx context.Context, v view.View, d Direction) error
}

// Nop is an Animator whose animations complete immediately.
type Nop struct{}

// Play implements the Animator interface.
func (Nop) Play(ctx context.Context, v view.View, d Direction) error {
	return nil
}

// Delay is an Animator that simulates an animation of fixed duration. It is
// used by the CLI and in tests to exercise the awaited-animation path
// without a real presentation layer.
type Delay struct {
	Duration time.Duration
}

// Play implements the Animator interface. It returns early with the context
// error if the context is cancelled mid-animation.
func (a Delay) Play(ctx context.Context, v view.View, d Direction) error {
	if a.Duration <= 0 {
		return nil
	}
	timer := time.NewTimer(a.Duration)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Func adapts a function to the Animator interface.
type Func func(ctx context.Context, v view.View, d Direction) error

// Play implements the Animator interface.
func (f Func) Play(ctx context.Context, v view.View, d Direction) error {
	return f(ctx, v, d)
}
