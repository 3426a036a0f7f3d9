package container

import "time"

// Outcome classifies how a transition ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeFailed    Outcome = "failed"
)

// TransitionEvent describes one finished transition.
//
// Events are emitted only for operations that actually entered the
// transition state machine; precondition rejections (busy, empty stack,
// invalid argument, lookup misses) are diagnostics, not transitions.
type TransitionEvent struct {
	// ID is the unique identifier of the transition.
	ID string

	// Container is the name of the container the transition ran on.
	Container string

	// Op is the navigation operation.
	Op Op

	// EnteringPath is the resource path of the entering view, if any.
	EnteringPath string

	// ExitingPath is the resource path of the exiting view, if any.
	ExitingPath string

	// Outcome reports whether the transition completed or failed.
	Outcome Outcome

	// Err carries the failure, nil on completion.
	Err error

	// StartedAt is when the operation was issued.
	StartedAt time.Time

	// Duration is the wall time from issue to completion.
	Duration time.Duration
}

// EventSink receives transition events from a container.
//
// The sink is invoked on the transition's own goroutine after the
// container has settled; implementations must not block.
type EventSink interface {
	TransitionFinished(ev TransitionEvent)
}

// SinkFunc adapts a function to the EventSink interface.
type SinkFunc func(ev TransitionEvent)

// TransitionFinished implements EventSink.
func (f SinkFunc) TransitionFinished(ev TransitionEvent) {
	f(ev)
}
