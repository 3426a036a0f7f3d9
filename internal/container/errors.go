package container

import "errors"

// Sentinel errors returned by navigation commands. Callers test them
// with errors.Is; commands that fail with one of these never leave the
// container in a partially transitioned state.
var (
	// ErrInvalidArgument reports an empty resource path.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTransitionBusy reports a command issued while another transition
	// is in flight. The command is rejected, never queued.
	ErrTransitionBusy = errors.New("transition in progress")

	// ErrEmptyStack reports a pop on an empty stack.
	ErrEmptyStack = errors.New("stack is empty")

	// ErrNotFound reports a lookup that matched nothing, such as a
	// bring-to-front for a resource path not on the stack.
	ErrNotFound = errors.New("not found")

	// ErrLoadFailed reports a loader failure during push. The stack,
	// transition flag and interaction state are rolled back.
	ErrLoadFailed = errors.New("load failed")

	// ErrContainerClosed reports a command against a closed container.
	ErrContainerClosed = errors.New("container closed")
)

// IsBusy checks if an error indicates a rejected command against a
// mid-transition container.
func IsBusy(err error) bool {
	return errors.Is(err, ErrTransitionBusy)
}

// IsEmptyStack checks if an error indicates a pop on an empty stack.
func IsEmptyStack(err error) bool {
	return errors.Is(err, ErrEmptyStack)
}

// IsNotFound checks if an error indicates a failed lookup.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
