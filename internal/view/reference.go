package view

import "fmt"

// PoolingPolicy governs whether a view removed from the stack is retained
// for reuse or destroyed.
type PoolingPolicy int

const (
	// PoolUseContainerDefault defers the decision to the owning
	// container's default pooling setting.
	PoolUseContainerDefault PoolingPolicy = iota

	// PoolEnabled retains the view in the pool regardless of the
	// container default.
	PoolEnabled

	// PoolDisabled destroys the view regardless of the container default.
	PoolDisabled
)

// String makes PoolingPolicy satisfy the fmt.Stringer interface.
func (p PoolingPolicy) String() string {
	switch p {
	case PoolUseContainerDefault:
		return "default"
	case PoolEnabled:
		return "enabled"
	case PoolDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ParsePoolingPolicy converts a configuration string into a
// PoolingPolicy. The empty string means the container default.
func ParsePoolingPolicy(s string) (PoolingPolicy, error) {
	switch s {
	case "", "default":
		return PoolUseContainerDefault, nil
	case "enabled":
		return PoolEnabled, nil
	case "disabled":
		return PoolDisabled, nil
	default:
		return PoolUseContainerDefault, fmt.Errorf("unknown pooling policy %q", s)
	}
}

// Reference is one entry on a container's stack: a loaded view instance
// bound to the resource path it was loaded from and the pooling policy
// chosen when it was pushed.
//
// A Reference is owned exclusively by the stack that holds it. It is removed
// from the stack before being handed to the pool or disposed, and is never
// shared between stacks.
type Reference struct {
	View         View
	ResourcePath string
	Pooling      PoolingPolicy
}

// NewReference creates a stack entry for a loaded view.
func NewReference(v View, resourcePath string, pooling PoolingPolicy) *Reference {
	return &Reference{
		View:         v,
		ResourcePath: resourcePath,
		Pooling:      pooling,
	}
}
