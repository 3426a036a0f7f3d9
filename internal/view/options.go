package view

// PushOptions configures a single push operation. Use DefaultPushOptions to
// obtain the documented defaults and override individual fields explicitly;
// there are no implicit conversions from other types.
type PushOptions struct {
	// Stack records whether the pushed view should remain on the stack
	// beneath the view pushed after it. When false, the next push removes
	// and releases this view; the removal happens during the following
	// transition, not this one.
	Stack bool

	// PlayAnimation controls whether enter/exit animations run. Lifecycle
	// hooks run regardless.
	PlayAnimation bool

	// LoadAsync resolves the view on a separate goroutine. The transition
	// awaits the result either way; this only keeps a slow loader from
	// blocking the calling goroutine's stack frame.
	LoadAsync bool

	// Pooling overrides the container's default pooling policy for the
	// pushed view.
	Pooling PoolingPolicy

	// OnComplete, when set, is invoked exactly once when the push
	// finishes, with nil on success or the transition error.
	OnComplete func(err error)
}

// DefaultPushOptions returns the standard push configuration: the pushed
// view stays stacked beneath its successor, animations play, loading is
// synchronous, and pooling follows the container default.
func DefaultPushOptions() PushOptions {
	return PushOptions{
		Stack:         true,
		PlayAnimation: true,
		LoadAsync:     false,
		Pooling:       PoolUseContainerDefault,
	}
}
