package container

import (
	"fmt"

	"navstack/internal/view"
	"navstack/pkg/logging"
)

// Receiver observes transitions at fixed points. Receivers are notified
// in registration order; the entering or exiting view is nil when the
// operation has no view on that side (first push, pop to empty).
//
// Bring-to-front is observed through the push points, with the promoted
// view as entering.
type Receiver interface {
	BeforePush(entering, exiting view.View, args view.Args)
	AfterPush(entering, exiting view.View, args view.Args)
	BeforePop(entering, exiting view.View, args view.Args)
	AfterPop(entering, exiting view.View, args view.Args)
}

// BaseReceiver provides no-op implementations of Receiver so observers
// can embed it and override only the points they care about.
type BaseReceiver struct{}

func (BaseReceiver) BeforePush(entering, exiting view.View, args view.Args) {}
func (BaseReceiver) AfterPush(entering, exiting view.View, args view.Args)  {}
func (BaseReceiver) BeforePop(entering, exiting view.View, args view.Args)  {}
func (BaseReceiver) AfterPop(entering, exiting view.View, args view.Args)   {}

// notifyReceivers invokes fn for every registered receiver in order. A
// panicking receiver is recovered and logged; it never aborts the
// transition.
func (c *Container) notifyReceivers(point string, fn func(Receiver)) {
	c.mu.RLock()
	receivers := make([]Receiver, len(c.receivers))
	copy(receivers, c.receivers)
	c.mu.RUnlock()

	for _, r := range receivers {
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					logging.Error("Container", fmt.Errorf("%v", rec),
						"Receiver panicked in %s on container %s", point, c.name)
				}
			}()
			fn(r)
		}()
	}
}
