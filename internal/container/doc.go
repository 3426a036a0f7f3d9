// Package container implements the navigation stack engine.
//
// A Container owns one ordered stack of views and three navigation
// commands: Push, Pop and BringToFront, each in a blocking and an async
// form. Every command runs the same transition sequence: receivers are
// notified, the exit side runs its hooks and animation strictly before
// the enter side, the stack mutates only after both phases complete, and
// postprocessing (After* hooks, receiver notification, release of a
// removed view) happens after the container is already idle again.
//
// Mutual exclusion is a flag, not a lock: a command against a container
// that is mid-transition fails with ErrTransitionBusy and performs no
// mutation. Navigation commands originate from user input, so a stale
// command is rejected rather than queued.
//
// A push decides whether the covered element survives from the stacked
// flag recorded by the previous push, not from its own options; its own
// options record the flag for the next push. Removed views go through
// their before-release hook and then to the container's pool, which
// retains or disposes them per the reference's pooling policy.
package container
