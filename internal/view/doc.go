// Package view defines the navigable unit managed by navigation containers:
// the View interface with its enter/exit lifecycle hooks, the optional
// capability interfaces a view may additionally implement, and the small
// value types shared across the engine (stack references, pooling policies,
// push options, call arguments).
//
// # Lifecycle
//
// Every view implements the six core hooks (BeforeEnter, Enter, AfterEnter,
// BeforeExit, Exit, AfterExit). The container invokes them in a fixed order
// during each transition and awaits each one, so any hook may perform
// asynchronous work. BaseView provides no-op implementations for embedding.
//
// # Capabilities
//
// Behavior beyond the core lifecycle is opt-in through small interfaces the
// container detects with type assertions:
//
//   - Loadable: hook after the loader resolves the instance
//   - Releasable: hook before pooling or disposal
//   - Animatable: view-supplied enter/exit animations
//   - Reusable: activate/deactivate hooks around pool reuse
//   - Disposable: resource teardown on destruction
//
// Concrete views compose exactly the capabilities they need instead of
// inheriting through a base-class chain.
package view
