// Package animation defines the transition animator boundary between the
// navigation engine and the presentation layer.
//
// The engine never drives animation playback itself; it asks an Animator to
// play an enter or exit animation for a view and awaits completion. Views
// that implement view.Animatable bypass the container's animator entirely.
// The package ships a no-op animator, a fixed-duration animator for tests
// and CLI simulation, and a function adapter.
package animation
