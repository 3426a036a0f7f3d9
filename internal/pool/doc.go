// Package pool implements the view recycling layer: a per-container cache
// of released view instances keyed by resource path.
//
// Pooling is the engine's primary performance lever for repeated navigation
// to the same destination: a pooled hit skips the loader completely. The
// pooling decision for each released reference resolves its own policy
// override against the container default; non-pooled views are disposed.
package pool
