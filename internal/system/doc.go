// Package system owns the process-scoped container indices.
//
// A System maps container names and scene nodes to container instances.
// It is an explicit object rather than package state, so independent
// systems can coexist in one process and tests get a clean instance
// each. Containers register on construction and unregister on teardown;
// unregistering scrubs the name index, node attachments and cached node
// resolutions in one step.
//
// Node lookups walk the parent chain from the queried node to the
// nearest attached ancestor and cache the result per starting node.
// Reparenting invalidates that assumption, so ByNode takes a useCache
// flag to force a fresh walk. Lookup misses are diagnostics, never
// failures.
//
// The System also acts as the transition event hub: wired as each
// container's EventSink, it fans events out to subscriber channels
// without blocking the transition that produced them.
package system
