// Package loader resolves resource paths to view instances.
//
// Loader is the boundary a container calls when it needs a view built.
// Registry implements it by dispatching to per-path factories with an
// optional fallback. Catalog supplies factories with optional YAML
// definitions (title, pooling override, default args) read lazily from a
// directory tree and cached; Watcher keeps that cache fresh by
// invalidating entries when files change on disk.
package loader
