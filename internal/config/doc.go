// Package config provides configuration management for navstack.
//
// Configuration is loaded from a single directory containing
// navstack.yaml. The default location is ~/.config/navstack; commands
// accept a --config-path flag for a custom directory. A missing file
// yields the built-in defaults, a malformed or invalid one is an error.
//
// # File Format
//
//	logging:
//	  level: info
//	catalog:
//	  dir: ./catalog
//	  watch: true
//	  debounce: 500ms
//	containers:
//	  - name: screen
//	    defaultPooling: true
//	    animation: 150ms
//	  - name: modal
//	    lockInteraction: true
//
// Each containers entry declares one navigation container; screen,
// modal and window layers are configuration entries of the same engine,
// not distinct types. The catalog section points at the view definition
// directory consumed by the loader package.
package config
