// Package scenario loads and executes YAML-defined navigation
// sequences.
//
// A scenario names a list of steps, each a navigation command (push,
// pop, bringToFront) against a named container, optionally with an
// expectation on the outcome: success or failure, error message
// fragments, and the resulting stack. Scenario-level vars interpolate
// into step paths and args via {{ var }} placeholders.
//
// # File Format
//
//	name: basic-navigation
//	vars:
//	  user: ann
//	steps:
//	  - id: open-home
//	    op: push
//	    container: screen
//	    path: home
//	    expected:
//	      success: true
//	      stack: [home]
//	  - id: open-profile
//	    op: push
//	    container: screen
//	    path: profile/{{ user }}
//	    args:
//	      source: scenario
//	  - id: back
//	    op: pop
//	    container: screen
//	    expected:
//	      success: true
//	      top: home
//
// The runner executes steps in order and halts the run at the first
// failed step. Results carry a unique run ID and per-step outcomes for
// reporting.
package scenario
