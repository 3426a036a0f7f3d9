// Package shell provides the interactive command loop for driving
// navigation containers from a terminal.
//
// The shell connects to a running system, reads commands through a
// readline instance with tab completion and persistent history, and
// executes them against the registered containers. It is the manual
// counterpart to the scenario runner: the same push, pop and
// bring-to-front operations, issued one at a time by a person poking
// at stack behavior.
//
// # Quick Start
//
//	logger := shell.NewLogger(false, true)
//	sh := shell.NewShell(sys, logger)
//	if err := sh.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Command System
//
// Commands live in the commands subpackage and are self-contained units
// implementing the Command interface. Each command declares its usage,
// description and aliases; the registry resolves both names and aliases
// at dispatch time.
//
// Available commands:
//   - help (?): command documentation and usage
//   - push: push a view onto a container stack
//   - pop: pop the front view off a container stack
//   - front (btf): bring an already stacked view to the front
//   - find: locate the most recent stack entry with a path
//   - stack (ls): display a container's current stack
//   - pool (no alias): display a container's pooled views
//   - containers (ps): list all registered containers
//   - watch: toggle transition event display
//   - exit (quit, q): graceful session termination
//
// # Transition Watching
//
// The shell subscribes to the system's transition events for its whole
// lifetime. While watching is enabled the background listener interleaves
// finished transitions with the prompt, pausing readline for each event
// line so output stays clean. The prompt shows a [watch] indicator while
// the listener is displaying events.
//
// # Completion
//
// Tab completion is dynamic where it matters: container names come from
// the live registry and view paths are gathered from current stacks and
// pools, so completions track the session as it evolves.
package shell
