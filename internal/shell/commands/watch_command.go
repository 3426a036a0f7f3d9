package commands

import (
	"context"
	"fmt"
	"strings"
)

// WatchCommand toggles live transition event display.
type WatchCommand struct {
	*BaseCommand
	// setWatch enables or disables the event display in the shell loop
	setWatch func(bool)
	// watching reports the current display state
	watching func() bool
}

// NewWatchCommand creates a new watch command. The callbacks connect
// the command to the shell's event listener.
func NewWatchCommand(sys SystemInterface, output OutputWriter, setWatch func(bool), watching func() bool) *WatchCommand {
	return &WatchCommand{
		BaseCommand: NewBaseCommand(sys, output),
		setWatch:    setWatch,
		watching:    watching,
	}
}

// Execute switches transition event display on or off, or reports the
// current state when called without arguments.
func (w *WatchCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		state := "off"
		if w.watching() {
			state = "on"
		}
		w.output.OutputLine("transition watch is %s", state)
		return nil
	}

	switch strings.ToLower(args[0]) {
	case "on":
		w.setWatch(true)
		w.output.OutputLine("transition watch enabled")
	case "off":
		w.setWatch(false)
		w.output.OutputLine("transition watch disabled")
	default:
		return fmt.Errorf("usage: %s", w.Usage())
	}
	return nil
}

// Usage returns the usage string.
func (w *WatchCommand) Usage() string {
	return "watch [on|off]"
}

// Description returns the command description.
func (w *WatchCommand) Description() string {
	return "Toggle live display of transition events"
}

// Aliases returns command aliases.
func (w *WatchCommand) Aliases() []string {
	return []string{}
}
