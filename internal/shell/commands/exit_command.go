package commands

import (
	"context"
	"fmt"
)

// ExitCommand handles shell exit.
type ExitCommand struct {
	*BaseCommand
}

// NewExitCommand creates a new exit command.
func NewExitCommand(sys SystemInterface, output OutputWriter) *ExitCommand {
	return &ExitCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute exits the shell.
func (e *ExitCommand) Execute(ctx context.Context, args []string) error {
	// Special "exit" error signals the shell loop to shut down
	return fmt.Errorf("exit")
}

// Usage returns the usage string.
func (e *ExitCommand) Usage() string {
	return "exit"
}

// Description returns the command description.
func (e *ExitCommand) Description() string {
	return "Exit the shell"
}

// Aliases returns command aliases.
func (e *ExitCommand) Aliases() []string {
	return []string{"quit", "q"}
}
