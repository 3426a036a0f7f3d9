package commands

import (
	"context"
)

// StackCommand prints the current stack of a container.
type StackCommand struct {
	*BaseCommand
}

// NewStackCommand creates a new stack command.
func NewStackCommand(sys SystemInterface, output OutputWriter) *StackCommand {
	return &StackCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute prints the stack of the named container, bottom first.
func (s *StackCommand) Execute(ctx context.Context, args []string) error {
	args, err := s.parseArgs(args, 1, s.Usage())
	if err != nil {
		return err
	}

	c, err := s.resolveContainer(args[0])
	if err != nil {
		return err
	}

	s.printStack(c)
	if c.InTransition() {
		s.output.OutputLine("  (transition in progress)")
	}
	return nil
}

// Usage returns the usage string.
func (s *StackCommand) Usage() string {
	return "stack <container>"
}

// Description returns the command description.
func (s *StackCommand) Description() string {
	return "Print the stack of a container, bottom first"
}

// Aliases returns command aliases.
func (s *StackCommand) Aliases() []string {
	return []string{"ls"}
}
