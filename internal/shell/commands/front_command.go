package commands

import (
	"context"
)

// FrontCommand brings an existing stack entry to the top.
type FrontCommand struct {
	*BaseCommand
}

// NewFrontCommand creates a new front command.
func NewFrontCommand(sys SystemInterface, output OutputWriter) *FrontCommand {
	return &FrontCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute promotes the most recent entry with the given path and prints
// the resulting stack.
func (f *FrontCommand) Execute(ctx context.Context, args []string) error {
	args, err := f.parseArgs(args, 2, f.Usage())
	if err != nil {
		return err
	}

	c, err := f.resolveContainer(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	ignoreFront := false
	var rest []string
	for _, arg := range args[2:] {
		if arg == "--ignore-front" {
			ignoreFront = true
			continue
		}
		rest = append(rest, arg)
	}

	if err := c.BringToFront(ctx, path, ignoreFront, parseViewArgs(rest)); err != nil {
		return err
	}

	f.printStack(c)
	return nil
}

// Usage returns the usage string.
func (f *FrontCommand) Usage() string {
	return "front <container> <path> [key=value]... [--ignore-front]"
}

// Description returns the command description.
func (f *FrontCommand) Description() string {
	return "Bring the most recent entry with the given path to the top"
}

// Aliases returns command aliases.
func (f *FrontCommand) Aliases() []string {
	return []string{"btf"}
}
