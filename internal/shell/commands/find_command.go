package commands

import (
	"context"
)

// FindCommand locates the most recent stack entry with a resource path.
type FindCommand struct {
	*BaseCommand
}

// NewFindCommand creates a new find command.
func NewFindCommand(sys SystemInterface, output OutputWriter) *FindCommand {
	return &FindCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute reports the stack index of the most recent entry with the
// given path, searching top down.
func (f *FindCommand) Execute(ctx context.Context, args []string) error {
	args, err := f.parseArgs(args, 2, f.Usage())
	if err != nil {
		return err
	}

	c, err := f.resolveContainer(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	index, ok := c.FindMostRecent(path)
	if !ok {
		f.output.OutputLine("%s: no entry with path %s", c.Name(), path)
		return nil
	}

	depth := c.Len() - 1 - index
	f.output.OutputLine("%s: %s at index %d (%d from the top)", c.Name(), path, index, depth)
	return nil
}

// Usage returns the usage string.
func (f *FindCommand) Usage() string {
	return "find <container> <path>"
}

// Description returns the command description.
func (f *FindCommand) Description() string {
	return "Locate the most recent stack entry with the given path"
}

// Aliases returns command aliases.
func (f *FindCommand) Aliases() []string {
	return []string{}
}
