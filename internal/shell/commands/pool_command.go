package commands

import (
	"context"
)

// PoolCommand inspects the view pool of a container.
type PoolCommand struct {
	*BaseCommand
}

// NewPoolCommand creates a new pool command.
func NewPoolCommand(sys SystemInterface, output OutputWriter) *PoolCommand {
	return &PoolCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute prints the pooled view counts per resource path.
func (p *PoolCommand) Execute(ctx context.Context, args []string) error {
	args, err := p.parseArgs(args, 1, p.Usage())
	if err != nil {
		return err
	}

	c, err := p.resolveContainer(args[0])
	if err != nil {
		return err
	}

	pl := c.Pool()
	paths := pl.Paths()
	if len(paths) == 0 {
		p.output.OutputLine("%s: pool is empty", c.Name())
		return nil
	}

	p.output.OutputLine("%s (%d pooled views):", c.Name(), pl.Size())
	for _, path := range paths {
		p.output.OutputLine("  %s: %d", path, pl.Len(path))
	}
	return nil
}

// Usage returns the usage string.
func (p *PoolCommand) Usage() string {
	return "pool <container>"
}

// Description returns the command description.
func (p *PoolCommand) Description() string {
	return "Print the pooled view counts of a container per resource path"
}

// Aliases returns command aliases.
func (p *PoolCommand) Aliases() []string {
	return []string{}
}
