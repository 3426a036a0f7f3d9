package commands

import (
	"context"
)

// PopCommand pops the top entry of a container stack.
type PopCommand struct {
	*BaseCommand
}

// NewPopCommand creates a new pop command.
func NewPopCommand(sys SystemInterface, output OutputWriter) *PopCommand {
	return &PopCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute pops the named container and prints the resulting stack.
func (p *PopCommand) Execute(ctx context.Context, args []string) error {
	args, err := p.parseArgs(args, 1, p.Usage())
	if err != nil {
		return err
	}

	c, err := p.resolveContainer(args[0])
	if err != nil {
		return err
	}

	animate := true
	var rest []string
	for _, arg := range args[1:] {
		if arg == "--no-animate" {
			animate = false
			continue
		}
		rest = append(rest, arg)
	}

	if err := c.Pop(ctx, animate, parseViewArgs(rest)); err != nil {
		return err
	}

	p.printStack(c)
	return nil
}

// Usage returns the usage string.
func (p *PopCommand) Usage() string {
	return "pop <container> [key=value]... [--no-animate]"
}

// Description returns the command description.
func (p *PopCommand) Description() string {
	return "Pop the top entry of a container stack"
}

// Aliases returns command aliases.
func (p *PopCommand) Aliases() []string {
	return []string{}
}
