package commands

import (
	"context"
	"strings"

	"navstack/internal/view"
)

// PushCommand pushes a resource path onto a container stack.
type PushCommand struct {
	*BaseCommand
}

// NewPushCommand creates a new push command.
func NewPushCommand(sys SystemInterface, output OutputWriter) *PushCommand {
	return &PushCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute pushes a path onto the named container and prints the
// resulting stack.
func (p *PushCommand) Execute(ctx context.Context, args []string) error {
	args, err := p.parseArgs(args, 2, p.Usage())
	if err != nil {
		return err
	}

	c, err := p.resolveContainer(args[0])
	if err != nil {
		return err
	}
	path := args[1]

	opts := view.DefaultPushOptions()
	var rest []string
	for _, arg := range args[2:] {
		switch {
		case arg == "--no-stack":
			opts.Stack = false
		case arg == "--no-animate":
			opts.PlayAnimation = false
		case arg == "--async":
			opts.LoadAsync = true
		case strings.HasPrefix(arg, "--pool="):
			policy, err := view.ParsePoolingPolicy(strings.TrimPrefix(arg, "--pool="))
			if err != nil {
				return err
			}
			opts.Pooling = policy
		default:
			rest = append(rest, arg)
		}
	}

	if err := c.Push(ctx, path, opts, parseViewArgs(rest)); err != nil {
		return err
	}

	p.printStack(c)
	return nil
}

// Usage returns the usage string.
func (p *PushCommand) Usage() string {
	return "push <container> <path> [key=value]... [--no-stack] [--no-animate] [--async] [--pool=enabled|disabled]"
}

// Description returns the command description.
func (p *PushCommand) Description() string {
	return "Push a resource path onto a container stack"
}

// Aliases returns command aliases.
func (p *PushCommand) Aliases() []string {
	return []string{}
}
