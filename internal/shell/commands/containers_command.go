package commands

import (
	"context"
)

// ContainersCommand lists the registered containers.
type ContainersCommand struct {
	*BaseCommand
}

// NewContainersCommand creates a new containers command.
func NewContainersCommand(sys SystemInterface, output OutputWriter) *ContainersCommand {
	return &ContainersCommand{BaseCommand: NewBaseCommand(sys, output)}
}

// Execute lists every registered container with its stack depth and
// current top.
func (c *ContainersCommand) Execute(ctx context.Context, args []string) error {
	containers := c.sys.Containers()
	if len(containers) == 0 {
		c.output.OutputLine("no containers registered")
		return nil
	}

	for _, cont := range containers {
		top := "-"
		if ref, ok := cont.Top(); ok {
			top = ref.ResourcePath
		}
		state := ""
		if cont.InTransition() {
			state = " [in transition]"
		}
		c.output.OutputLine("%s: %d entries, top %s%s", cont.Name(), cont.Len(), top, state)
	}
	return nil
}

// Usage returns the usage string.
func (c *ContainersCommand) Usage() string {
	return "containers"
}

// Description returns the command description.
func (c *ContainersCommand) Description() string {
	return "List registered containers with their stack depth and top entry"
}

// Aliases returns command aliases.
func (c *ContainersCommand) Aliases() []string {
	return []string{"ps"}
}
