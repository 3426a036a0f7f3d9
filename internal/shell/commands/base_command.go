package commands

import (
	"fmt"
	"strings"

	"navstack/internal/container"
	"navstack/internal/view"
)

// BaseCommand provides common functionality for all shell commands.
// It encapsulates shared dependencies and utility methods that most
// commands need, reducing code duplication and ensuring consistent
// behavior across the command system.
type BaseCommand struct {
	sys    SystemInterface // container registry for lookups
	output OutputWriter    // user-facing output
}

// OutputWriter defines the interface for user-facing command output.
type OutputWriter interface {
	// OutputLine prints a formatted line of command output.
	OutputLine(format string, args ...interface{})
	// Error prints a formatted error message.
	Error(format string, args ...interface{})
}

// NewBaseCommand creates a new base command with the specified
// dependencies.
func NewBaseCommand(sys SystemInterface, output OutputWriter) *BaseCommand {
	return &BaseCommand{
		sys:    sys,
		output: output,
	}
}

// parseArgs validates command arguments against minimum requirements
// and generates a usage message when validation fails.
func (b *BaseCommand) parseArgs(args []string, minArgs int, usage string) ([]string, error) {
	if len(args) < minArgs {
		return nil, fmt.Errorf("usage: %s", usage)
	}
	return args, nil
}

// resolveContainer looks up a container by name with a consistent error
// message.
func (b *BaseCommand) resolveContainer(name string) (*container.Container, error) {
	c, ok := b.sys.ByName(name)
	if !ok {
		return nil, fmt.Errorf("container %s is not registered; try 'containers'", name)
	}
	return c, nil
}

// parseViewArgs parses trailing key=value arguments into view args.
// Arguments without an equals sign are ignored by the caller's flag
// handling before this is reached.
func parseViewArgs(args []string) view.Args {
	parsed := make(view.Args)
	for _, arg := range args {
		if strings.Contains(arg, "=") {
			parts := strings.SplitN(arg, "=", 2)
			if len(parts) == 2 {
				parsed[parts[0]] = parts[1]
			}
		}
	}
	if len(parsed) == 0 {
		return nil
	}
	return parsed
}

// printStack prints the container stack bottom first, marking the top
// entry.
func (b *BaseCommand) printStack(c *container.Container) {
	paths := c.Paths()
	if len(paths) == 0 {
		b.output.OutputLine("%s: stack is empty", c.Name())
		return
	}

	b.output.OutputLine("%s (%d entries, top last):", c.Name(), len(paths))
	for i, path := range paths {
		marker := " "
		if i == len(paths)-1 {
			marker = "*"
		}
		b.output.OutputLine("  %s [%d] %s", marker, i, path)
	}
}
