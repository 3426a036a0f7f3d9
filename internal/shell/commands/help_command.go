package commands

import (
	"context"
	"strings"
)

// HelpCommand shows available commands and usage information.
type HelpCommand struct {
	*BaseCommand
	registry *Registry
}

// NewHelpCommand creates a new help command.
func NewHelpCommand(sys SystemInterface, output OutputWriter, registry *Registry) *HelpCommand {
	return &HelpCommand{
		BaseCommand: NewBaseCommand(sys, output),
		registry:    registry,
	}
}

// Execute shows help information.
func (h *HelpCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		h.showGeneralHelp()
		return nil
	}

	commandName := strings.ToLower(args[0])
	if commandName == "?" {
		commandName = "help"
	}

	command, exists := h.registry.Get(commandName)
	if !exists {
		h.output.Error("Unknown command: %s", commandName)
		h.output.OutputLine("Use 'help' to see all available commands.")
		return nil
	}

	h.showCommandHelp(commandName, command)
	return nil
}

// showGeneralHelp displays the general help message.
func (h *HelpCommand) showGeneralHelp() {
	h.output.OutputLine("Available commands:")
	h.output.OutputLine("  help, ?                      - Show this help message")
	h.output.OutputLine("  push <container> <path>      - Push a resource path onto a container")
	h.output.OutputLine("  pop <container>              - Pop the top entry of a container")
	h.output.OutputLine("  front <container> <path>     - Bring an existing entry to the top")
	h.output.OutputLine("  find <container> <path>      - Locate the most recent entry with a path")
	h.output.OutputLine("  stack <container>            - Print a container stack, bottom first")
	h.output.OutputLine("  pool <container>             - Print pooled view counts per path")
	h.output.OutputLine("  containers                   - List registered containers")
	h.output.OutputLine("  watch [on|off]               - Toggle live transition event display")
	h.output.OutputLine("  exit, quit                   - Exit the shell")
	h.output.OutputLine("")
	h.output.OutputLine("Keyboard shortcuts:")
	h.output.OutputLine("  TAB                          - Auto-complete commands and arguments")
	h.output.OutputLine("  Up/Down (arrow keys)         - Navigate command history")
	h.output.OutputLine("  Ctrl+R                       - Search command history")
	h.output.OutputLine("  Ctrl+C                       - Cancel current line")
	h.output.OutputLine("  Ctrl+D                       - Exit shell")
	h.output.OutputLine("")
	h.output.OutputLine("Examples:")
	h.output.OutputLine("  push screen home")
	h.output.OutputLine("  push screen profile/42 from=home --no-animate")
	h.output.OutputLine("  push modal dialog/confirm --no-stack --pool=disabled")
	h.output.OutputLine("  front screen home --ignore-front")
	h.output.OutputLine("  pop screen")
}

// showCommandHelp displays help for a specific command.
func (h *HelpCommand) showCommandHelp(commandName string, cmd Command) {
	h.output.OutputLine("Command: %s", commandName)
	h.output.OutputLine("Description: %s", cmd.Description())
	h.output.OutputLine("Usage: %s", cmd.Usage())

	aliases := cmd.Aliases()
	if len(aliases) > 0 {
		h.output.OutputLine("Aliases: %v", aliases)
	}
}

// Usage returns the usage string.
func (h *HelpCommand) Usage() string {
	return "help [command]"
}

// Description returns the command description.
func (h *HelpCommand) Description() string {
	return "Show help information for commands"
}

// Aliases returns command aliases.
func (h *HelpCommand) Aliases() []string {
	return []string{"?"}
}
