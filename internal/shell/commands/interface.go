// Package commands provides a shared interface for shell command implementations.
//
// This package defines the Command interface that all shell commands must
// implement, enabling a clean registry pattern and improved testability.
// Commands are responsible for their own parsing and execution logic.
package commands

import (
	"context"

	"navstack/internal/container"
)

// Command represents a shell command that can be executed interactively.
type Command interface {
	// Execute runs the command with the given arguments
	Execute(ctx context.Context, args []string) error

	// Usage returns the usage string for the command
	Usage() string

	// Description returns a brief description of what the command does
	Description() string

	// Aliases returns alternative names for this command
	Aliases() []string
}

// SystemInterface defines what commands need from the container registry.
// This keeps command implementations testable without a full system.
type SystemInterface interface {
	ByName(name string) (*container.Container, bool)
	Containers() []*container.Container
}

// Registry manages available commands for the shell.
type Registry struct {
	commands map[string]Command
	aliases  map[string]string // alias -> primary command name
}

// NewRegistry creates a new command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
		aliases:  make(map[string]string),
	}
}

// Register adds a command to the registry.
func (r *Registry) Register(name string, cmd Command) {
	r.commands[name] = cmd

	for _, alias := range cmd.Aliases() {
		r.aliases[alias] = name
	}
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(name string) (Command, bool) {
	if cmd, exists := r.commands[name]; exists {
		return cmd, true
	}

	if primary, exists := r.aliases[name]; exists {
		if cmd, exists := r.commands[primary]; exists {
			return cmd, true
		}
	}

	return nil, false
}

// List returns all registered command names.
func (r *Registry) List() []string {
	var names []string
	for name := range r.commands {
		names = append(names, name)
	}
	return names
}

// AllCompletions returns all possible command completions, aliases
// included.
func (r *Registry) AllCompletions() []string {
	var completions []string

	for name := range r.commands {
		completions = append(completions, name)
	}
	for alias := range r.aliases {
		completions = append(completions, alias)
	}

	return completions
}
