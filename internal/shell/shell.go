package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"navstack/internal/container"
	"navstack/internal/shell/commands"
	"navstack/internal/system"

	"github.com/chzyer/readline"
)

// promptPrefixUnicode uses a mathematical bold "n" for navstack branding
// in the shell prompt. Used when the terminal supports unicode.
const promptPrefixUnicode = "\U0001d5fb"

// promptPrefixASCII is the fallback prefix for terminals without unicode support.
const promptPrefixASCII = "n"

// promptChevronUnicode is the guillemet separator used in the prompt.
const promptChevronUnicode = "»"

// promptChevronASCII is the fallback chevron for terminals without unicode support.
const promptChevronASCII = ">"

// stateWatching is the indicator shown in the prompt while transition
// watching is enabled via the 'watch' command.
const stateWatching = "[watch]"

// commandExecutionTimeout is the timeout for individual shell command
// execution. Navigation operations are bounded by their animation
// durations, so a minute is a generous safety net against hung loaders.
const commandExecutionTimeout = time.Minute

// Shell is an interactive command loop for driving navigation containers.
// It reads commands from a readline instance with tab completion and
// history and executes them against a running system. The watch command
// additionally streams the system's transition events between prompts.
//
// Commands are provided by the modular registry in the commands
// subpackage; each command implements the Command interface and may
// register aliases.
type Shell struct {
	sys        *system.System
	logger     *Logger
	rl         *readline.Instance
	registry   *commands.Registry
	events     <-chan container.TransitionEvent
	stopChan   chan struct{}
	wg         sync.WaitGroup
	watching   bool
	useUnicode bool
	mu         sync.RWMutex
}

// NewShell creates a shell bound to the given system. All commands are
// registered up front; the readline instance is created by Run.
func NewShell(sys *system.System, logger *Logger) *Shell {
	s := &Shell{
		sys:        sys,
		logger:     logger,
		stopChan:   make(chan struct{}),
		registry:   commands.NewRegistry(),
		useUnicode: detectUnicodeSupport(),
	}
	s.registerCommands()
	return s
}

// detectUnicodeSupport checks if the terminal likely supports unicode
// characters. Dumb terminals and non-UTF-8 locales fall back to ASCII.
func detectUnicodeSupport() bool {
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return false
	}
	for _, v := range []string{os.Getenv("LANG"), os.Getenv("LC_ALL")} {
		lower := strings.ToLower(v)
		if strings.Contains(lower, "utf-8") || strings.Contains(lower, "utf8") {
			return true
		}
	}
	return true
}

// buildPrompt creates the shell prompt.
// Format examples:
//   - "𝗻 »" - idle
//   - "𝗻 [watch] »" - transition watching enabled
//
// Falls back to ASCII characters if the terminal doesn't support unicode.
func (s *Shell) buildPrompt() string {
	s.mu.RLock()
	watching := s.watching
	useUnicode := s.useUnicode
	s.mu.RUnlock()

	prefix := promptPrefixASCII
	chevron := promptChevronASCII
	if useUnicode {
		prefix = promptPrefixUnicode
		chevron = promptChevronUnicode
	}

	parts := []string{prefix}
	if watching {
		parts = append(parts, stateWatching)
	}
	parts = append(parts, chevron)

	return strings.Join(parts, " ") + " "
}

// updatePrompt refreshes the readline prompt. Called when the watch
// state changes.
func (s *Shell) updatePrompt() {
	if s.rl != nil {
		s.rl.SetPrompt(s.buildPrompt())
	}
}

// setWatching toggles transition event display and refreshes the prompt.
// This is called by the watch command.
func (s *Shell) setWatching(enabled bool) {
	s.mu.Lock()
	s.watching = enabled
	s.mu.Unlock()

	s.updatePrompt()
}

// watchEnabled reports whether transition events should be displayed.
func (s *Shell) watchEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.watching
}

// registerCommands registers all available commands with the command
// registry, including aliases.
//
// Registered commands:
//   - help: command documentation and usage information
//   - push: push a view onto a container stack
//   - pop: pop the front view off a container stack
//   - front: bring an already stacked view to the front
//   - find: locate the most recent stack entry with a path
//   - stack: display a container's current stack
//   - pool: display a container's pooled views
//   - containers: list all registered containers
//   - watch: toggle transition event display
//   - exit: graceful session termination
func (s *Shell) registerCommands() {
	s.registry.Register("help", commands.NewHelpCommand(s.sys, s.logger, s.registry))
	s.registry.Register("push", commands.NewPushCommand(s.sys, s.logger))
	s.registry.Register("pop", commands.NewPopCommand(s.sys, s.logger))
	s.registry.Register("front", commands.NewFrontCommand(s.sys, s.logger))
	s.registry.Register("find", commands.NewFindCommand(s.sys, s.logger))
	s.registry.Register("stack", commands.NewStackCommand(s.sys, s.logger))
	s.registry.Register("pool", commands.NewPoolCommand(s.sys, s.logger))
	s.registry.Register("containers", commands.NewContainersCommand(s.sys, s.logger))
	s.registry.Register("watch", commands.NewWatchCommand(s.sys, s.logger, s.setWatching, s.watchEnabled))
	s.registry.Register("exit", commands.NewExitCommand(s.sys, s.logger))
}

// executeCommand parses and executes a command using the registry.
//
// Special handling:
//   - Empty input is silently ignored
//   - "?" is automatically translated to the help command
//   - Unknown commands provide helpful error messages
//   - Execution uses a separate timeout context so a hung transition
//     cannot wedge the loop forever
func (s *Shell) executeCommand(input string) error {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	commandName := strings.ToLower(parts[0])
	args := parts[1:]

	// Handle special case for ? alias to help command
	if commandName == "?" {
		commandName = "help"
	}

	command, exists := s.registry.Get(commandName)
	if !exists {
		return fmt.Errorf("unknown command: %s. Type 'help' for available commands", parts[0])
	}

	commandCtx, commandCancel := context.WithTimeout(context.Background(), commandExecutionTimeout)
	defer commandCancel()

	return command.Execute(commandCtx, args)
}

// Run starts the shell and enters the main interaction loop.
//
// The shell continues running until:
//   - Context cancellation (external signal)
//   - EOF input (Ctrl+D)
//   - Explicit exit command
//   - Fatal readline errors
func (s *Shell) Run(ctx context.Context) error {
	completer := s.createCompleter()
	historyFile := filepath.Join(os.TempDir(), ".navstack_history")

	config := &readline.Config{
		Prompt:          s.buildPrompt(),
		HistoryFile:     historyFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()
	s.rl = rl

	// Stream transition events in the background so the watch command
	// has something to display.
	s.events = s.sys.SubscribeTransitions()
	defer s.sys.UnsubscribeTransitions(s.events)

	s.wg.Add(1)
	go s.eventListener(ctx)

	s.logger.Info("Navigation shell started. Type 'help' for available commands. Use TAB for completion.")
	fmt.Println()

	// Main loop - process commands until shutdown
	for {
		// Check if context is cancelled before each iteration
		select {
		case <-ctx.Done():
			s.shutdownListener()
			s.logger.Info("Shell shutting down...")
			return nil
		default:
		}

		// Read input with interrupt and EOF handling
		line, err := s.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				continue // Empty line on Ctrl+C, continue
			}
		} else if err == io.EOF {
			// Graceful shutdown on Ctrl+D
			s.shutdownListener()
			s.logger.Info("Goodbye!")
			return nil
		} else if err != nil {
			return fmt.Errorf("readline error: %w", err)
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue // Skip empty input
		}

		if err := s.executeCommand(input); err != nil {
			if err.Error() == "exit" {
				// Explicit exit command
				s.shutdownListener()
				s.logger.Info("Goodbye!")
				return nil
			}
			s.logger.Error("Error: %v", err)
		}

		fmt.Println() // Add spacing between commands
	}
}

// shutdownListener stops the background event listener and waits for it.
func (s *Shell) shutdownListener() {
	close(s.stopChan)
	s.wg.Wait()
}

// eventListener displays transition events in the background while
// watching is enabled. Output temporarily pauses readline so the event
// line does not interleave with the prompt, then refreshes it.
//
// The listener runs until context cancellation or the stop channel
// signals shutdown.
func (s *Shell) eventListener(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopChan:
			return
		case ev := <-s.events:
			if !s.watchEnabled() {
				continue
			}

			// Temporarily pause readline for clean event display
			if s.rl != nil {
				s.rl.Stdout().Write([]byte("\r\033[K"))
			}

			s.logger.Event("%s", formatEvent(ev))

			// Refresh readline prompt for continued interaction
			if s.rl != nil {
				s.rl.Refresh()
			}
		}
	}
}

// formatEvent renders one transition event as a single display line.
func formatEvent(ev container.TransitionEvent) string {
	path := ev.EnteringPath
	if ev.Op == container.OpPop {
		path = ev.ExitingPath
	}

	dur := ev.Duration.Round(time.Millisecond)
	if ev.Outcome == container.OutcomeFailed {
		return fmt.Sprintf("[%s] %s %s failed after %s: %v", ev.Container, ev.Op, path, dur, ev.Err)
	}
	return fmt.Sprintf("[%s] %s %s completed in %s", ev.Container, ev.Op, path, dur)
}
