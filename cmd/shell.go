package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"navstack/internal/app"
	"navstack/internal/shell"

	"github.com/spf13/cobra"
)

var (
	shellVerbose    bool
	shellNoColor    bool
	shellDebug      bool
	shellConfigPath string
)

// shellCmd represents the shell command
var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Interactive shell for the configured navigation containers",
	Long: `The shell command opens an interactive session against the containers
declared in the configuration.

In the shell, you can:
- Push views onto a container stack and pop them off again
- Bring already stacked views to the front
- Inspect stack contents, pooled views and registered containers
- Watch transition events as they complete

Tab completion covers command names, container names and the view paths
a container has seen. Type 'help' inside the shell for the full command
list.

Views are created through the registered factories; containers without
factories fall back to placeholder views, so the shell works from
configuration alone.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)

	// Add flags
	shellCmd.Flags().BoolVar(&shellVerbose, "verbose", false, "Enable verbose output for executed commands")
	shellCmd.Flags().BoolVar(&shellNoColor, "no-color", false, "Disable colored output")
	shellCmd.Flags().BoolVar(&shellDebug, "debug", false, "Enable debug logging")
	shellCmd.Flags().StringVar(&shellConfigPath, "config", "", "Path to the configuration file (default: navstack.yaml lookup)")
}

func runShell(cmd *cobra.Command, args []string) error {
	// Create context with signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	logger := shell.NewLogger(shellVerbose || shellDebug, !shellNoColor)

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	application, err := app.NewApplication(app.NewConfig(shellDebug, false, shellConfigPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close(context.Background())

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	sh := shell.NewShell(application.System(), logger)
	if err := sh.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}
	return nil
}
