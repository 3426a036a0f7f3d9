package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"navstack/internal/app"
	"navstack/internal/cli"

	"github.com/spf13/cobra"
)

var (
	runOutput     string
	runTag        string
	runQuiet      bool
	runNoColor    bool
	runDebug      bool
	runConfigPath string
)

// completeOutputFlag provides shell completion for the output flag
func completeOutputFlag(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	formats := make([]string, 0, len(cli.ValidOutputFormats))
	for _, f := range cli.ValidOutputFormats {
		formats = append(formats, string(f))
	}
	return formats, cobra.ShellCompDirectiveDefault
}

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <path>",
	Short: "Execute navigation scenarios against the configured containers",
	Long: `The run command loads scenario definitions from a YAML file, or from
every YAML file in a directory, and executes them in order against the
containers declared in the configuration.

Each scenario is a sequence of navigation steps (push, pop,
bring-to-front) with expectations about the resulting stack. A step
whose expectation does not hold fails the scenario; remaining scenarios
still run.

Scenarios without registered view factories are served by placeholder
views, so stack behavior can be exercised from configuration alone.

Example usage:
  navstack run scenarios/                  # Run every scenario in a directory
  navstack run scenarios/checkout.yaml     # Run a single file
  navstack run scenarios/ --tag smoke      # Run scenarios tagged 'smoke'
  navstack run scenarios/ --output json    # Machine-readable report
  navstack run scenarios/ --quiet          # Suppress progress output

The exit code is non-zero when any scenario fails, making the command
suitable for CI pipelines.`,
	Args: cobra.ExactArgs(1),
	RunE: runScenarios,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// Report output configuration
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "table", "Report format (table, wide, json, yaml)")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Suppress progress output and logging")
	runCmd.Flags().BoolVar(&runNoColor, "no-color", false, "Disable colored output")

	// Scenario selection
	runCmd.Flags().StringVar(&runTag, "tag", "", "Run only scenarios carrying this tag")

	// Debugging and configuration
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "Enable debug logging")
	runCmd.Flags().StringVar(&runConfigPath, "config", "", "Path to the configuration file (default: navstack.yaml lookup)")

	// Shell completion for run flags
	_ = runCmd.RegisterFlagCompletionFunc("output", completeOutputFlag)
}

func runScenarios(cmd *cobra.Command, args []string) error {
	if err := cli.ValidateOutputFormat(runOutput); err != nil {
		return err
	}
	format := cli.OutputFormat(runOutput)

	// Create context with signal handling
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupts gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		if !runQuiet {
			fmt.Println("\nReceived interrupt signal, stopping scenarios gracefully...")
		}
		cancel()
	}()

	// Machine-readable formats keep stdout clean; logging moves out of
	// the way with it.
	quiet := runQuiet || format == cli.OutputFormatJSON || format == cli.OutputFormatYAML

	application, err := app.NewApplication(app.NewConfig(runDebug, quiet, runConfigPath))
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer application.Close(context.Background())

	if err := application.Start(ctx); err != nil {
		return fmt.Errorf("failed to start application: %w", err)
	}

	executor := cli.NewScenarioExecutor(application.System(), cli.Options{
		Format:  format,
		Quiet:   runQuiet,
		NoColor: runNoColor,
	})

	summary, err := executor.Execute(ctx, args[0], runTag)
	if err != nil {
		return fmt.Errorf("scenario execution failed: %w", err)
	}
	if err := executor.Render(summary); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	// Set exit code based on results
	if summary.Failed > 0 {
		os.Exit(ExitCodeError)
	}

	return nil
}
