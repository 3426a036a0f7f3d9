package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"navstack/internal/scenario"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ScenarioExecutor loads scenario files, runs them against registered
// containers and renders a report in the configured output format.
// This is the main entry point for the run command.
type ScenarioExecutor struct {
	// runner executes individual scenarios
	runner *scenario.Runner
	// options contains execution and formatting configuration
	options Options
	// out receives progress lines and the rendered report
	out io.Writer
}

// NewScenarioExecutor creates an executor that resolves containers
// through the given resolver. Output goes to stdout; use SetOutput to
// redirect it.
func NewScenarioExecutor(resolver scenario.ContainerResolver, options Options) *ScenarioExecutor {
	return &ScenarioExecutor{
		runner:  scenario.NewRunner(resolver),
		options: options,
		out:     os.Stdout,
	}
}

// SetOutput redirects report output to w.
func (e *ScenarioExecutor) SetOutput(w io.Writer) {
	e.out = w
}

// Summary aggregates the outcomes of one executor invocation.
type Summary struct {
	// Total is the number of scenarios executed.
	Total int `json:"total"`
	// Passed counts scenarios whose every step met its expectations.
	Passed int `json:"passed"`
	// Failed counts scenarios with at least one failed step.
	Failed int `json:"failed"`
	// Skipped counts scenarios marked skip.
	Skipped int `json:"skipped"`
	// Duration covers the whole invocation.
	Duration time.Duration `json:"duration"`
	// Runs holds the per-scenario results in execution order.
	Runs []*scenario.RunResult `json:"runs"`
}

// Execute loads the scenarios at path, optionally filters them by tag
// and runs them in order. Scenario failures are reported through the
// summary, not the error return; the error covers loading problems and
// context cancellation only.
func (e *ScenarioExecutor) Execute(ctx context.Context, path, tag string) (*Summary, error) {
	scenarios, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if tag != "" {
		scenarios = scenario.FilterByTag(scenarios, tag)
	}
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios found in %s", path)
	}

	summary := &Summary{Total: len(scenarios)}
	start := time.Now()
	for _, sc := range scenarios {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		result := e.runScenario(ctx, sc)
		summary.Runs = append(summary.Runs, result)
		switch result.Result {
		case scenario.ResultPassed:
			summary.Passed++
		case scenario.ResultFailed:
			summary.Failed++
		case scenario.ResultSkipped:
			summary.Skipped++
		}
	}
	summary.Duration = time.Since(start)
	return summary, nil
}

// runScenario runs one scenario with a progress spinner unless quiet
// mode or a machine-readable format is selected.
func (e *ScenarioExecutor) runScenario(ctx context.Context, sc scenario.Scenario) *scenario.RunResult {
	if e.options.Quiet || e.options.Format == OutputFormatJSON || e.options.Format == OutputFormatYAML {
		return e.runner.Run(ctx, sc)
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = fmt.Sprintf(" Running scenario %s...", sc.Name)
	s.Start()
	result := e.runner.Run(ctx, sc)
	s.Stop()

	if result.Result == scenario.ResultFailed {
		fmt.Fprintf(e.out, "%s %s: %s\n", e.paint(text.FgRed, "FAIL"), sc.Name, result.Error)
	}
	return result
}

// paint applies c to s unless colors are disabled.
func (e *ScenarioExecutor) paint(c text.Color, s string) string {
	if e.options.NoColor {
		return s
	}
	return c.Sprint(s)
}
