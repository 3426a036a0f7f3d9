package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"navstack/internal/scenario"
	pkgstrings "navstack/pkg/strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// Render writes the summary in the configured output format.
func (e *ScenarioExecutor) Render(summary *Summary) error {
	switch e.options.Format {
	case OutputFormatJSON:
		return e.renderJSON(summary)
	case OutputFormatYAML:
		return e.renderYAML(summary)
	case OutputFormatTable, OutputFormatWide, "":
		return e.renderTable(summary)
	default:
		return fmt.Errorf("unsupported output format: %s", e.options.Format)
	}
}

func (e *ScenarioExecutor) renderJSON(summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	fmt.Fprintln(e.out, string(data))
	return nil
}

// renderYAML converts the report through its JSON form so both
// machine-readable formats agree on field names.
func (e *ScenarioExecutor) renderYAML(summary *Summary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	var generic interface{}
	if err := json.Unmarshal(data, &generic); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	yamlData, err := yaml.Marshal(generic)
	if err != nil {
		return fmt.Errorf("failed to convert report to YAML: %w", err)
	}
	fmt.Fprint(e.out, string(yamlData))
	return nil
}

// renderTable prints the run summary table. Step detail follows for
// failed scenarios, or for all of them in wide mode.
func (e *ScenarioExecutor) renderTable(summary *Summary) error {
	t := e.newTable()
	t.AppendHeader(table.Row{"SCENARIO", "RESULT", "STEPS", "DURATION", "ERROR"})
	for _, run := range summary.Runs {
		t.AppendRow(table.Row{
			run.Scenario,
			e.paintResult(run.Result),
			len(run.Steps),
			formatDuration(run.Duration),
			pkgstrings.TruncateSingleLine(run.Error, pkgstrings.DefaultErrorMaxLen),
		})
	}
	t.AppendFooter(table.Row{
		"TOTAL",
		fmt.Sprintf("%d/%d passed", summary.Passed, summary.Total),
		"",
		formatDuration(summary.Duration),
		"",
	})
	t.Render()

	for _, run := range summary.Runs {
		if e.options.Format == OutputFormatWide || run.Result == scenario.ResultFailed {
			e.renderSteps(run)
		}
	}
	return nil
}

// renderSteps prints the per-step detail table for one run.
func (e *ScenarioExecutor) renderSteps(run *scenario.RunResult) {
	if len(run.Steps) == 0 {
		return
	}

	fmt.Fprintf(e.out, "\nScenario %s (run %s):\n", run.Scenario, run.RunID)
	t := e.newTable()
	t.AppendHeader(table.Row{"STEP", "OP", "RESULT", "STACK", "ERROR"})
	for _, sr := range run.Steps {
		t.AppendRow(table.Row{
			sr.Step.ID,
			string(sr.Step.Op),
			e.paintResult(sr.Result),
			strings.Join(sr.Stack, " > "),
			pkgstrings.TruncateSingleLine(sr.Error, pkgstrings.DefaultErrorMaxLen),
		})
	}
	t.Render()
}

// newTable creates a table writer with the standard styling.
func (e *ScenarioExecutor) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(e.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (e *ScenarioExecutor) paintResult(r scenario.Result) string {
	if e.options.NoColor {
		return string(r)
	}
	switch r {
	case scenario.ResultPassed:
		return text.FgGreen.Sprint(string(r))
	case scenario.ResultFailed:
		return text.FgRed.Sprint(string(r))
	case scenario.ResultSkipped:
		return text.FgYellow.Sprint(string(r))
	default:
		return string(r)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return d.String()
	}
	return d.Round(time.Millisecond).String()
}
