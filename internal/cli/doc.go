// Package cli provides the command-line execution and reporting layer
// for navstack scenarios.
//
// # Core Components
//
// ScenarioExecutor loads scenario files, runs them against the
// registered containers and aggregates the outcomes into a Summary:
//   - File or directory loading with optional tag filtering
//   - Progress spinners for interactive runs (suppressed in quiet mode
//     and for machine-readable formats)
//   - Per-scenario results collected in execution order
//
// # Output Formats
//
// The package supports four report formats to accommodate different
// use cases:
//   - Table: summary table plus step detail for failed scenarios
//   - Wide: summary table plus step detail for every scenario
//   - JSON: indented JSON for programmatic consumption
//   - YAML: YAML converted from the JSON form, so field names match
//
// Table output uses rounded styling with color-coded results; colors
// can be disabled via Options.NoColor for plain terminals and tests.
package cli
