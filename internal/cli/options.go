package cli

import "fmt"

// OutputFormat represents the supported report formats for CLI commands.
type OutputFormat string

const (
	// OutputFormatTable renders a run summary table, plus step detail
	// for failed scenarios.
	OutputFormatTable OutputFormat = "table"
	// OutputFormatWide renders the summary table plus step detail for
	// every scenario.
	OutputFormatWide OutputFormat = "wide"
	// OutputFormatJSON renders the report as indented JSON.
	OutputFormatJSON OutputFormat = "json"
	// OutputFormatYAML renders the report as YAML.
	OutputFormatYAML OutputFormat = "yaml"
)

// ValidOutputFormats contains all valid output format values.
var ValidOutputFormats = []OutputFormat{
	OutputFormatTable,
	OutputFormatWide,
	OutputFormatJSON,
	OutputFormatYAML,
}

// ValidateOutputFormat validates that the given format string is a
// supported output format.
func ValidateOutputFormat(format string) error {
	switch OutputFormat(format) {
	case OutputFormatTable, OutputFormatWide, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %q (valid: table, wide, json, yaml)", format)
	}
}

// Options contains configuration for scenario execution and report
// rendering.
type Options struct {
	// Format specifies the desired report format.
	Format OutputFormat
	// Quiet suppresses progress indicators and non-essential output.
	Quiet bool
	// NoColor disables ANSI styling in table output.
	NoColor bool
}
