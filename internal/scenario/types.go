package scenario

import (
	"time"
)

// StepOp identifies the navigation operation a step performs.
type StepOp string

const (
	// OpPush pushes a resource path onto a container.
	OpPush StepOp = "push"
	// OpPop pops the current top of a container.
	OpPop StepOp = "pop"
	// OpBringToFront promotes an existing entry to the top.
	OpBringToFront StepOp = "bringToFront"
)

// Result classifies the outcome of a run or a step.
type Result string

const (
	// ResultPassed indicates every expectation held.
	ResultPassed Result = "PASSED"
	// ResultFailed indicates an expectation did not hold or a step could
	// not execute.
	ResultFailed Result = "FAILED"
	// ResultSkipped indicates the scenario was marked skip.
	ResultSkipped Result = "SKIPPED"
)

// Scenario defines one YAML-described navigation sequence.
type Scenario struct {
	// Name is the unique identifier for the scenario.
	Name string `yaml:"name"`
	// Description provides a human-readable summary.
	Description string `yaml:"description,omitempty"`
	// Vars are interpolated into step paths and args via {{ var }}.
	Vars map[string]interface{} `yaml:"vars,omitempty"`
	// Steps are executed in order.
	Steps []Step `yaml:"steps"`
	// Tags for additional categorization.
	Tags []string `yaml:"tags,omitempty"`
	// Skip marks the scenario to be reported as skipped without running.
	Skip bool `yaml:"skip,omitempty"`
}

// Step is a single navigation command plus its expectations.
type Step struct {
	// ID is the step identifier.
	ID string `yaml:"id"`
	// Description explains what the step does.
	Description string `yaml:"description,omitempty"`
	// Op is the navigation operation to perform.
	Op StepOp `yaml:"op"`
	// Container names the target container.
	Container string `yaml:"container"`
	// Path is the resource path; required for push and bringToFront.
	Path string `yaml:"path,omitempty"`
	// Args are passed to the lifecycle hooks of the affected views.
	Args map[string]interface{} `yaml:"args,omitempty"`

	// Stack controls whether a push retains the element it covers;
	// unset means true.
	Stack *bool `yaml:"stack,omitempty"`
	// Animate controls animation playback; unset means true.
	Animate *bool `yaml:"animate,omitempty"`
	// LoadAsync resolves a push's loader on its own goroutine.
	LoadAsync bool `yaml:"loadAsync,omitempty"`
	// Pooling overrides the container pooling default for a push:
	// "enabled", "disabled" or "default".
	Pooling string `yaml:"pooling,omitempty"`
	// IgnoreFront makes bringToFront a silent no-op when the entry is
	// already on top.
	IgnoreFront bool `yaml:"ignoreFront,omitempty"`

	// Expected defines the step outcome to verify. A step without an
	// expected block just has to succeed.
	Expected *Expectation `yaml:"expected,omitempty"`
}

// Expectation defines what outcome a step must produce.
type Expectation struct {
	// Success indicates whether the operation should succeed.
	Success bool `yaml:"success"`
	// ErrorContains checks that the failure message contains each entry.
	ErrorContains []string `yaml:"errorContains,omitempty"`
	// Stack is the expected resource path list after the step, bottom
	// first. Omitted means unchecked; an explicit empty list expects an
	// empty stack.
	Stack []string `yaml:"stack,omitempty"`
	// Top is the expected top resource path after the step.
	Top string `yaml:"top,omitempty"`
}

// RunResult is the outcome of executing one scenario.
type RunResult struct {
	// RunID is the unique identifier of this execution.
	RunID string `json:"run_id"`
	// Scenario is the name of the executed scenario.
	Scenario string `json:"scenario"`
	// Result is the overall outcome.
	Result Result `json:"result"`
	// StartTime when execution began.
	StartTime time.Time `json:"start_time"`
	// EndTime when execution completed.
	EndTime time.Time `json:"end_time"`
	// Duration of the execution.
	Duration time.Duration `json:"duration"`
	// Steps contains the individual step results.
	Steps []StepResult `json:"steps"`
	// Error summarizes the first failure, empty on success.
	Error string `json:"error,omitempty"`
}

// StepResult is the outcome of one executed step.
type StepResult struct {
	// Step is the step that was executed.
	Step Step `json:"step"`
	// Result is the step outcome.
	Result Result `json:"result"`
	// Duration of the step execution.
	Duration time.Duration `json:"duration"`
	// Error describes the failure, empty when the step passed.
	Error string `json:"error,omitempty"`
	// Stack is the observed resource path list after the step, bottom
	// first.
	Stack []string `json:"stack"`
}
