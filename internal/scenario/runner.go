package scenario

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"navstack/internal/container"
	"navstack/internal/template"
	"navstack/internal/view"
	"navstack/pkg/logging"
)

// ContainerResolver is the piece of a navigation system the runner
// needs: container lookup by name. *system.System satisfies it.
type ContainerResolver interface {
	ByName(name string) (*container.Container, bool)
}

// Runner executes scenarios against a set of live containers.
type Runner struct {
	resolver ContainerResolver
	template *template.Engine
}

// NewRunner creates a runner resolving containers through the given
// resolver.
func NewRunner(resolver ContainerResolver) *Runner {
	return &Runner{
		resolver: resolver,
		template: template.New(),
	}
}

// Run executes the scenario step by step. The first failed step halts
// the run; a skipped scenario executes nothing. All outcomes, including
// failures, are reported through the result.
func (r *Runner) Run(ctx context.Context, sc Scenario) *RunResult {
	result := &RunResult{
		RunID:     uuid.New().String(),
		Scenario:  sc.Name,
		Result:    ResultPassed,
		StartTime: time.Now(),
	}
	logging.Debug("Scenario", "Running scenario %s (run: %s, %d steps)", sc.Name, result.RunID, len(sc.Steps))

	if sc.Skip {
		result.Result = ResultSkipped
		result.EndTime = time.Now()
		return result
	}

	for i, step := range sc.Steps {
		logging.Debug("Scenario", "Executing step %d/%d: %s (%s on %s)", i+1, len(sc.Steps), step.ID, step.Op, step.Container)
		stepResult := r.runStep(ctx, sc, step)
		result.Steps = append(result.Steps, stepResult)

		if stepResult.Result == ResultFailed {
			result.Result = ResultFailed
			result.Error = fmt.Sprintf("step %s: %s", step.ID, stepResult.Error)
			break
		}
	}

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	logging.Debug("Scenario", "Scenario %s %s in %s", sc.Name, result.Result, result.Duration)
	return result
}

// runStep executes one step and verifies its expectations.
func (r *Runner) runStep(ctx context.Context, sc Scenario, step Step) StepResult {
	start := time.Now()
	result := StepResult{Step: step, Result: ResultPassed}
	fail := func(format string, args ...interface{}) StepResult {
		result.Result = ResultFailed
		result.Error = fmt.Sprintf(format, args...)
		result.Duration = time.Since(start)
		return result
	}

	c, ok := r.resolver.ByName(step.Container)
	if !ok {
		return fail("container %s is not registered", step.Container)
	}

	path, err := r.template.ReplaceString(step.Path, sc.Vars)
	if err != nil {
		return fail("path interpolation failed: %v", err)
	}
	args, err := r.resolveArgs(step.Args, sc.Vars)
	if err != nil {
		return fail("args interpolation failed: %v", err)
	}

	var opErr error
	switch step.Op {
	case OpPush:
		opts := view.DefaultPushOptions()
		if step.Stack != nil {
			opts.Stack = *step.Stack
		}
		if step.Animate != nil {
			opts.PlayAnimation = *step.Animate
		}
		opts.LoadAsync = step.LoadAsync
		if opts.Pooling, err = view.ParsePoolingPolicy(step.Pooling); err != nil {
			return fail("%v", err)
		}
		opErr = c.Push(ctx, path, opts, args)
	case OpPop:
		animate := true
		if step.Animate != nil {
			animate = *step.Animate
		}
		opErr = c.Pop(ctx, animate, args)
	case OpBringToFront:
		opErr = c.BringToFront(ctx, path, step.IgnoreFront, args)
	default:
		return fail("unknown op %q", step.Op)
	}

	result.Stack = c.Paths()
	result.Duration = time.Since(start)

	if msg := checkExpectation(step.Expected, opErr, result.Stack); msg != "" {
		result.Result = ResultFailed
		result.Error = msg
	}
	return result
}

// resolveArgs interpolates scenario vars into step args.
func (r *Runner) resolveArgs(args map[string]interface{}, vars map[string]interface{}) (view.Args, error) {
	if args == nil {
		return nil, nil
	}
	resolved, err := r.template.Replace(args, vars)
	if err != nil {
		return nil, err
	}
	return view.Args(resolved.(map[string]interface{})), nil
}

// checkExpectation verifies the step outcome and returns a failure
// message, or the empty string when every expectation held. A step
// without an expected block just has to succeed.
func checkExpectation(exp *Expectation, opErr error, stack []string) string {
	if exp == nil {
		exp = &Expectation{Success: true}
	}

	if exp.Success && opErr != nil {
		return fmt.Sprintf("operation failed: %v", opErr)
	}
	if !exp.Success {
		if opErr == nil {
			return "expected the operation to fail, it succeeded"
		}
		for _, fragment := range exp.ErrorContains {
			if !strings.Contains(opErr.Error(), fragment) {
				return fmt.Sprintf("error %q does not contain %q", opErr.Error(), fragment)
			}
		}
	}

	if exp.Stack != nil && !equalStacks(exp.Stack, stack) {
		return fmt.Sprintf("expected stack %v, got %v", exp.Stack, stack)
	}
	if exp.Top != "" {
		if len(stack) == 0 {
			return fmt.Sprintf("expected top %s, stack is empty", exp.Top)
		}
		if top := stack[len(stack)-1]; top != exp.Top {
			return fmt.Sprintf("expected top %s, got %s", exp.Top, top)
		}
	}
	return ""
}

func equalStacks(want, got []string) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
