// Package workflow drives approval, resubmission and multi-step creation on
// top of the API client.
package workflow

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Step is one remote mutation of a saga. Compensate is optional and undoes
// Run after a later step failed.
type Step struct {
	Name       string
	Run        func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// Report tells which steps of a saga ran. When Err is nil every step
// completed.
type Report struct {
	Completed   []string
	Failed      string
	Err         error
	Pending     []string
	Compensated []string

	// CompensationErrors maps a step name to the error its compensation returned
	CompensationErrors map[string]error
}

// OK reports whether every step completed
func (r Report) OK() bool { return r.Err == nil }

func (r Report) String() string {
	if r.OK() {
		return fmt.Sprintf("%d steps completed", len(r.Completed))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "step %q failed: %v", r.Failed, r.Err)
	if len(r.Completed) > 0 {
		fmt.Fprintf(&b, "; completed: %s", strings.Join(r.Completed, ", "))
	}
	if len(r.Pending) > 0 {
		fmt.Fprintf(&b, "; not run: %s", strings.Join(r.Pending, ", "))
	}
	if len(r.Compensated) > 0 {
		fmt.Fprintf(&b, "; undone: %s", strings.Join(r.Compensated, ", "))
	}
	return b.String()
}

// SagaError wraps the failing step's error together with the report
type SagaError struct {
	Report Report
}

func (e *SagaError) Error() string { return e.Report.String() }

func (e *SagaError) Unwrap() error { return e.Report.Err }

// Saga runs steps in order and stops at the first failure. Steps may be
// added while the saga runs, so a step can schedule work that depends on its
// own result.
type Saga struct {
	steps []Step
	log   *zap.Logger
}

// NewSaga creates an empty saga
func NewSaga(log *zap.Logger) *Saga {
	if log == nil {
		log = zap.NewNop()
	}
	return &Saga{log: log}
}

// Add appends a step
func (s *Saga) Add(name string, run func(ctx context.Context) error) *Saga {
	return s.AddStep(Step{Name: name, Run: run})
}

// AddStep appends a step with an optional compensation
func (s *Saga) AddStep(step Step) *Saga {
	s.steps = append(s.steps, step)
	return s
}

// Run executes the steps. On failure the compensations of completed steps
// run in reverse order; steps without one are left as they are.
func (s *Saga) Run(ctx context.Context) Report {
	var report Report
	var done []Step

	for i := 0; i < len(s.steps); i++ {
		step := s.steps[i]
		err := ctx.Err()
		if err == nil {
			err = step.Run(ctx)
		}
		if err != nil {
			report.Failed = step.Name
			report.Err = err
			for _, rest := range s.steps[i+1:] {
				report.Pending = append(report.Pending, rest.Name)
			}
			s.log.Warn("saga step failed", zap.String("step", step.Name), zap.Error(err))
			s.compensate(ctx, done, &report)
			return report
		}
		done = append(done, step)
		report.Completed = append(report.Completed, step.Name)
	}
	return report
}

func (s *Saga) compensate(ctx context.Context, done []Step, report *Report) {
	// compensation must run even when ctx was the reason for the failure
	ctx = context.WithoutCancel(ctx)
	for i := len(done) - 1; i >= 0; i-- {
		step := done[i]
		if step.Compensate == nil {
			continue
		}
		if err := step.Compensate(ctx); err != nil {
			if report.CompensationErrors == nil {
				report.CompensationErrors = make(map[string]error)
			}
			report.CompensationErrors[step.Name] = err
			s.log.Error("saga compensation failed", zap.String("step", step.Name), zap.Error(err))
			continue
		}
		report.Compensated = append(report.Compensated, step.Name)
	}
}
