package pipeline

import (
	"context"
	"log/slog"

	"github.com/passforge/passforge/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// report from previous steps.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows steps to carry configuration state
// 2. It provides a Name() method for logging and debugging
// 3. It's more extensible for future features (e.g., optional steps)
type Step interface {
	// Do executes the pipeline step.
	// It receives the context for cancellation and the report to modify.
	// Returns an error if the step fails critically; non-critical findings
	// are recorded in the report and return nil.
	Do(ctx context.Context, report *model.AnalysisReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple analysis steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing steps
	// after one fails. If false, the pipeline stops on first error.
	continueOnError bool
}

// Option is a function that configures a Pipeline.
// This follows the functional options pattern for clean API design.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithContinueOnError configures the pipeline to continue execution even
// when a step fails. Failed steps are logged and their errors recorded in
// the report, but subsequent steps still execute.
func WithContinueOnError(continueOnError bool) Option {
	return func(p *Pipeline) {
		p.continueOnError = continueOnError
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddStep after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps:           make([]Step, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddStep appends a step to the pipeline.
// Steps are executed in the order they are added.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
// It respects context cancellation and logs each step's execution.
//
// The plaintext password is scrubbed from the report when Execute returns,
// whatever the outcome, so reports leaving the pipeline carry only derived
// data. Log attributes identify the analysis by step name and digest, never
// by password.
//
// Returns the first error encountered if continueOnError is false,
// or nil if all steps complete (errors are recorded in the report).
func (p *Pipeline) Execute(ctx context.Context, report *model.AnalysisReport) error {
	defer report.Scrub()

	for _, step := range p.steps {
		// Check for cancellation before starting each step
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return ctx.Err()
		default:
		}

		p.logger.Debug("executing step", "step", step.Name())

		if err := step.Do(ctx, report); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"error", err,
			)

			report.Error = err
			report.ErrorMessage = err.Error()

			if !p.continueOnError {
				return err
			}
		}

		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}

	return nil
}

// StepCount returns the number of steps in the pipeline.
func (p *Pipeline) StepCount() int {
	return len(p.steps)
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// DefaultPipeline creates the standard analysis pipeline:
// composition, common-password check, zxcvbn scoring, entropy estimation,
// and suggestion building, in that order.
func DefaultPipeline(opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		&CompositionStep{},
		&CommonPasswordStep{},
		&ZxcvbnStep{},
		&EntropyStep{},
		&SuggestStep{},
	)
	return p
}
