package pipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/passforge/passforge/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchProcessor handles concurrent analysis of multiple passwords.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchProcessor rather than adding
// batch functionality to Pipeline because:
// 1. It keeps the Pipeline focused on single-password execution
// 2. It allows different batch strategies later (rate limiting, retries)
// 3. It provides cleaner separation of concerns
type BatchProcessor struct {
	// pipelineFactory creates a new pipeline for each analysis.
	// We use a factory so pipeline state never leaks between analyses.
	pipelineFactory func() *Pipeline

	// concurrency is the maximum number of concurrent analyses.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// results stores completed analysis reports, synchronized via mutex.
	results []*model.AnalysisReport
	mu      sync.Mutex
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent analyses.
// Default is 10 if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchProcessor) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// NewBatchProcessor creates a new BatchProcessor.
//
// The pipelineFactory function is called for each analysis to create a
// fresh pipeline instance.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
		concurrency:     10,
		results:         make([]*model.AnalysisReport, 0),
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch analyzes multiple passwords concurrently.
// It respects the configured concurrency limit and context cancellation.
// userInputs apply to every password in the batch.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
//
// Returns reports in input order, even for passwords whose analysis
// recorded an error. The error return indicates cancellation.
func (bp *BatchProcessor) ProcessBatch(ctx context.Context, passwords []string, userInputs []string) ([]*model.AnalysisReport, error) {
	return bp.process(ctx, passwords, userInputs, nil)
}

// ProcessBatchWithCallback analyzes passwords concurrently and invokes the
// callback as each analysis completes. The callback receives the report
// and the password's index in the input slice. Callback invocations are
// not synchronized; callers that share state must lock.
func (bp *BatchProcessor) ProcessBatchWithCallback(ctx context.Context, passwords []string, userInputs []string, callback func(report *model.AnalysisReport, index int)) error {
	_, err := bp.process(ctx, passwords, userInputs, callback)
	return err
}

func (bp *BatchProcessor) process(ctx context.Context, passwords []string, userInputs []string, callback func(*model.AnalysisReport, int)) ([]*model.AnalysisReport, error) {
	bp.logger.Info("starting batch analysis",
		"total", len(passwords),
		"concurrency", bp.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results slice to maintain input order.
	bp.mu.Lock()
	bp.results = make([]*model.AnalysisReport, len(passwords))
	bp.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(bp.concurrency)

	for i, password := range passwords {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewAnalysisReport(password, userInputs)
			p := bp.pipelineFactory()

			if err := p.Execute(ctx, report); err != nil {
				// Cancellation propagates; step errors are already
				// recorded in the report.
				if ctx.Err() != nil {
					return ctx.Err()
				}
			}

			bp.mu.Lock()
			bp.results[i] = report
			bp.mu.Unlock()

			if callback != nil {
				callback(report, i)
			}
			return nil
		})
	}

	err := g.Wait()

	bp.logger.Info("batch analysis finished",
		"total", len(passwords),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	bp.mu.Lock()
	results := bp.results
	bp.mu.Unlock()

	return results, err
}
