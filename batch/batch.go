// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/alexdata/alexander"
	"github.com/katalvlaran/alexdata/braid"
)

// Job describes one kernel to evaluate.
type Job struct {
	Name    string
	Strands int
	Caps    int
	Word    []int
}

// Outcome is the result of one Job. Exactly one of Result and Err is set.
type Outcome struct {
	Job     Job
	Result  *alexander.Result
	Err     error
	Elapsed time.Duration
}

// Option customises Evaluate.
type Option func(*options)

type options struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers bounds the number of concurrent jobs. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("batch: WithWorkers(n<1)")
	}

	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger for per-job diagnostics. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("batch: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// Evaluate runs every job and returns the outcomes in input order.
//
// Workers default to GOMAXPROCS. When ctx is cancelled no further jobs are
// scheduled and Evaluate returns ctx.Err() with no outcomes.
func Evaluate(ctx context.Context, jobs []Job, opts ...Option) ([]Outcome, error) {
	o := options{workers: runtime.GOMAXPROCS(0), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	out := make([]Outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i := range jobs {
		i := i
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = run(jobs[i], o.logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}
	o.logger.Debug("batch finished", zap.Int("jobs", len(jobs)), zap.Int("workers", o.workers))

	return out, nil
}

// run evaluates one job.
func run(job Job, logger *zap.Logger) Outcome {
	start := time.Now()
	log := logger.With(zap.String("job", job.Name))

	res, err := evaluate(job, log)
	elapsed := time.Since(start)
	if err != nil {
		log.Warn("job failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return Outcome{Job: job, Err: err, Elapsed: elapsed}
	}
	log.Debug("job done", zap.Duration("elapsed", elapsed), zap.Int("terms", res.Polynomial.Len()))

	return Outcome{Job: job, Result: res, Elapsed: elapsed}
}

func evaluate(job Job, log *zap.Logger) (*alexander.Result, error) {
	k, err := braid.NewKernel(job.Strands, job.Caps, job.Word...)
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}
	res, err := alexander.Compute(k, alexander.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("job %q: %w", job.Name, err)
	}

	return res, nil
}
