package demo

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvrec/internal/config"
)

// Result is the outcome of one demonstration.
type Result struct {
	Key     string
	Name    string
	Value   string // formatted result, empty when Err is set
	Err     error
	Elapsed time.Duration
}

// Runner executes demonstrations, optionally several at a time.
type Runner struct {
	logger   *zap.Logger
	parallel int
}

// NewRunner returns a Runner that runs up to parallel demos concurrently.
// parallel < 1 is treated as 1; a nil logger discards logs.
func NewRunner(logger *zap.Logger, parallel int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if parallel < 1 {
		parallel = 1
	}

	return &Runner{logger: logger, parallel: parallel}
}

// Run executes demos against cfg and returns one Result per demo, in the
// order given regardless of completion order. A failing demo is recorded in
// its Result and does not stop the others; the returned error is non-nil
// only when ctx is done before every demo has started.
func (r *Runner) Run(ctx context.Context, cfg *config.Config, demos []Demo) ([]Result, error) {
	results := make([]Result, len(demos))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.parallel)
	for i, d := range demos {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			results[i] = r.runOne(gctx, cfg, d)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

func (r *Runner) runOne(ctx context.Context, cfg *config.Config, d Demo) Result {
	start := time.Now()
	value, err := d.Run(ctx, cfg)
	res := Result{Key: d.Key, Name: d.Name, Value: value, Err: err, Elapsed: time.Since(start)}

	if err != nil {
		r.logger.Warn("demo failed",
			zap.String("demo", d.Key),
			zap.Duration("elapsed", res.Elapsed),
			zap.Error(err))
		res.Value = ""
		return res
	}
	r.logger.Debug("demo finished",
		zap.String("demo", d.Key),
		zap.String("value", value),
		zap.Duration("elapsed", res.Elapsed))

	return res
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, res := range results {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}

	return failed
}
