// Package runner checks a list of files and folds the per-file results into
// the run's outcome.
package runner

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dkoosis/jscheck/internal/env"
	"github.com/dkoosis/jscheck/internal/filter"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitError  = 2
)

// FileChecker checks a single file. *filter.Filter implements it.
type FileChecker interface {
	RunFile(ctx context.Context, path string, profile env.Profile) (filter.FileResult, error)
}

// Config controls a run.
type Config struct {
	// Jobs is the number of files checked at once. Values below 2 check files
	// one at a time.
	Jobs int
	// Classify maps a path to its environment. Defaults to env.Classify.
	Classify func(path string) env.Profile
	// Emit receives each result in input order as soon as it and every
	// result before it are available. A non-nil error stops the run.
	Emit   func(filter.FileResult) error
	Logger *zap.Logger
}

// Outcome is the aggregate of all emitted results.
type Outcome struct {
	Results []filter.FileResult
	Failed  int
}

// Add returns o with r folded in.
func (o Outcome) Add(r filter.FileResult) Outcome {
	o.Results = append(o.Results, r)
	if !r.Passed {
		o.Failed++
	}
	return o
}

// Passed reports whether every file passed.
func (o Outcome) Passed() bool {
	return o.Failed == 0
}

// ExitCode returns ExitOK if every file passed and ExitFailed otherwise.
func (o Outcome) ExitCode() int {
	if o.Passed() {
		return ExitOK
	}
	return ExitFailed
}

// Run checks paths in order. The first error ends the run; results emitted
// before it are kept in the returned Outcome.
func Run(ctx context.Context, paths []string, fc FileChecker, cfg Config) (Outcome, error) {
	if cfg.Classify == nil {
		cfg.Classify = env.Classify
	}
	if cfg.Emit == nil {
		cfg.Emit = func(filter.FileResult) error { return nil }
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Jobs < 2 || len(paths) < 2 {
		return runSequential(ctx, paths, fc, cfg)
	}
	return runParallel(ctx, paths, fc, cfg)
}

func runSequential(ctx context.Context, paths []string, fc FileChecker, cfg Config) (Outcome, error) {
	var out Outcome
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return out, err
		}
		res, err := fc.RunFile(ctx, path, cfg.Classify(path))
		if err != nil {
			return out, err
		}
		if err := cfg.Emit(res); err != nil {
			return out, err
		}
		out = out.Add(res)
	}
	return out, nil
}

type item struct {
	res filter.FileResult
	err error
}

// errSkipped marks a file that was not started because an earlier file failed.
var errSkipped = errors.New("skipped after earlier failure")

func runParallel(ctx context.Context, paths []string, fc FileChecker, cfg Config) (Outcome, error) {
	cfg.Logger.Debug("parallel run", zap.Int("jobs", cfg.Jobs), zap.Int("files", len(paths)))

	// Only the emitter cancels ctx. A failing file must not cancel files
	// before it in input order; they are still checked and emitted.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	var g errgroup.Group
	g.SetLimit(cfg.Jobs)

	ready := make([]chan item, len(paths))
	for i := range ready {
		ready[i] = make(chan item, 1)
	}

	// firstFailed is the lowest index whose check failed. Files after it are
	// never emitted, so they are not started.
	var firstFailed atomic.Int64
	firstFailed.Store(int64(len(paths)))
	markFailed := func(i int) {
		for {
			cur := firstFailed.Load()
			if int64(i) >= cur || firstFailed.CompareAndSwap(cur, int64(i)) {
				return
			}
		}
	}

	// Every index gets exactly one item so the emitter below never blocks
	// on a file that was never scheduled.
	scheduled := make(chan struct{})
	go func() {
		defer close(scheduled)
		for i, path := range paths {
			g.Go(func() error {
				if int64(i) > firstFailed.Load() {
					ready[i] <- item{err: errSkipped}
					return nil
				}
				if err := ctx.Err(); err != nil {
					ready[i] <- item{err: err}
					return nil
				}
				res, err := fc.RunFile(ctx, path, cfg.Classify(path))
				if err != nil {
					markFailed(i)
				}
				ready[i] <- item{res: res, err: err}
				return nil
			})
		}
	}()

	var out Outcome
	var runErr error
	for i := range paths {
		it := <-ready[i]
		if it.err != nil {
			runErr = it.err
			break
		}
		if runErr = cfg.Emit(it.res); runErr != nil {
			break
		}
		out = out.Add(it.res)
	}
	if runErr != nil {
		cancel()
	}

	<-scheduled
	_ = g.Wait()
	return out, runErr
}
