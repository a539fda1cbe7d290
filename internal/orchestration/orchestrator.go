package orchestration

import (
	"context"
	"fmt"
	"io"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/vecbench/internal/bench"
	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/ui"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. Updates are dropped rather than blocking a run when the buffer is
// full, so a slow display never stretches a measurement.
const ProgressBufferMultiplier = 5

// ExecuteRuns runs every configuration in cfgs, one after the other, and
// returns their results in the same order.
//
// Runs are never concurrent: each benchmark owns the machine while it is
// timed. Progress from the runs flows to progressReporter through a buffered
// channel. Once ctx is canceled the current run stops at its next phase
// boundary and the remaining runs are reported with the context error.
func ExecuteRuns(ctx context.Context, cfgs []bench.Config, opts []bench.Option, progressReporter ProgressReporter, out io.Writer) []RunResult {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(1)

	results := make([]RunResult, len(cfgs))
	progressChan := make(chan ProgressUpdate, max(len(cfgs), 1)*bench.PhasesPerRepetition*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(cfgs), out)

	for i, cfg := range cfgs {
		g.Go(func() error {
			results[i] = runOne(ctx, i, cfg, opts, progressChan)
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

func runOne(ctx context.Context, index int, cfg bench.Config, opts []bench.Option, progressChan chan<- ProgressUpdate) RunResult {
	if err := ctx.Err(); err != nil {
		return RunResult{Config: cfg, Err: err}
	}
	observer := bench.WithObserver(func(e bench.Event) {
		select {
		case progressChan <- ProgressUpdate{RunIndex: index, Value: e.Fraction(), Phase: e.Phase}:
		default:
		}
	})
	runOpts := append(slices.Clip(opts), observer)

	start := time.Now()
	res, err := bench.Run(ctx, cfg, runOpts...)
	return RunResult{Config: cfg, Result: res, Duration: time.Since(start), Err: err}
}

// AnalyzeRuns presents the results and returns the process exit code.
//
// A single run is presented in full. Several runs are sorted by thread
// count, summarised in a comparison table and followed by a global status;
// in quiet mode each run is presented on its own instead.
// A validation failure is reported but does not change the exit code; only
// run errors do.
func AnalyzeRuns(results []RunResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	if len(results) == 0 {
		return apperrors.ExitSuccess
	}
	if len(results) == 1 {
		if results[0].Err != nil {
			return presenter.HandleError(results[0].Err, out)
		}
		presenter.PresentResult(results[0], opts, out)
		return apperrors.ExitSuccess
	}

	slices.SortStableFunc(results, func(a, b RunResult) int {
		return a.Config.Threads - b.Config.Threads
	})

	var firstError error
	failed := 0
	for _, res := range results {
		switch {
		case res.Err != nil:
			if firstError == nil {
				firstError = res.Err
			}
		case !res.Result.Validation.OK:
			failed++
		}
	}

	if opts.Quiet {
		for _, res := range results {
			if res.Err == nil {
				presenter.PresentResult(res, opts, out)
			}
		}
		if firstError != nil {
			return presenter.HandleError(firstError, out)
		}
		return apperrors.ExitSuccess
	}

	presenter.PresentComparisonTable(results, out)

	if firstError != nil {
		fmt.Fprintf(out, "\nGlobal Status: %sFailure%s. At least one run did not complete.\n", ui.ColorRed(), ui.ColorReset())
		return presenter.HandleError(firstError, out)
	}
	if failed > 0 {
		fmt.Fprintf(out, "\nGlobal Status: %s%d of %d runs FAILED validation%s.\n", ui.ColorRed(), failed, len(results), ui.ColorReset())
		return apperrors.ExitSuccess
	}
	fmt.Fprintf(out, "\nGlobal Status: %sSuccess%s. Every parallel result matches the serial reference.\n", ui.ColorGreen(), ui.ColorReset())
	if opts.Verbose {
		for _, res := range results {
			presenter.PresentResult(res, opts, out)
		}
	}
	return apperrors.ExitSuccess
}
