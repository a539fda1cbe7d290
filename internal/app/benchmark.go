package app

import (
	"context"
	"fmt"
	"io"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/cli"
	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/logging"
	"github.com/agbru/vecbench/internal/metrics"
	"github.com/agbru/vecbench/internal/orchestration"
	"github.com/agbru/vecbench/internal/sysmon"
)

// benchOptions returns the harness options shared by every run.
func (a *Application) benchOptions() []bench.Option {
	return []bench.Option{bench.WithLogger(a.Logger.Zerolog())}
}

// runBenchmark runs the configured benchmarks and prints their reports.
func (a *Application) runBenchmark(ctx context.Context, out io.Writer) int {
	cfgs := a.Config.BenchConfigs()

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, out)
		if a.Config.Verbose {
			cli.PrintHostDetails(sysmon.Host(ctx), out)
		}
	}
	a.Logger.Debug("starting benchmarks",
		logging.Int("runs", len(cfgs)),
		logging.Int("n", a.Config.N),
		logging.Int("chunk", a.Config.ChunkSize))

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	progressOut := out
	if a.Config.Quiet || (len(cfgs) == 1 && a.Config.Repeat == 1) {
		progressReporter = orchestration.NullProgressReporter{}
		progressOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteRuns(ctx, cfgs, a.benchOptions(), progressReporter, progressOut)
	after := collector.Snapshot()

	for _, r := range results {
		switch {
		case r.Err != nil:
			a.Logger.Error("benchmark failed", r.Err, logging.Int("threads", r.Config.Threads))
		case !r.Result.Validation.OK:
			a.Logger.Info("validation failed",
				logging.Int("threads", r.Config.Threads),
				logging.Int("index", r.Result.Validation.Index))
		default:
			a.Logger.Debug("benchmark complete",
				logging.Int("threads", r.Config.Threads),
				logging.Duration("serial", r.Result.SerialTime),
				logging.Duration("parallel", r.Result.ParallelTime))
		}
	}

	presOpts := orchestration.PresentationOptions{Verbose: a.Config.Verbose, Quiet: a.Config.Quiet}
	exitCode := orchestration.AnalyzeRuns(results, presOpts, cli.CLIResultPresenter{}, out)

	if a.Config.Verbose && !a.Config.Quiet {
		cli.DisplayMemoryStats(metrics.Delta(before, after), out)
	}
	if a.Config.Metrics {
		if err := a.writeMetrics(results, after, out); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing metrics: %v\n", err)
			return max(exitCode, apperrors.ExitErrorGeneric)
		}
	}
	return exitCode
}

// writeMetrics records every completed run and writes the Prometheus text
// exposition to out.
func (a *Application) writeMetrics(results []orchestration.RunResult, mem metrics.MemorySnapshot, out io.Writer) error {
	rec := metrics.NewRecorder()
	for _, r := range results {
		if r.Err == nil {
			rec.Observe(r.Result)
		}
	}
	rec.ObserveMemory(mem)
	fmt.Fprintln(out)
	return rec.WriteText(out)
}
