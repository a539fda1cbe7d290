package cli

import (
	"fmt"
	"io"
	"sync"

	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/format"
	"github.com/agbru/vecbench/internal/orchestration"
	"github.com/agbru/vecbench/internal/ui"
)

// CLIProgressReporter implements orchestration.ProgressReporter for CLI output.
// It wraps the DisplayProgress function to provide a spinner and progress bar
// display during benchmark runs.
type CLIProgressReporter struct{}

// Verify that CLIProgressReporter implements orchestration.ProgressReporter.
var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress displays a spinner and progress bar for ongoing runs.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRuns int, out io.Writer) {
	DisplayProgress(wg, progressChan, numRuns, out)
}

// CLIResultPresenter implements orchestration.ResultPresenter for CLI output.
type CLIResultPresenter struct{}

// Verify interface compliance.
var _ orchestration.ResultPresenter = CLIResultPresenter{}

// PresentResult prints the full report of one run, or a single line in
// quiet mode.
func (CLIResultPresenter) PresentResult(result orchestration.RunResult, opts orchestration.PresentationOptions, out io.Writer) {
	if opts.Quiet {
		DisplayQuietResult(out, result.Result)
		return
	}
	if result.Config.Threads > 0 && opts.Verbose {
		fmt.Fprintf(out, "\n=== %d threads ===", result.Config.Threads)
	}
	DisplayReport(result.Result, opts.Verbose, out)
}

// PresentComparisonTable displays one row per run with the requested and
// used threads, both durations, speedup, parallel throughput and status.
// Uses manual padding to correctly handle ANSI color codes.
func (CLIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, out io.Writer) {
	fmt.Fprintf(out, "\n--- Comparison Summary ---\n")
	fmt.Fprintf(out, "%s%7s  %4s  %12s  %12s  %8s  %22s  %s%s\n", ui.ColorUnderline(),
		"Threads", "Used", "Serial", "Parallel", "Speedup", "Parallel throughput", "Status", ui.ColorReset())

	for _, run := range results {
		if run.Err != nil {
			fmt.Fprintf(out, "%s%7d%s  %s❌ Failure (%v)%s\n",
				ui.ColorBlue(), run.Config.Threads, ui.ColorReset(), ui.ColorRed(), run.Err, ui.ColorReset())
			continue
		}
		res := run.Result
		speedup := "n/a"
		if res.SpeedupOK {
			speedup = format.FormatSpeedup(res.Speedup)
		}
		fmt.Fprintf(out, "%s%7d%s  %4d  %12s  %12s  %8s  %22s  %s%s%s\n",
			ui.ColorBlue(), run.Config.Threads, ui.ColorReset(),
			res.Parallel.ThreadsUsed,
			format.FormatMillis(res.SerialTime), format.FormatMillis(res.ParallelTime),
			speedup, format.FormatThroughput(res.ParallelThroughput),
			ui.StatusColor(res.Validation.OK), res.Validation.Status(), ui.ColorReset())
	}
}

// HandleError reports a run error and returns the exit code matching it.
func (CLIResultPresenter) HandleError(err error, out io.Writer) int {
	if apperrors.IsContextError(err) {
		fmt.Fprintf(out, "%sBenchmark canceled: %v%s\n", ui.ColorYellow(), err, ui.ColorReset())
	} else {
		fmt.Fprintf(out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
	}
	return apperrors.ExitCodeFor(err)
}
