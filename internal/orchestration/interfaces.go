package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/vecbench/internal/bench"
)

// ProgressUpdate reports the progress of one benchmark run.
type ProgressUpdate struct {
	// RunIndex is the index of the run in the configuration list.
	RunIndex int
	// Value is the completed share of the run, 0.0 to 1.0.
	Value float64
	// Phase is the phase that just completed.
	Phase bench.Phase
}

// RunResult encapsulates the outcome of a single benchmark configuration.
// It is the shared domain type between orchestration and presentation.
type RunResult struct {
	// Config is the configuration the run executed.
	Config bench.Config
	// Result is the benchmark outcome. It is zero if Err is set.
	Result bench.Result
	// Duration is the wall time of the whole run, including the fill.
	Duration time.Duration
	// Err contains any error that stopped the run.
	Err error
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	Verbose bool
	Quiet   bool
}

// ProgressReporter defines the interface for displaying benchmark progress.
// Implementations handle the visual representation (spinners, progress
// bars) while the orchestration layer coordinates the runs.
type ProgressReporter interface {
	// DisplayProgress consumes progressChan until it is closed and then
	// calls wg.Done.
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numRuns int, out io.Writer) {
	f(wg, progressChan, numRuns, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
// Useful for quiet mode or testing.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting benchmark results.
type ResultPresenter interface {
	// PresentResult displays the full report of one run.
	PresentResult(result RunResult, opts PresentationOptions, out io.Writer)

	// PresentComparisonTable displays one summary row per run.
	PresentComparisonTable(results []RunResult, out io.Writer)

	// HandleError reports a run error and returns the matching exit code.
	HandleError(err error, out io.Writer) int
}
