package orchestration

import (
	"time"

	"github.com/agbru/vecbench/internal/format"
)

// ProgressAggregator manages multi-run progress aggregation.
// It wraps format.ProgressWithETA and provides a higher-level API
// for consuming progress updates from a channel. Both CLI and TUI
// use it.
type ProgressAggregator struct {
	state   *format.ProgressWithETA
	numRuns int
}

// NewProgressAggregator creates a new aggregator for the given number
// of runs. Returns nil if numRuns <= 0.
func NewProgressAggregator(numRuns int) *ProgressAggregator {
	if numRuns <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:   format.NewProgressWithETA(numRuns),
		numRuns: numRuns,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	// RunIndex is the index of the run that sent the update.
	RunIndex int
	// Value is the raw progress value from the update (0.0 to 1.0).
	Value float64
	// AverageProgress is the aggregated average across all runs.
	AverageProgress float64
	// ETA is the estimated time remaining.
	ETA time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	avgProgress, eta := a.state.UpdateWithETA(update.RunIndex, update.Value)
	return AggregatedProgress{
		RunIndex:        update.RunIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumRuns returns the number of runs being tracked.
func (a *ProgressAggregator) NumRuns() int {
	return a.numRuns
}

// IsMultiRun returns true if tracking more than one run.
func (a *ProgressAggregator) IsMultiRun() bool {
	return a.numRuns > 1
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
