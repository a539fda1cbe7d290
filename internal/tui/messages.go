package tui

import (
	"time"

	"github.com/agbru/vecbench/internal/orchestration"
	"github.com/agbru/vecbench/internal/sysmon"
)

// ProgressMsg carries an aggregated progress update from the bridge.
type ProgressMsg struct {
	RunIndex        int
	Value           float64
	AverageProgress float64
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// RunResultMsg carries the full result of one run.
type RunResultMsg struct {
	Result  orchestration.RunResult
	Verbose bool
}

// ComparisonResultsMsg carries the results of a sweep, sorted by threads.
type ComparisonResultsMsg struct {
	Results []orchestration.RunResult
}

// ErrorMsg reports a run error.
type ErrorMsg struct {
	Err error
}

// TickMsg drives the periodic sampling of runtime and system stats.
type TickMsg time.Time

// MemStatsMsg carries a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapSys      uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// SysStatsMsg carries a host load sample.
type SysStatsMsg struct {
	sysmon.Usage
}

// RunsCompleteMsg signals that every configured run finished.
type RunsCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// ContextCancelledMsg signals that the run context was cancelled.
type ContextCancelledMsg struct {
	Err        error
	Generation uint64
}
