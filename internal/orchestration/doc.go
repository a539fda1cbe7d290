// Package orchestration runs one or more benchmark configurations and
// aggregates their results for comparison. It decouples the benchmark from
// presentation via the ProgressReporter and ResultPresenter interfaces.
package orchestration
