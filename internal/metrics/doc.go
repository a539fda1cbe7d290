// Package metrics collects runtime memory readings and exposes benchmark
// results as Prometheus metrics.
package metrics
