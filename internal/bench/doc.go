// Package bench times the serial and parallel element-wise additions of
// package vecadd and derives throughput, speedup and validation outcomes.
//
// A run is a fixed sequence of phases: fill, serial, parallel, validate.
// Each phase is traced with OpenTelemetry and may be surrounded by GC
// control. Cancellation is honoured between phases only; a phase that has
// started always runs to completion.
package bench
