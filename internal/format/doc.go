// Package format holds the text formatting helpers shared by the CLI and the
// TUI: durations, counts, rates, byte sizes and progress bars.
package format
