// Package logging provides a unified logging interface for vecbench.
// It abstracts the underlying logging implementation, allowing consistent logging
// across components. The only backend is zerolog.
package logging
