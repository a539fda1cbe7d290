package bench

import (
	"fmt"

	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/vecadd"
)

// Default benchmark parameters.
const (
	DefaultN         = 100000
	DefaultThreads   = 2
	DefaultChunkSize = 1000
	DefaultDisplay   = 10
	DefaultRepeat    = 1
)

// Config holds the parameters of a benchmark run. It is built once before
// the run starts and never modified while it executes.
type Config struct {
	// N is the array length.
	N int
	// Threads is the requested number of parallel workers.
	Threads int
	// ChunkSize is the number of consecutive indices per scheduling unit.
	ChunkSize int
	// Seed initialises the random fill.
	Seed uint64
	// Display is the number of leading elements shown in reports.
	Display int
	// Repeat is the number of independent repetitions.
	Repeat int
	// GCMode is one of "auto", "aggressive" or "disabled".
	GCMode string
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		N:         DefaultN,
		Threads:   DefaultThreads,
		ChunkSize: DefaultChunkSize,
		Seed:      vecadd.DefaultSeed,
		Display:   DefaultDisplay,
		Repeat:    DefaultRepeat,
		GCMode:    string(GCModeAuto),
	}
}

// Validate checks the configuration for values a run cannot use.
func (c Config) Validate() error {
	switch {
	case c.N < 0:
		return apperrors.ValidationError{Field: "n", Message: fmt.Sprintf("must be >= 0, got %d", c.N)}
	case c.Threads < 1:
		return apperrors.ValidationError{Field: "threads", Message: fmt.Sprintf("must be >= 1, got %d", c.Threads)}
	case c.ChunkSize < 1:
		return apperrors.ValidationError{Field: "chunk", Message: fmt.Sprintf("must be >= 1, got %d", c.ChunkSize)}
	case c.Display < 0:
		return apperrors.ValidationError{Field: "show", Message: fmt.Sprintf("must be >= 0, got %d", c.Display)}
	case c.Repeat < 1:
		return apperrors.ValidationError{Field: "repeat", Message: fmt.Sprintf("must be >= 1, got %d", c.Repeat)}
	}
	switch GCMode(c.GCMode) {
	case GCModeAuto, GCModeAggressive, GCModeDisabled, "":
	default:
		return apperrors.ValidationError{Field: "gc", Message: fmt.Sprintf("unknown mode %q (auto, aggressive, disabled)", c.GCMode)}
	}
	return nil
}
