package config

import (
	"runtime"
	"slices"
	"strconv"
	"strings"

	apperrors "github.com/agbru/vecbench/internal/errors"
)

// SweepAuto is the -sweep value that derives the thread counts from the
// number of logical CPUs.
const SweepAuto = "auto"

// ParseSweep parses a comma-separated list of thread counts. Duplicates are
// removed and the result is sorted ascending. "auto" expands to
// DefaultSweep().
func ParseSweep(list string) ([]int, error) {
	list = strings.TrimSpace(list)
	if strings.EqualFold(list, SweepAuto) {
		return DefaultSweep(), nil
	}

	var counts []int
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, apperrors.NewConfigError("invalid -sweep entry %q: not an integer", field)
		}
		if n < 1 {
			return nil, apperrors.NewConfigError("invalid -sweep entry %d: thread counts must be >= 1", n)
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return nil, apperrors.NewConfigError("-sweep needs at least one thread count")
	}
	slices.Sort(counts)
	return slices.Compact(counts), nil
}

// DefaultSweep returns the powers of two up to the number of logical CPUs,
// followed by the CPU count itself when it is not a power of two.
func DefaultSweep() []int {
	return sweepFor(runtime.NumCPU())
}

func sweepFor(numCPU int) []int {
	if numCPU < 1 {
		numCPU = 1
	}
	var counts []int
	for n := 1; n <= numCPU; n *= 2 {
		counts = append(counts, n)
	}
	if counts[len(counts)-1] != numCPU {
		counts = append(counts, numCPU)
	}
	return counts
}
