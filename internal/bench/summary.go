package bench

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DurationStats summarises a series of durations.
type DurationStats struct {
	Mean   time.Duration
	StdDev time.Duration
	Min    time.Duration
	Max    time.Duration
}

// Summary aggregates the timings of repeated runs.
type Summary struct {
	Runs     int
	Serial   DurationStats
	Parallel DurationStats
	// Speedup is the ratio of the mean serial and mean parallel durations.
	Speedup   float64
	SpeedupOK bool
}

// Summarize computes per-phase statistics over timings. The standard
// deviation is the unbiased sample estimate and is 0 for a single timing.
func Summarize(timings []Timing) Summary {
	s := Summary{Runs: len(timings)}
	if len(timings) == 0 {
		return s
	}
	serial := make([]float64, len(timings))
	parallel := make([]float64, len(timings))
	for i, t := range timings {
		serial[i] = float64(t.Serial)
		parallel[i] = float64(t.Parallel)
	}
	s.Serial = summarizeDurations(serial)
	s.Parallel = summarizeDurations(parallel)
	s.Speedup, s.SpeedupOK = Speedup(s.Serial.Mean, s.Parallel.Mean)
	return s
}

func summarizeDurations(x []float64) DurationStats {
	mean, std := stat.MeanStdDev(x, nil)
	if len(x) < 2 || math.IsNaN(std) {
		std = 0
	}
	return DurationStats{
		Mean:   time.Duration(math.Round(mean)),
		StdDev: time.Duration(math.Round(std)),
		Min:    time.Duration(floats.Min(x)),
		Max:    time.Duration(floats.Max(x)),
	}
}
