package bench

import "time"

// Throughput returns n elements divided by d in seconds. It is 0 when d is
// zero, so a phase too fast for the clock never reports an infinite rate.
func Throughput(n int, d time.Duration) float64 {
	if d <= 0 || n <= 0 {
		return 0
	}
	return float64(n) / d.Seconds()
}

// Speedup returns serial/parallel. ok is false when the parallel duration is
// zero and no ratio can be formed.
func Speedup(serial, parallel time.Duration) (ratio float64, ok bool) {
	if parallel <= 0 {
		return 0, false
	}
	return float64(serial) / float64(parallel), true
}
