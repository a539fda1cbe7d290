package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration picks the coarsest unit that still shows a
// non-zero integer: µs below a millisecond, ms below a second, and
// time.Duration's own form above that. The dashboard uses it for elapsed
// wall time, where three decimals would only flicker.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.String()
	}
}

// FormatMillis renders d as fractional milliseconds with three decimals,
// e.g. "0.042 ms", so sub-millisecond phases stay comparable.
func FormatMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/float64(time.Millisecond))
}
