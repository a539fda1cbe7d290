package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatNumberString inserts thousands separators into a decimal integer
// string. A leading minus sign is preserved.
func FormatNumberString(s string) string {
	if s == "" {
		return ""
	}
	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}

	var builder strings.Builder
	builder.Grow(n + n/3 + 1)
	if neg {
		builder.WriteByte('-')
	}
	first := n % 3
	if first == 0 {
		first = 3
	}
	builder.WriteString(s[:first])
	for i := first; i < n; i += 3 {
		builder.WriteByte(',')
		builder.WriteString(s[i : i+3])
	}
	return builder.String()
}

// FormatInt formats n with thousands separators.
func FormatInt(n int) string {
	return FormatNumberString(strconv.Itoa(n))
}

// FormatThroughput renders an elements-per-second rate rounded to an integer
// with thousands separators, e.g. "182,415,321 elem/s". Non-finite or
// negative rates render as "0 elem/s".
func FormatThroughput(rate float64) string {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		rate = 0
	}
	return FormatNumberString(strconv.FormatFloat(math.Round(rate), 'f', 0, 64)) + " elem/s"
}

// FormatSpeedup renders a serial/parallel ratio, e.g. "1.87x".
func FormatSpeedup(ratio float64) string {
	return fmt.Sprintf("%.2fx", ratio)
}

// FormatBytes renders a byte count with a binary unit suffix.
func FormatBytes(b uint64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := uint64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
