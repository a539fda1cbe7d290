package format

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// MaxETA caps the estimated remaining time.
const MaxETA = 24 * time.Hour

// ProgressState tracks the progress of a fixed number of benchmark runs and
// exposes their average.
type ProgressState struct {
	progresses []float64
	numRuns    int
}

// NewProgressState creates a state tracking numRuns runs.
func NewProgressState(numRuns int) *ProgressState {
	return &ProgressState{
		progresses: make([]float64, numRuns),
		numRuns:    numRuns,
	}
}

// Update records the progress value (0.0 to 1.0) of run index. Out of range
// indices are ignored and values are clamped to [0, 1].
func (ps *ProgressState) Update(index int, value float64) {
	if index < 0 || index >= len(ps.progresses) {
		return
	}
	ps.progresses[index] = min(max(value, 0), 1)
}

// CalculateAverage returns the average progress over all runs.
func (ps *ProgressState) CalculateAverage() float64 {
	if ps.numRuns == 0 {
		return 0
	}
	var total float64
	for _, p := range ps.progresses {
		total += p
	}
	return total / float64(ps.numRuns)
}

// ProgressWithETA extends ProgressState with a remaining-time estimate based
// on the observed progress rate.
type ProgressWithETA struct {
	*ProgressState
	mu           sync.Mutex
	startTime    time.Time
	lastUpdate   time.Time
	lastProgress float64
	progressRate float64
}

// NewProgressWithETA creates a tracker for numRuns runs, starting its clock
// now.
func NewProgressWithETA(numRuns int) *ProgressWithETA {
	now := time.Now()
	return &ProgressWithETA{
		ProgressState: NewProgressState(numRuns),
		startTime:     now,
		lastUpdate:    now,
	}
}

// UpdateWithETA records a progress value and returns the new average
// together with the estimated remaining time.
func (p *ProgressWithETA) UpdateWithETA(index int, value float64) (float64, time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.Update(index, value)
	progress := p.CalculateAverage()

	now := time.Now()
	if elapsed := now.Sub(p.startTime).Seconds(); elapsed > 0 && progress > 0 {
		p.progressRate = progress / elapsed
	}
	p.lastUpdate = now
	p.lastProgress = progress
	return progress, p.etaLocked(progress)
}

// GetETA returns the current remaining-time estimate, or 0 while no rate
// has been observed.
func (p *ProgressWithETA) GetETA() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.etaLocked(p.CalculateAverage())
}

func (p *ProgressWithETA) etaLocked(progress float64) time.Duration {
	if p.progressRate <= 0 || progress >= 1 {
		return 0
	}
	seconds := (1 - progress) / p.progressRate
	eta := time.Duration(seconds * float64(time.Second))
	if eta > MaxETA || eta < 0 {
		return MaxETA
	}
	return eta
}

// FormatETA renders a remaining-time estimate compactly: "< 1s", "45s",
// "2m30s", "1h15m". Non-positive values render as "calculating...".
func FormatETA(eta time.Duration) string {
	switch {
	case eta <= 0:
		return "calculating..."
	case eta < time.Second:
		return "< 1s"
	case eta < time.Minute:
		return fmt.Sprintf("%ds", int(eta.Seconds()))
	case eta < time.Hour:
		m := int(eta.Minutes())
		s := int(eta.Seconds()) % 60
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		h := int(eta.Hours())
		m := int(eta.Minutes()) % 60
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh%dm", h, m)
	}
}

// ProgressBar renders progress (clamped to [0, 1]) as a bar of length cells.
func ProgressBar(progress float64, length int) string {
	progress = min(max(progress, 0), 1)
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length * 3)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

// FormatProgressBarWithETA combines a percentage, a bar and an ETA.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	return fmt.Sprintf("%6.2f%% [%s] ETA: %s", min(max(progress, 0), 1)*100, ProgressBar(progress, width), FormatETA(eta))
}
