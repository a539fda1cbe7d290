package tui

// sparkBlocks are the eight block heights of a sparkline, lowest first.
const sparkBlocks = "▁▂▃▄▅▆▇█"

var sparkRunes = []rune(sparkBlocks)

// RingBuffer keeps the most recent samples of a sparkline, up to its
// capacity. Older samples fall off the front as new ones arrive.
type RingBuffer struct {
	samples []float64
	limit   int
}

// NewRingBuffer returns an empty buffer holding at most capacity samples.
// A non-positive capacity is treated as 1.
func NewRingBuffer(capacity int) *RingBuffer {
	capacity = max(capacity, 1)
	return &RingBuffer{samples: make([]float64, 0, capacity), limit: capacity}
}

// Push appends v, evicting the oldest sample when the buffer is full.
func (r *RingBuffer) Push(v float64) {
	if len(r.samples) == r.limit {
		copy(r.samples, r.samples[1:])
		r.samples = r.samples[:r.limit-1]
	}
	r.samples = append(r.samples, v)
}

func (r *RingBuffer) Len() int { return len(r.samples) }

func (r *RingBuffer) Cap() int { return r.limit }

// Last returns the newest sample, or 0 when empty.
func (r *RingBuffer) Last() float64 {
	if len(r.samples) == 0 {
		return 0
	}
	return r.samples[len(r.samples)-1]
}

// Slice returns a copy of the samples, oldest first. It is nil when empty.
func (r *RingBuffer) Slice() []float64 {
	if len(r.samples) == 0 {
		return nil
	}
	out := make([]float64, len(r.samples))
	copy(out, r.samples)
	return out
}

// Resize changes the capacity and keeps the newest samples that still fit.
func (r *RingBuffer) Resize(capacity int) {
	capacity = max(capacity, 1)
	if capacity == r.limit {
		return
	}
	keep := r.samples
	if len(keep) > capacity {
		keep = keep[len(keep)-capacity:]
	}
	r.samples = append(make([]float64, 0, capacity), keep...)
	r.limit = capacity
}

func (r *RingBuffer) Reset() { r.samples = r.samples[:0] }

// RenderSparkline draws percentages in [0, 100] as block characters.
func RenderSparkline(values []float64) string {
	return RenderScaledSparkline(values, 100)
}

// RenderScaledSparkline draws values relative to ceiling, clamped to
// [0, ceiling]. A non-positive ceiling draws every sample at the lowest block.
func RenderScaledSparkline(values []float64, ceiling float64) string {
	if len(values) == 0 {
		return ""
	}
	line := make([]rune, 0, len(values))
	for _, v := range values {
		line = append(line, sparkRunes[blockIndex(v, ceiling)])
	}
	return string(line)
}

func blockIndex(v, ceiling float64) int {
	if ceiling <= 0 || v <= 0 {
		return 0
	}
	top := len(sparkRunes) - 1
	return min(int(min(v, ceiling)/ceiling*float64(top)), top)
}
