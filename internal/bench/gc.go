package bench

import (
	"math"
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// GCMode controls the garbage collector around the timed phases.
type GCMode string

const (
	GCModeAuto       GCMode = "auto"
	GCModeAggressive GCMode = "aggressive"
	GCModeDisabled   GCMode = "disabled"
)

// GCAutoThreshold is the array length from which auto mode suspends the
// collector. Smaller runs finish before a cycle would start.
const GCAutoThreshold = 1_000_000

// gcHeadroom bounds the heap while the collector is off, as a multiple of
// the memory obtained from the OS when the suspension starts.
const gcHeadroom = 3

// GCStats is the collector activity between Suspend and resume.
type GCStats struct {
	Active       bool
	HeapAlloc    uint64
	TotalAlloc   uint64
	NumGC        uint32
	PauseTotalNs uint64
}

// GCController keeps the collector out of the serial and parallel timings.
type GCController struct {
	mode   GCMode
	active bool
	log    zerolog.Logger
	stats  GCStats
}

// NewGCController decides from mode and the array length n whether the
// collector is suspended. Auto suspends it only for n >= GCAutoThreshold.
func NewGCController(mode string, n int, log zerolog.Logger) *GCController {
	m := GCMode(mode)
	active := m == GCModeAggressive || ((m == GCModeAuto || m == "") && n >= GCAutoThreshold)
	return &GCController{mode: m, active: active, log: log}
}

// Active reports whether Suspend turns the collector off.
func (g *GCController) Active() bool { return g.active }

// Suspend turns the collector off and returns the function that turns it
// back on, forces a collection and records the activity in between. Both
// are no-ops for an inactive controller.
func (g *GCController) Suspend() (resume func()) {
	if !g.active {
		return func() {}
	}
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	percent := debug.SetGCPercent(-1)
	if limit := before.Sys * gcHeadroom; limit > 0 && limit <= math.MaxInt64 {
		debug.SetMemoryLimit(int64(limit))
	}
	g.log.Debug().Str("gc_mode", string(g.mode)).Uint64("heap_alloc_bytes", before.HeapAlloc).Msg("gc suspended")

	return func() {
		var after runtime.MemStats
		runtime.ReadMemStats(&after)
		debug.SetGCPercent(percent)
		debug.SetMemoryLimit(math.MaxInt64)
		runtime.GC()

		g.stats = GCStats{
			Active:       true,
			HeapAlloc:    after.HeapAlloc,
			TotalAlloc:   after.TotalAlloc - before.TotalAlloc,
			NumGC:        after.NumGC - before.NumGC,
			PauseTotalNs: after.PauseTotalNs - before.PauseTotalNs,
		}
		g.log.Debug().Uint64("heap_alloc_bytes", after.HeapAlloc).Uint32("gc_cycles", g.stats.NumGC).Msg("gc resumed")
	}
}

// Stats returns the activity recorded by the last resume, or the zero value.
func (g *GCController) Stats() GCStats { return g.stats }
