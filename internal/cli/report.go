package cli

import (
	"fmt"
	"io"
	"runtime"
	"strconv"
	"strings"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/config"
	"github.com/agbru/vecbench/internal/format"
	"github.com/agbru/vecbench/internal/metrics"
	"github.com/agbru/vecbench/internal/sysmon"
	"github.com/agbru/vecbench/internal/ui"
)

// PrintExecutionConfig echoes the benchmark configuration before any run
// starts.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Benchmark Configuration ---\n")
	fmt.Fprintf(out, "Array length:   %s%s%s elements\n", ui.ColorMagenta(), format.FormatInt(cfg.N), ui.ColorReset())
	if len(cfg.Sweep) > 0 {
		fmt.Fprintf(out, "Threads:        %ssweep %s%s\n", ui.ColorCyan(), joinInts(cfg.Sweep), ui.ColorReset())
	} else {
		fmt.Fprintf(out, "Threads:        %s%d%s requested\n", ui.ColorCyan(), cfg.Threads, ui.ColorReset())
	}
	fmt.Fprintf(out, "Chunk size:     %s%s%s\n", ui.ColorCyan(), format.FormatInt(cfg.ChunkSize), ui.ColorReset())
	fmt.Fprintf(out, "Seed:           %d\n", cfg.Seed)
	if cfg.Repeat > 1 {
		fmt.Fprintf(out, "Repetitions:    %d\n", cfg.Repeat)
	}
	fmt.Fprintf(out, "Environment:    %s%d%s logical processors, GOMAXPROCS %d, Go %s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), runtime.GOMAXPROCS(0), runtime.Version())
}

// PrintHostDetails prints the host description gathered by sysmon.
func PrintHostDetails(h sysmon.HostInfo, out io.Writer) {
	fmt.Fprintf(out, "Host:           %s/%s", h.OS, h.Arch)
	if h.CPUModel != "" {
		fmt.Fprintf(out, ", %s", h.CPUModel)
	}
	fmt.Fprintln(out)
	if h.PhysicalCores > 0 {
		fmt.Fprintf(out, "Cores:          %d physical, %d logical\n", h.PhysicalCores, h.LogicalCores)
	}
	if h.TotalMemory > 0 {
		fmt.Fprintf(out, "Memory:         %s\n", format.FormatBytes(h.TotalMemory))
	}
	if len(h.Features) > 0 {
		fmt.Fprintf(out, "SIMD:           %s\n", strings.Join(h.Features, " "))
	}
}

// DisplayReport prints the diagnostics, validation status and samples of
// one benchmark result, in that order.
func DisplayReport(res bench.Result, verbose bool, out io.Writer) {
	displayTimings(res, out)
	displayValidation(res, out)
	if res.Summary != nil {
		displaySummary(*res.Summary, out)
	}
	if verbose && res.GC.Active {
		DisplayGCStats(res.GC, out)
	}
	DisplaySampleTable(res, out)
	DisplayArrays(res, out)
}

func displayTimings(res bench.Result, out io.Writer) {
	stats := res.Parallel
	fmt.Fprintf(out, "\n--- Results ---\n")
	fmt.Fprintf(out, "Threads used:        %s%d%s of %d requested (%d chunks)\n",
		ui.ColorCyan(), stats.ThreadsUsed, ui.ColorReset(), stats.ThreadsRequested, stats.Chunks)
	fmt.Fprintf(out, "Serial time:         %s%s%s\n", ui.ColorYellow(), format.FormatMillis(res.SerialTime), ui.ColorReset())
	fmt.Fprintf(out, "Parallel time:       %s%s%s\n", ui.ColorYellow(), format.FormatMillis(res.ParallelTime), ui.ColorReset())
	if res.SpeedupOK {
		fmt.Fprintf(out, "Speedup:             %s%s%s\n", ui.ColorBold(), format.FormatSpeedup(res.Speedup), ui.ColorReset())
	}
	fmt.Fprintf(out, "Serial throughput:   %s\n", format.FormatThroughput(res.SerialThroughput))
	fmt.Fprintf(out, "Parallel throughput: %s\n", format.FormatThroughput(res.ParallelThroughput))
}

func displayValidation(res bench.Result, out io.Writer) {
	v := res.Validation
	fmt.Fprintf(out, "Validation:          %s%s%s\n", ui.StatusColor(v.OK), v.Status(), ui.ColorReset())
	if !v.OK {
		fmt.Fprintf(out, "  %s%v%s\n", ui.ColorRed(), v.Err(), ui.ColorReset())
	}
}

func displaySummary(s bench.Summary, out io.Writer) {
	fmt.Fprintf(out, "\n--- Repetitions (%d) ---\n", s.Runs)
	fmt.Fprintf(out, "Serial:    mean %s  stddev %s  min %s\n",
		format.FormatMillis(s.Serial.Mean), format.FormatMillis(s.Serial.StdDev), format.FormatMillis(s.Serial.Min))
	fmt.Fprintf(out, "Parallel:  mean %s  stddev %s  min %s\n",
		format.FormatMillis(s.Parallel.Mean), format.FormatMillis(s.Parallel.StdDev), format.FormatMillis(s.Parallel.Min))
	if s.SpeedupOK {
		fmt.Fprintf(out, "Speedup of means: %s\n", format.FormatSpeedup(s.Speedup))
	}
}

// DisplaySampleTable prints the first min(N, display) triples as
// "i | A + B = R".
func DisplaySampleTable(res bench.Result, out io.Writer) {
	n := sampleCount(res)
	if n == 0 {
		return
	}
	width := len(strconv.Itoa(n - 1))
	fmt.Fprintf(out, "\n--- First %d elements ---\n", n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(out, "%*d | %2d + %2d = %3d\n", width, i, res.A[i], res.B[i], res.R[i])
	}
}

// DisplayArrays prints the first display values of A, B and R as comma
// separated lists.
func DisplayArrays(res bench.Result, out io.Writer) {
	n := sampleCount(res)
	if n == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "A: %s\n", joinInts(res.A[:n]))
	fmt.Fprintf(out, "B: %s\n", joinInts(res.B[:n]))
	fmt.Fprintf(out, "R: %s\n", joinInts(res.R[:n]))
}

func sampleCount(res bench.Result) int {
	return max(0, min(res.Config.Display, len(res.A), len(res.B), len(res.R)))
}

// FormatQuietResult renders a result on a single line for scripts. A failed
// validation appends the first mismatch as mismatch=index:parallel/serial.
func FormatQuietResult(res bench.Result) string {
	speedup := "n/a"
	if res.SpeedupOK {
		speedup = format.FormatSpeedup(res.Speedup)
	}
	line := fmt.Sprintf("n=%d threads=%d/%d chunk=%d serial_ms=%.3f parallel_ms=%.3f speedup=%s status=%s",
		res.Config.N, res.Parallel.ThreadsUsed, res.Parallel.ThreadsRequested, res.Config.ChunkSize,
		res.SerialTime.Seconds()*1e3, res.ParallelTime.Seconds()*1e3, speedup, res.Validation.Status())
	if v := res.Validation; !v.OK {
		line += fmt.Sprintf(" mismatch=%d:%d/%d", v.Index, v.Got, v.Want)
	}
	return line
}

// DisplayQuietResult writes FormatQuietResult followed by a newline.
func DisplayQuietResult(out io.Writer, res bench.Result) {
	fmt.Fprintln(out, FormatQuietResult(res))
}

// DisplayGCStats shows the garbage collector activity of the timed phases.
func DisplayGCStats(gc bench.GCStats, out io.Writer) {
	fmt.Fprintf(out, "\nGC during timed phases:\n")
	fmt.Fprintf(out, "  Heap in use:     %s\n", format.FormatBytes(gc.HeapAlloc))
	fmt.Fprintf(out, "  Allocated:       %s\n", format.FormatBytes(gc.TotalAlloc))
	fmt.Fprintf(out, "  GC cycles:       %d\n", gc.NumGC)
}

// DisplayMemoryStats shows memory statistics after the benchmarks.
func DisplayMemoryStats(d metrics.MemoryDelta, out io.Writer) {
	fmt.Fprintf(out, "\nMemory Stats:\n")
	fmt.Fprintf(out, "  Peak heap:       %s\n", format.FormatBytes(d.PeakHeap))
	fmt.Fprintf(out, "  Total allocated: %s\n", format.FormatBytes(d.Allocated))
	fmt.Fprintf(out, "  GC cycles:       %d\n", d.NumGC)
	if d.PauseTotalNs > 0 {
		fmt.Fprintf(out, "  GC pause total:  %.2fms\n", float64(d.PauseTotalNs)/1e6)
	} else {
		fmt.Fprintf(out, "  GC pause total:  0ms\n")
	}
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
