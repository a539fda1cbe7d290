package metrics

import (
	"io"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/agbru/vecbench/internal/bench"
	apperrors "github.com/agbru/vecbench/internal/errors"
)

const namespace = "vecbench"

var runLabels = []string{"threads", "chunk"}

// Recorder turns benchmark results into Prometheus metrics held in a private
// registry. Every series is labelled with the requested thread count and
// chunk size, so a sweep yields one series per configuration.
type Recorder struct {
	registry *prometheus.Registry

	runs               *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
	serialSeconds      *prometheus.GaugeVec
	parallelSeconds    *prometheus.GaugeVec
	serialThroughput   *prometheus.GaugeVec
	parallelThroughput *prometheus.GaugeVec
	speedup            *prometheus.GaugeVec
	threadsUsed        *prometheus.GaugeVec
	elements           prometheus.Gauge
	heapAlloc          prometheus.Gauge
}

// NewRecorder creates a Recorder with its own registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "runs_total",
			Help: "Completed benchmark repetitions.",
		}, runLabels),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Name: "validation_failures_total",
			Help: "Benchmarks whose parallel result differed from the serial reference.",
		}, runLabels),
		serialSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "serial_duration_seconds",
			Help: "Duration of the serial map.",
		}, runLabels),
		parallelSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "parallel_duration_seconds",
			Help: "Duration of the parallel map.",
		}, runLabels),
		serialThroughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "serial_throughput_elements_per_second",
			Help: "Elements processed per second by the serial map.",
		}, runLabels),
		parallelThroughput: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "parallel_throughput_elements_per_second",
			Help: "Elements processed per second by the parallel map.",
		}, runLabels),
		speedup: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "speedup_ratio",
			Help: "Serial duration divided by parallel duration.",
		}, runLabels),
		threadsUsed: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace, Name: "threads_used",
			Help: "Workers that actually executed the parallel map.",
		}, runLabels),
		elements: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "elements",
			Help: "Array length of the last benchmark.",
		}),
		heapAlloc: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "heap_alloc_bytes",
			Help: "Heap bytes in use after the last benchmark.",
		}),
	}
	r.registry.MustRegister(
		r.runs, r.validationFailures,
		r.serialSeconds, r.parallelSeconds,
		r.serialThroughput, r.parallelThroughput,
		r.speedup, r.threadsUsed,
		r.elements, r.heapAlloc,
	)
	return r
}

// Registry returns the registry backing the recorder.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records a benchmark result. The speedup gauge is only set when a
// speedup could be computed.
func (r *Recorder) Observe(res bench.Result) {
	labels := prometheus.Labels{
		"threads": strconv.Itoa(res.Config.Threads),
		"chunk":   strconv.Itoa(res.Config.ChunkSize),
	}
	repetitions := len(res.Timings)
	if repetitions == 0 {
		repetitions = 1
	}
	r.runs.With(labels).Add(float64(repetitions))
	if !res.Validation.OK {
		r.validationFailures.With(labels).Inc()
	}
	r.serialSeconds.With(labels).Set(res.SerialTime.Seconds())
	r.parallelSeconds.With(labels).Set(res.ParallelTime.Seconds())
	r.serialThroughput.With(labels).Set(res.SerialThroughput)
	r.parallelThroughput.With(labels).Set(res.ParallelThroughput)
	if res.SpeedupOK {
		r.speedup.With(labels).Set(res.Speedup)
	}
	r.threadsUsed.With(labels).Set(float64(res.Parallel.ThreadsUsed))
	r.elements.Set(float64(res.Config.N))
}

// ObserveMemory records a memory snapshot.
func (r *Recorder) ObserveMemory(s MemorySnapshot) {
	r.heapAlloc.Set(float64(s.HeapAlloc))
}

// WriteText writes every registered metric family to w in the Prometheus
// text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	families, err := r.registry.Gather()
	if err != nil {
		return apperrors.WrapError(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return apperrors.WrapError(err, "writing metric family %s", mf.GetName())
		}
	}
	return nil
}
