package bench

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/vecadd"
)

// TracerName is the instrumentation scope used for phase spans.
const TracerName = "github.com/agbru/vecbench/internal/bench"

// Phase identifies a step of a benchmark repetition.
type Phase int

const (
	PhaseFill Phase = iota
	PhaseSerial
	PhaseParallel
	PhaseValidate
)

// PhasesPerRepetition is the number of phases in one repetition.
const PhasesPerRepetition = 4

var phaseNames = [...]string{"fill", "serial", "parallel", "validate"}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// Event is emitted after each completed phase.
type Event struct {
	// Repetition is the zero-based repetition index.
	Repetition int
	// Repetitions is the total number of repetitions in the run.
	Repetitions int
	// Phase is the phase that just completed.
	Phase Phase
	// Elapsed is the duration of the phase.
	Elapsed time.Duration
}

// Fraction returns the share of the whole run completed by this event, in
// (0, 1].
func (e Event) Fraction() float64 {
	total := e.Repetitions * PhasesPerRepetition
	if total <= 0 {
		return 1
	}
	return float64(e.Repetition*PhasesPerRepetition+int(e.Phase)+1) / float64(total)
}

// Timing holds the two measured durations of one repetition.
type Timing struct {
	Serial   time.Duration
	Parallel time.Duration
}

// Result is the outcome of a benchmark run.
//
// When Repeat > 1 the arrays, durations and validation belong to the last
// repetition, or to the first one that failed validation. Timings lists every
// repetition and Summary aggregates them.
type Result struct {
	Config Config

	A      []int
	B      []int
	R      []int
	Serial []int

	FillTime     time.Duration
	SerialTime   time.Duration
	ParallelTime time.Duration

	SerialThroughput   float64
	ParallelThroughput float64
	Speedup            float64
	SpeedupOK          bool

	Parallel   vecadd.Stats
	Validation vecadd.Validation
	GC         GCStats

	Timings []Timing
	Summary *Summary
}

// Option configures Run.
type Option func(*runOptions)

type runOptions struct {
	logger   zerolog.Logger
	tracer   trace.Tracer
	observer func(Event)
	now      func() time.Time
}

// WithLogger sets the logger for run events. The default discards them.
func WithLogger(l zerolog.Logger) Option {
	return func(o *runOptions) { o.logger = l }
}

// WithTracer sets the tracer used for phase spans. The default is the
// global tracer provider's tracer named TracerName.
func WithTracer(t trace.Tracer) Option {
	return func(o *runOptions) { o.tracer = t }
}

// WithObserver registers fn to be called after every phase. fn runs on the
// benchmark goroutine and must not block.
func WithObserver(fn func(Event)) Option {
	return func(o *runOptions) { o.observer = fn }
}

func newRunOptions(opts []Option) runOptions {
	o := runOptions{
		logger:   zerolog.Nop(),
		observer: func(Event) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.tracer == nil {
		o.tracer = otel.Tracer(TracerName)
	}
	return o
}

// Run executes cfg.Repeat repetitions of fill, serial, parallel and
// validate. ctx is checked before each phase; a canceled context stops the
// run at the next phase boundary and its error is returned.
//
// A validation failure is not an error: it is reported in
// Result.Validation.
func Run(ctx context.Context, cfg Config, opts ...Option) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	o := newRunOptions(opts)

	ctx, span := o.tracer.Start(ctx, "bench.run", trace.WithAttributes(
		attribute.Int("bench.n", cfg.N),
		attribute.Int("bench.threads", cfg.Threads),
		attribute.Int("bench.chunk", cfg.ChunkSize),
		attribute.Int("bench.repeat", cfg.Repeat),
	))
	defer span.End()

	var chosen Result
	timings := make([]Timing, 0, cfg.Repeat)
	for rep := 0; rep < cfg.Repeat; rep++ {
		res, err := runOnce(ctx, cfg, rep, o)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return Result{}, err
		}
		timings = append(timings, Timing{Serial: res.SerialTime, Parallel: res.ParallelTime})
		if rep == 0 || chosen.Validation.OK {
			chosen = res
		}
	}

	chosen.Timings = timings
	if len(timings) > 1 {
		s := Summarize(timings)
		chosen.Summary = &s
	}
	span.SetAttributes(
		attribute.Bool("bench.valid", chosen.Validation.OK),
		attribute.Int("bench.threads_used", chosen.Parallel.ThreadsUsed),
	)
	return chosen, nil
}

func runOnce(ctx context.Context, cfg Config, rep int, o runOptions) (Result, error) {
	res := Result{Config: cfg}
	log := o.logger.With().Int("repetition", rep).Logger()

	step := func(phase Phase, fn func() error) (time.Duration, error) {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		_, span := o.tracer.Start(ctx, "bench."+phase.String(), trace.WithAttributes(
			attribute.Int("bench.repetition", rep),
		))
		start := o.now()
		err := fn()
		elapsed := o.now().Sub(start)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			span.End()
			return elapsed, apperrors.RunError{Phase: phase.String(), Cause: err}
		}
		span.End()
		log.Debug().Str("phase", phase.String()).Dur("elapsed", elapsed).Msg("phase complete")
		o.observer(Event{Repetition: rep, Repetitions: cfg.Repeat, Phase: phase, Elapsed: elapsed})
		return elapsed, nil
	}

	var err error
	res.FillTime, err = step(PhaseFill, func() error {
		res.A, res.B = vecadd.Fill(cfg.N, cfg.Seed)
		res.R = make([]int, cfg.N)
		res.Serial = make([]int, cfg.N)
		return nil
	})
	if err != nil {
		return res, err
	}

	gc := NewGCController(cfg.GCMode, cfg.N, log)
	resume := gc.Suspend()
	res.SerialTime, err = step(PhaseSerial, func() error {
		return vecadd.AddSerial(res.Serial, res.A, res.B)
	})
	if err == nil {
		res.ParallelTime, err = step(PhaseParallel, func() error {
			var perr error
			res.Parallel, perr = vecadd.AddParallel(res.R, res.A, res.B, cfg.Threads, cfg.ChunkSize)
			return perr
		})
	}
	resume()
	res.GC = gc.Stats()
	if err != nil {
		return res, err
	}

	if _, err = step(PhaseValidate, func() error {
		res.Validation = vecadd.Validate(res.R, res.Serial)
		return nil
	}); err != nil {
		return res, err
	}

	res.SerialThroughput = Throughput(cfg.N, res.SerialTime)
	res.ParallelThroughput = Throughput(cfg.N, res.ParallelTime)
	res.Speedup, res.SpeedupOK = Speedup(res.SerialTime, res.ParallelTime)

	if !res.Validation.OK {
		log.Warn().Err(res.Validation.Err()).Msg("parallel result differs from serial reference")
	}
	log.Debug().
		Dur("serial", res.SerialTime).
		Dur("parallel", res.ParallelTime).
		Int("threads_used", res.Parallel.ThreadsUsed).
		Msg("repetition complete")
	return res, nil
}
