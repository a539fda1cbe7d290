// Package config defines the command-line configuration of vecbench. Values
// come from flags first, then VECBENCH_* environment variables, then the
// defaults of package bench.
package config

import (
	"flag"
	"fmt"
	"io"

	"github.com/agbru/vecbench/internal/bench"
	apperrors "github.com/agbru/vecbench/internal/errors"
)

// EnvPrefix is prepended to every environment variable read by the
// configuration layer.
const EnvPrefix = "VECBENCH_"

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// N is the array length.
	N int
	// Threads is the requested number of parallel workers.
	Threads int
	// ChunkSize is the number of consecutive indices per scheduling unit.
	ChunkSize int
	// Seed initialises the random fill.
	Seed uint64
	// Show is the number of leading elements printed in the report.
	Show int
	// Repeat is the number of repetitions per benchmark.
	Repeat int
	// SweepSpec is the raw -sweep value: a comma list of thread counts or
	// "auto".
	SweepSpec string
	// Sweep is the parsed thread counts of SweepSpec; empty means a single
	// benchmark with Threads workers.
	Sweep []int
	// GCMode is the garbage collector mode around the timed phases.
	GCMode string
	// Metrics prints the Prometheus text exposition after the report.
	Metrics bool
	// Verbose enables debug logging and host details.
	Verbose bool
	// Quiet reduces the output to one line per benchmark.
	Quiet bool
	// NoColor disables ANSI colors.
	NoColor bool
	// TUI launches the interactive dashboard.
	TUI bool
	// Completion names the shell to print a completion script for.
	Completion string
}

// ParseConfig parses args into an AppConfig, applies environment overrides
// and validates the result. Parse errors and flag.ErrHelp are returned
// unchanged; invalid values are returned as apperrors.ConfigError.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)
	fs.Usage = func() {
		fmt.Fprintf(errWriter, "Usage: %s [flags]\n\n", programName)
		fmt.Fprintf(errWriter, "Benchmarks element-wise addition of two integer arrays, serial versus parallel.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	config := AppConfig{}
	def := bench.DefaultConfig()

	fs.IntVar(&config.N, "n", def.N, "Array length.")
	fs.IntVar(&config.Threads, "threads", def.Threads, "Requested number of parallel workers.")
	fs.IntVar(&config.Threads, "t", def.Threads, "Requested number of parallel workers (shorthand).")
	fs.IntVar(&config.ChunkSize, "chunk", def.ChunkSize, "Consecutive indices per scheduling chunk.")
	fs.Uint64Var(&config.Seed, "seed", def.Seed, "Seed of the random fill.")
	fs.IntVar(&config.Show, "show", def.Display, "Number of leading elements to print.")
	fs.IntVar(&config.Repeat, "repeat", def.Repeat, "Number of repetitions per benchmark.")
	fs.StringVar(&config.SweepSpec, "sweep", "", "Comma-separated thread counts to compare, or 'auto'.")
	fs.StringVar(&config.GCMode, "gc", def.GCMode, "GC control during timed phases: auto, aggressive, disabled.")
	fs.BoolVar(&config.Metrics, "metrics", false, "Print run metrics in Prometheus text format.")
	fs.BoolVar(&config.Verbose, "v", false, "Verbose output: debug logs and host details.")
	fs.BoolVar(&config.Verbose, "verbose", false, "Verbose output (alias for -v).")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode: one line per benchmark.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode (alias for -q).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.BoolVar(&config.TUI, "tui", false, "Launch the interactive dashboard.")
	fs.StringVar(&config.Completion, "completion", "", "Print a shell completion script (bash, zsh, fish, powershell).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected arguments: %v", fs.Args())
	}

	applyEnvOverrides(&config, fs)

	if config.SweepSpec != "" {
		sweep, err := ParseSweep(config.SweepSpec)
		if err != nil {
			return AppConfig{}, err
		}
		config.Sweep = sweep
	}

	if err := config.Validate(); err != nil {
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Completion != "" {
		switch c.Completion {
		case "bash", "zsh", "fish", "powershell":
			return nil
		default:
			return apperrors.NewConfigError("unsupported shell %q for -completion (bash, zsh, fish, powershell)", c.Completion)
		}
	}
	if c.Quiet && c.TUI {
		return apperrors.NewConfigError("-quiet and -tui cannot be combined")
	}
	for _, cfg := range c.BenchConfigs() {
		if err := cfg.Validate(); err != nil {
			return apperrors.NewConfigError("invalid configuration: %v", err)
		}
	}
	return nil
}

// ToBenchConfig converts the configuration into the parameters of a single
// benchmark run with Threads workers.
func (c AppConfig) ToBenchConfig() bench.Config {
	return bench.Config{
		N:         c.N,
		Threads:   c.Threads,
		ChunkSize: c.ChunkSize,
		Seed:      c.Seed,
		Display:   c.Show,
		Repeat:    c.Repeat,
		GCMode:    c.GCMode,
	}
}

// BenchConfigs returns one benchmark configuration per sweep entry, or the
// single configuration of ToBenchConfig when no sweep was requested.
func (c AppConfig) BenchConfigs() []bench.Config {
	if len(c.Sweep) == 0 {
		return []bench.Config{c.ToBenchConfig()}
	}
	cfgs := make([]bench.Config, 0, len(c.Sweep))
	for _, threads := range c.Sweep {
		cfg := c.ToBenchConfig()
		cfg.Threads = threads
		cfgs = append(cfgs, cfg)
	}
	return cfgs
}
