package config

import (
	"errors"
	"flag"
	"io"
	"reflect"
	"testing"

	apperrors "github.com/agbru/vecbench/internal/errors"
)

func TestParseConfig_Defaults(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("vecbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	want := AppConfig{
		N: 100000, Threads: 2, ChunkSize: 1000, Seed: 12345, Show: 10, Repeat: 1, GCMode: "auto",
	}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("defaults = %+v, want %+v", cfg, want)
	}
}

func TestParseConfig_Flags(t *testing.T) {
	t.Parallel()
	args := []string{"-n", "5000", "-t", "8", "-chunk", "17", "-seed", "7", "-show", "3", "-repeat", "4", "-gc", "disabled", "-q", "-metrics"}
	cfg, err := ParseConfig("vecbench", args, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.N != 5000 || cfg.Threads != 8 || cfg.ChunkSize != 17 || cfg.Seed != 7 || cfg.Show != 3 || cfg.Repeat != 4 {
		t.Errorf("numeric flags not applied: %+v", cfg)
	}
	if cfg.GCMode != "disabled" || !cfg.Quiet || !cfg.Metrics {
		t.Errorf("mode flags not applied: %+v", cfg)
	}
}

func TestParseConfig_Sweep(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("vecbench", []string{"-sweep", "4,1,2,4"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 4}; !reflect.DeepEqual(cfg.Sweep, want) {
		t.Errorf("Sweep = %v, want %v", cfg.Sweep, want)
	}
	cfgs := cfg.BenchConfigs()
	if len(cfgs) != 3 || cfgs[0].Threads != 1 || cfgs[2].Threads != 4 {
		t.Errorf("BenchConfigs = %+v", cfgs)
	}
	for _, c := range cfgs {
		if c.N != cfg.N || c.ChunkSize != cfg.ChunkSize || c.Seed != cfg.Seed {
			t.Errorf("sweep config %+v does not inherit shared parameters", c)
		}
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
	}{
		{"zero threads", []string{"-threads", "0"}},
		{"zero chunk", []string{"-chunk", "0"}},
		{"negative n", []string{"-n", "-1"}},
		{"zero repeat", []string{"-repeat", "0"}},
		{"unknown gc", []string{"-gc", "never"}},
		{"bad sweep", []string{"-sweep", "1,x"}},
		{"zero in sweep", []string{"-sweep", "0,2"}},
		{"quiet with tui", []string{"-q", "-tui"}},
		{"bad shell", []string{"-completion", "tcsh"}},
		{"positional argument", []string{"extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseConfig("vecbench", tt.args, io.Discard)
			var cfgErr apperrors.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Errorf("ParseConfig(%v) error = %v, want ConfigError", tt.args, err)
			}
			if apperrors.ExitCodeFor(err) != apperrors.ExitErrorConfig {
				t.Errorf("exit code = %d, want %d", apperrors.ExitCodeFor(err), apperrors.ExitErrorConfig)
			}
		})
	}
}

func TestParseConfig_UnknownFlag(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig("vecbench", []string{"-frobnicate"}, io.Discard)
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestParseConfig_Help(t *testing.T) {
	t.Parallel()
	_, err := ParseConfig("vecbench", []string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

func TestParseConfig_CompletionSkipsBenchValidation(t *testing.T) {
	t.Parallel()
	cfg, err := ParseConfig("vecbench", []string{"-completion", "zsh", "-threads", "0"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.Completion != "zsh" {
		t.Errorf("Completion = %q", cfg.Completion)
	}
}
