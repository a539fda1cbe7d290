package config

import (
	"io"
	"reflect"
	"testing"
)

// Environment tests use t.Setenv and therefore cannot run in parallel.

func TestEnvOverrides_Applied(t *testing.T) {
	t.Setenv("VECBENCH_N", "2048")
	t.Setenv("VECBENCH_THREADS", "6")
	t.Setenv("VECBENCH_CHUNK", "128")
	t.Setenv("VECBENCH_SEED", "99")
	t.Setenv("VECBENCH_SHOW", "4")
	t.Setenv("VECBENCH_REPEAT", "2")
	t.Setenv("VECBENCH_GC", "AGGRESSIVE")
	t.Setenv("VECBENCH_VERBOSE", "yes")
	t.Setenv("VECBENCH_METRICS", "1")

	cfg, err := ParseConfig("vecbench", nil, io.Discard)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if cfg.N != 2048 || cfg.Threads != 6 || cfg.ChunkSize != 128 || cfg.Seed != 99 || cfg.Show != 4 || cfg.Repeat != 2 {
		t.Errorf("numeric env overrides not applied: %+v", cfg)
	}
	if cfg.GCMode != "aggressive" || !cfg.Verbose || !cfg.Metrics {
		t.Errorf("string/bool env overrides not applied: %+v", cfg)
	}
}

func TestEnvOverrides_FlagWins(t *testing.T) {
	t.Setenv("VECBENCH_THREADS", "6")
	t.Setenv("VECBENCH_N", "10")

	cfg, err := ParseConfig("vecbench", []string{"-t", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Threads != 3 {
		t.Errorf("Threads = %d, want flag value 3", cfg.Threads)
	}
	if cfg.N != 10 {
		t.Errorf("N = %d, want env value 10", cfg.N)
	}
}

func TestEnvOverrides_InvalidValueKeepsDefault(t *testing.T) {
	t.Setenv("VECBENCH_CHUNK", "lots")
	t.Setenv("VECBENCH_QUIET", "maybe")

	cfg, err := ParseConfig("vecbench", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ChunkSize != 1000 || cfg.Quiet {
		t.Errorf("invalid env values changed config: %+v", cfg)
	}
}

func TestEnvOverrides_Sweep(t *testing.T) {
	t.Setenv("VECBENCH_SWEEP", "2,8")

	cfg, err := ParseConfig("vecbench", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if want := []int{2, 8}; !reflect.DeepEqual(cfg.Sweep, want) {
		t.Errorf("Sweep = %v, want %v", cfg.Sweep, want)
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"perhaps", true, true},
		{"perhaps", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
		}
	}
}
