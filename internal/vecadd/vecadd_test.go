package vecadd

import (
	"errors"
	"slices"
	"testing"

	apperrors "github.com/agbru/vecbench/internal/errors"
)

func TestAddSerialAndParallel_Scenario(t *testing.T) {
	t.Parallel()
	a := []int{3, 1, 4, 1, 5}
	b := []int{9, 2, 6, 5, 3}
	want := []int{12, 3, 10, 6, 8}

	serial := make([]int, len(a))
	if err := AddSerial(serial, a, b); err != nil {
		t.Fatalf("AddSerial: %v", err)
	}
	r := make([]int, len(a))
	if _, err := AddParallel(r, a, b, 2, 2); err != nil {
		t.Fatalf("AddParallel: %v", err)
	}

	if !slices.Equal(serial, want) {
		t.Errorf("serial = %v, want %v", serial, want)
	}
	if !slices.Equal(r, want) {
		t.Errorf("parallel = %v, want %v", r, want)
	}
	if v := Validate(r, serial); !v.OK {
		t.Errorf("Validate reported %+v, want OK", v)
	}
}

func TestAddParallel_ChunkAndThreadInvariance(t *testing.T) {
	t.Parallel()
	const n = 100000
	a, b := Fill(n, DefaultSeed)
	want := make([]int, n)
	if err := AddSerial(want, a, b); err != nil {
		t.Fatal(err)
	}

	for _, threads := range []int{1, 2, 4, 8} {
		for _, chunk := range []int{1, 17, 1000, n} {
			r := make([]int, n)
			if _, err := AddParallel(r, a, b, threads, chunk); err != nil {
				t.Fatalf("threads=%d chunk=%d: %v", threads, chunk, err)
			}
			if v := Validate(r, want); !v.OK {
				t.Fatalf("threads=%d chunk=%d: mismatch at %d (%d != %d)", threads, chunk, v.Index, v.Got, v.Want)
			}
		}
	}
}

func TestAddParallel_Idempotent(t *testing.T) {
	t.Parallel()
	a, b := Fill(5000, DefaultSeed)
	first := make([]int, len(a))
	second := make([]int, len(a))

	if _, err := AddParallel(first, a, b, 4, 64); err != nil {
		t.Fatal(err)
	}
	if _, err := AddParallel(second, a, b, 4, 64); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(first, second) {
		t.Error("repeated parallel runs produced different results")
	}
}

func TestAddParallel_Stats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		n          int
		threads    int
		chunk      int
		wantUsed   int
		wantChunks int
	}{
		{"more chunks than threads", 10000, 4, 1000, 4, 10},
		{"fewer chunks than threads", 2500, 8, 1000, 8, 3},
		{"single chunk", 10, 4, 1000, 4, 1},
		{"input shorter than one chunk", 5, 4, 1000, 4, 1},
		{"default pool on one chunk", 1000, 2, 1000, 2, 1},
		{"two chunks for eight threads", 100000, 8, 50000, 8, 2},
		{"empty input spawns nothing", 0, 4, 1000, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a, b := Fill(tt.n, DefaultSeed)
			r := make([]int, tt.n)
			stats, err := AddParallel(r, a, b, tt.threads, tt.chunk)
			if err != nil {
				t.Fatal(err)
			}
			if stats.ThreadsRequested != tt.threads {
				t.Errorf("ThreadsRequested = %d, want %d", stats.ThreadsRequested, tt.threads)
			}
			if stats.ThreadsUsed != tt.wantUsed {
				t.Errorf("ThreadsUsed = %d, want %d", stats.ThreadsUsed, tt.wantUsed)
			}
			if stats.Chunks != tt.wantChunks {
				t.Errorf("Chunks = %d, want %d", stats.Chunks, tt.wantChunks)
			}
			if stats.GOMAXPROCS < 1 {
				t.Errorf("GOMAXPROCS = %d, want >= 1", stats.GOMAXPROCS)
			}
		})
	}
}

func TestAddParallel_InvalidArguments(t *testing.T) {
	t.Parallel()
	a := []int{1, 2, 3}
	b := []int{4, 5, 6}

	tests := []struct {
		name      string
		dst       []int
		b         []int
		threads   int
		chunk     int
		wantField string
		wantErr   error
	}{
		{name: "zero threads", dst: make([]int, 3), b: b, threads: 0, chunk: 1, wantField: "threads"},
		{name: "zero chunk", dst: make([]int, 3), b: b, threads: 1, chunk: 0, wantField: "chunk"},
		{name: "short dst", dst: make([]int, 2), b: b, threads: 1, chunk: 1, wantErr: ErrLengthMismatch},
		{name: "short b", dst: make([]int, 3), b: b[:1], threads: 1, chunk: 1, wantErr: ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := AddParallel(tt.dst, a, tt.b, tt.threads, tt.chunk)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantField != "" {
				var ve apperrors.ValidationError
				if !errors.As(err, &ve) || ve.Field != tt.wantField {
					t.Errorf("error = %v, want ValidationError on %q", err, tt.wantField)
				}
			}
		})
	}
}

func TestAddSerial_LengthMismatch(t *testing.T) {
	t.Parallel()
	if err := AddSerial(make([]int, 2), []int{1, 2}, []int{1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("AddSerial error = %v, want ErrLengthMismatch", err)
	}
}
