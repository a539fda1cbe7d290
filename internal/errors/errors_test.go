package apperrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestConfigError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		err         error
		expected    string
		checkTypeAs bool
	}{
		{
			name:     "Error returns message",
			err:      ConfigError{Message: "invalid flag value"},
			expected: "invalid flag value",
		},
		{
			name:     "NewConfigError creates formatted error",
			err:      NewConfigError("invalid value %d for flag %s", 0, "-threads"),
			expected: "invalid value 0 for flag -threads",
		},
		{
			name:        "ConfigError type assertion",
			err:         NewConfigError("bad sweep"),
			expected:    "bad sweep",
			checkTypeAs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.err.Error() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, tt.err.Error())
			}
			if tt.checkTypeAs {
				var configErr ConfigError
				if !errors.As(tt.err, &configErr) {
					t.Error("expected error to be ConfigError type")
				}
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Parallel()
	err := ValidationError{Field: "chunk", Message: "must be >= 1"}
	want := `validation error for "chunk": must be >= 1`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestMismatchError(t *testing.T) {
	t.Parallel()
	err := MismatchError{Index: 2, Got: 999, Want: 10}
	want := "result mismatch at i=2: parallel=999 serial=10"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}

	wrapped := fmt.Errorf("run 1: %w", err)
	var target MismatchError
	if !errors.As(wrapped, &target) {
		t.Fatal("errors.As should find MismatchError through wrapping")
	}
	if target.Index != 2 {
		t.Errorf("Index = %d, want 2", target.Index)
	}
}

func TestRunError(t *testing.T) {
	t.Parallel()
	cause := errors.New("boom")
	err := RunError{Phase: "parallel", Cause: cause}

	if err.Error() != "parallel phase: boom" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should match the cause")
	}
}

func TestWrapError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		err     error
		format  string
		args    []any
		wantNil bool
		wantMsg string
	}{
		{name: "nil stays nil", err: nil, format: "context", wantNil: true},
		{name: "simple wrap", err: errors.New("inner"), format: "outer", wantMsg: "outer: inner"},
		{name: "formatted wrap", err: errors.New("inner"), format: "run %d", args: []any{3}, wantMsg: "run 3: inner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := WrapError(tt.err, tt.format, tt.args...)
			if tt.wantNil {
				if got != nil {
					t.Errorf("expected nil, got %v", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("got %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should unwrap to the original")
			}
		})
	}
}

func TestIsContextError(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"deadline", context.DeadlineExceeded, true},
		{"wrapped canceled", fmt.Errorf("x: %w", context.Canceled), true},
		{"other", errors.New("other"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsContextError(tt.err); got != tt.want {
				t.Errorf("IsContextError(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"config", NewConfigError("bad"), ExitErrorConfig},
		{"validation", ValidationError{Field: "threads", Message: "must be >= 1"}, ExitErrorConfig},
		{"mismatch", MismatchError{Index: 1}, ExitErrorMismatch},
		{"canceled", RunError{Phase: "fill", Cause: context.Canceled}, ExitErrorCanceled},
		{"generic", errors.New("x"), ExitErrorGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ExitCodeFor(tt.err); got != tt.want {
				t.Errorf("ExitCodeFor() = %d, want %d", got, tt.want)
			}
		})
	}
}
