package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/config"
	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/orchestration"
)

func testAppConfig() config.AppConfig {
	return config.AppConfig{N: 256, Threads: 2, ChunkSize: 16, Seed: 7, Show: 4, Repeat: 1, GCMode: "auto"}
}

func newTestModel(t *testing.T, cfg config.AppConfig) Model {
	t.Helper()
	m := NewModel(t.Context(), cfg, nil, "v1.0.0")
	t.Cleanup(m.cancel)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 40})
	return updated.(Model)
}

func TestModel_ViewBeforeResize(t *testing.T) {
	t.Parallel()
	m := NewModel(t.Context(), testAppConfig(), nil, "dev")
	defer m.cancel()
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View() = %q before the first resize", got)
	}
}

func TestModel_SweepCreatesOneRunPerThreadCount(t *testing.T) {
	t.Parallel()
	cfg := testAppConfig()
	cfg.Sweep = []int{1, 2, 4}
	m := newTestModel(t, cfg)
	if len(m.runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(m.runs))
	}
	if m.runs[2].Threads != 4 {
		t.Errorf("third run threads = %d, want 4", m.runs[2].Threads)
	}
}

func TestModel_UpdateFlow(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testAppConfig())

	updated, _ := m.Update(ProgressMsg{RunIndex: 0, Value: 0.5, AverageProgress: 0.5, ETA: time.Second})
	m = updated.(Model)
	if m.chart.averageProgress != 0.5 {
		t.Errorf("chart progress = %f, want 0.5", m.chart.averageProgress)
	}

	res, err := bench.Run(t.Context(), m.runs[0])
	if err != nil {
		t.Fatal(err)
	}
	updated, _ = m.Update(RunResultMsg{Result: orchestration.RunResult{Config: m.runs[0], Result: res}})
	m = updated.(Model)
	if m.metrics.latest == nil {
		t.Error("metrics did not record the run result")
	}

	updated, _ = m.Update(RunsCompleteMsg{ExitCode: apperrors.ExitSuccess, Generation: m.generation + 1})
	m = updated.(Model)
	if m.done {
		t.Error("stale completion message should be ignored")
	}

	updated, _ = m.Update(RunsCompleteMsg{ExitCode: apperrors.ExitSuccess, Generation: m.generation})
	m = updated.(Model)
	if !m.done || !m.chart.done {
		t.Error("completion message not applied")
	}

	view := m.View()
	for _, want := range []string{"vecbench v1.0.0", "N=256", "Progress Chart", "DONE"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModel_Keys(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testAppConfig())

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	m = updated.(Model)
	if !m.paused {
		t.Error("space should pause")
	}

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = updated.(Model)
	if m.generation != 1 || m.paused || cmd == nil {
		t.Errorf("rerun not applied: generation=%d paused=%v", m.generation, m.paused)
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.ctx.Err() == nil {
		t.Error("quit should cancel the run context")
	}
}

func TestModel_ErrorMsg(t *testing.T) {
	t.Parallel()
	m := newTestModel(t, testAppConfig())
	updated, _ := m.Update(ErrorMsg{Err: context.Canceled})
	m = updated.(Model)
	if !m.done || !m.footer.hasError {
		t.Error("error message should finish the session with an error status")
	}
}

func TestStartRunsCmd(t *testing.T) {
	t.Parallel()
	cfg := testAppConfig()
	cfg.Sweep = []int{1, 2}
	msg := startRunsCmd(&programRef{}, t.Context(), cfg.BenchConfigs(), nil, cfg, 3)()

	done, ok := msg.(RunsCompleteMsg)
	if !ok {
		t.Fatalf("expected RunsCompleteMsg, got %T", msg)
	}
	if done.ExitCode != apperrors.ExitSuccess || done.Generation != 3 {
		t.Errorf("got %+v", done)
	}
}

func TestWatchContextCmd(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	msg := watchContextCmd(ctx, 2)().(ContextCancelledMsg)
	if msg.Generation != 2 || msg.Err == nil {
		t.Errorf("got %+v", msg)
	}
}
