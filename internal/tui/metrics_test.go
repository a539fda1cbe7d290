package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/vecadd"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()

	msg := MemStatsMsg{
		Alloc:        1024 * 1024 * 50,
		HeapSys:      1024 * 1024 * 80,
		NumGC:        10,
		PauseTotalNs: 2_000_000,
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.alloc != msg.Alloc || m.heapSys != msg.HeapSys || m.numGC != msg.NumGC || m.numGoroutine != msg.NumGoroutine {
		t.Errorf("mem stats not stored: %+v", m)
	}
}

func TestMetricsModel_UpdateProgress(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		age          time.Duration
		lastProgress float64
		progress     float64
		wantSpeed    bool
	}{
		{"forward progress", time.Second, 0, 0.5, true},
		{"too fast", 0, 0, 0.5, false},
		{"no forward progress", time.Second, 0.5, 0.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m := NewMetricsModel()
			m.lastUpdate = time.Now().Add(-tt.age)
			m.lastProgress = tt.lastProgress

			m.UpdateProgress(tt.progress)
			if got := m.speed > 0; got != tt.wantSpeed {
				t.Errorf("speed = %f, want positive = %v", m.speed, tt.wantSpeed)
			}
		})
	}
}

func TestMetricsModel_UpdateProgress_Smoothing(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.lastUpdate = time.Now().Add(-time.Second)
	m.UpdateProgress(0.3)
	first := m.speed

	m.lastUpdate = time.Now().Add(-500 * time.Millisecond)
	m.UpdateProgress(0.8)

	if first <= 0 || m.speed <= 0 {
		t.Fatalf("expected positive speeds, got %f then %f", first, m.speed)
	}
	if m.speed == first {
		t.Error("expected speed to change after an update at a different rate")
	}
}

func TestMetricsModel_View(t *testing.T) {
	t.Parallel()
	m := NewMetricsModel()
	m.SetSize(60, 8)
	m.UpdateMemStats(MemStatsMsg{Alloc: 1 << 20, HeapSys: 4 << 20, NumGC: 3, NumGoroutine: 5})

	view := m.View()
	for _, want := range []string{"Heap:", "GC:", "Pace:", "Goroutines:"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Speedup:") {
		t.Error("speedup shown before any result")
	}

	m.SetResult(bench.Result{
		Speedup:   1.5,
		SpeedupOK: true,
		Parallel:  vecadd.Stats{ThreadsRequested: 4, ThreadsUsed: 3},
	})
	view = m.View()
	for _, want := range []string{"Speedup:", "1.50x", "3 of 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}

func TestFormatMetricCol(t *testing.T) {
	t.Parallel()
	cell := formatMetricCol("Label:", "v", 30)
	if !strings.Contains(cell, "Label:") || !strings.Contains(cell, "v") {
		t.Errorf("unexpected cell %q", cell)
	}
}
