package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/format"
)

// MetricsModel displays runtime memory statistics and the figures of the
// latest completed run.
type MetricsModel struct {
	alloc        uint64
	heapSys      uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int
	speed        float64 // progress per second
	lastProgress float64
	lastUpdate   time.Time
	latest       *bench.Result
	width        int
	height       int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapSys = msg.HeapSys
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress updates the smoothed progress rate. Samples closer than
// 50ms to the previous one are ignored.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt <= 0.05 {
		return
	}
	if dp := progress - m.lastProgress; dp > 0 {
		instant := dp / dt
		if m.speed > 0 {
			m.speed = 0.7*m.speed + 0.3*instant
		} else {
			m.speed = instant
		}
	}
	m.lastProgress = progress
	m.lastUpdate = now
}

// SetResult stores the latest completed run.
func (m *MetricsModel) SetResult(res bench.Result) {
	m.latest = &res
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder

	heapStr := metricValueStyle.Render(format.FormatBytes(m.alloc) + " / " + format.FormatBytes(m.heapSys))
	gcStr := metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6))
	fmt.Fprintf(&rows, "  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		metricLabelStyle.Render(" | "),
		metricLabelStyle.Render("GC:"), gcStr)

	colWidth := (m.width - 6) / 2
	leftCol := []string{
		formatMetricCol("Pace:", fmt.Sprintf("%.1f%%/s", m.speed*100), colWidth),
	}
	rightCol := []string{
		formatMetricCol("Goroutines:", fmt.Sprintf("%d", m.numGoroutine), colWidth),
	}

	if r := m.latest; r != nil {
		speedup := "n/a"
		if r.SpeedupOK {
			speedup = format.FormatSpeedup(r.Speedup)
		}
		leftCol = append(leftCol,
			formatMetricCol("Threads:", fmt.Sprintf("%d of %d", r.Parallel.ThreadsUsed, r.Parallel.ThreadsRequested), colWidth),
			formatMetricCol("Serial:", format.FormatThroughput(r.SerialThroughput), colWidth),
		)
		rightCol = append(rightCol,
			formatMetricCol("Speedup:", speedup, colWidth),
			formatMetricCol("Parallel:", format.FormatThroughput(r.ParallelThroughput), colWidth),
		)
	}

	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	return panelStyle.
		Width(max(m.width-2, 0)).
		Height(max(m.height-2, 0)).
		Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-11s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
