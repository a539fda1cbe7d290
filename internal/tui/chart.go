package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/agbru/vecbench/internal/format"
	"github.com/agbru/vecbench/internal/sysmon"
)

// sparklineCapacity is the number of system samples kept for the sparklines.
const sparklineCapacity = 60

// ChartModel renders the overall progress bar, system usage sparklines and
// the speedup of each completed run.
type ChartModel struct {
	averageProgress float64
	eta             time.Duration
	elapsed         time.Duration
	done            bool
	cpuHistory      *RingBuffer
	memHistory      *RingBuffer
	busiestCPU      float64
	speedups        []float64
	width           int
	height          int
}

// NewChartModel creates an empty chart.
func NewChartModel() ChartModel {
	return ChartModel{
		cpuHistory: NewRingBuffer(sparklineCapacity),
		memHistory: NewRingBuffer(sparklineCapacity),
	}
}

// SetSize updates dimensions and resizes the sparkline history to fit.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	if n := c.sparklineWidth(); n > 0 {
		c.cpuHistory.Resize(n)
		c.memHistory.Resize(n)
	}
}

// AddDataPoint records an aggregated progress update.
func (c *ChartModel) AddDataPoint(_ float64, average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
}

// UpdateSysStats appends a host load sample.
func (c *ChartModel) UpdateSysStats(u sysmon.Usage) {
	c.cpuHistory.Push(u.CPUPercent)
	c.memHistory.Push(u.MemPercent)
	c.busiestCPU = u.BusiestCPU
}

// AddSpeedup records the speedup of a completed run. Runs without a
// measurable parallel time are recorded as 0.
func (c *ChartModel) AddSpeedup(speedup float64, ok bool) {
	if !ok {
		speedup = 0
	}
	c.speedups = append(c.speedups, speedup)
}

// SetDone freezes the chart with the total elapsed time.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.done = true
	c.elapsed = elapsed
	c.averageProgress = 1
	c.eta = 0
}

// Reset clears every sample.
func (c *ChartModel) Reset() {
	c.averageProgress = 0
	c.eta = 0
	c.elapsed = 0
	c.done = false
	c.cpuHistory.Reset()
	c.memHistory.Reset()
	c.busiestCPU = 0
	c.speedups = nil
}

// sparklineReserve is the width of a sparkline row not taken by samples:
// borders, the label, and the value column including the busiest core.
const sparklineReserve = 24

func (c ChartModel) sparklineWidth() int {
	return c.width - sparklineReserve
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(" Progress Chart"))
	b.WriteString("\n")

	barWidth := max(c.width-34, 10)
	fmt.Fprintf(&b, " %s %6.2f%%", c.renderProgressBar(barWidth), c.averageProgress*100)
	if c.done {
		fmt.Fprintf(&b, "  %s %s", metricLabelStyle.Render("Done in"), format.FormatExecutionDuration(c.elapsed))
	} else {
		fmt.Fprintf(&b, "  %s %s", metricLabelStyle.Render("ETA:"), format.FormatETA(c.eta))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, " %s %s %s\n", metricLabelStyle.Render("CPU"),
		cpuSparklineStyle.Render(RenderSparkline(c.cpuHistory.Slice())),
		metricValueStyle.Render(fmt.Sprintf("%.0f%% (core %.0f%%)", c.cpuHistory.Last(), c.busiestCPU)))
	fmt.Fprintf(&b, " %s %s %s\n", metricLabelStyle.Render("MEM"),
		memSparklineStyle.Render(RenderSparkline(c.memHistory.Slice())),
		metricValueStyle.Render(fmt.Sprintf("%.0f%%", c.memHistory.Last())))

	if len(c.speedups) > 0 {
		ceiling := slices.Max(c.speedups)
		fmt.Fprintf(&b, " %s %s %s\n", metricLabelStyle.Render("Speedup"),
			speedupStyle.Render(RenderScaledSparkline(c.speedups, ceiling)),
			metricValueStyle.Render(format.FormatSpeedup(ceiling)+" max"))
	}

	return panelStyle.
		Width(max(c.width-2, 0)).
		Height(max(c.height-2, 0)).
		Render(b.String())
}

func (c ChartModel) renderProgressBar(width int) string {
	filled := min(max(int(c.averageProgress*float64(width)), 0), width)
	return chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", width-filled))
}
