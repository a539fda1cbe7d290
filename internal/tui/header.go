package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/vecbench/internal/format"
)

// HeaderModel renders the top bar: title, version, workload and elapsed time.
type HeaderModel struct {
	startTime time.Time
	endTime   time.Time
	version   string
	workload  string
	width     int
}

// NewHeaderModel creates a new header. workload is a short description of
// the benchmark shown next to the title.
func NewHeaderModel(version, workload string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		workload:  workload,
	}
}

// SetDone freezes the elapsed timer at the current time.
func (h *HeaderModel) SetDone() {
	h.endTime = time.Now()
}

// Reset restarts the elapsed timer.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
	h.endTime = time.Time{}
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// Elapsed returns the time since start, frozen once SetDone was called.
func (h HeaderModel) Elapsed() time.Duration {
	if !h.endTime.IsZero() {
		return h.endTime.Sub(h.startTime)
	}
	return time.Since(h.startTime)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "vecbench"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	parts := []string{titleStyle.Render(titleText)}
	if h.workload != "" {
		parts = append(parts, versionStyle.Render(h.workload))
	}
	parts = append(parts, elapsedStyle.Render(fmt.Sprintf("Elapsed: %s", format.FormatExecutionDuration(h.Elapsed()))))
	row := strings.Join(parts, versionStyle.Render(" | "))

	gap := max(h.width-2-lipgloss.Width(row), 0)
	return headerStyle.Width(h.width).Render(row + strings.Repeat(" ", gap))
}
