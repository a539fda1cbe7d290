package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/config"
	"github.com/agbru/vecbench/internal/format"
	"github.com/agbru/vecbench/internal/orchestration"
)

// progressMilestones is the number of progress entries logged per run.
const progressMilestones = 4

// LogsModel is the scrollable event log: configuration, per-run progress
// milestones, results and errors.
type LogsModel struct {
	runLabels []string
	logged    []int
	entries   []string
	viewport  viewport.Model
	width     int
	height    int
	now       func() time.Time
}

// NewLogsModel creates a log for the given run configurations.
func NewLogsModel(cfgs []bench.Config) LogsModel {
	labels := make([]string, len(cfgs))
	for i, c := range cfgs {
		labels[i] = fmt.Sprintf("%d threads", c.Threads)
	}
	return LogsModel{
		runLabels: labels,
		logged:    make([]int, len(cfgs)),
		viewport:  viewport.New(0, 0),
		now:       time.Now,
	}
}

// SetSize updates dimensions.
func (l *LogsModel) SetSize(w, h int) {
	l.width = w
	l.height = h
	l.viewport.Width = max(w-4, 0)
	l.viewport.Height = max(h-2, 0)
	l.refresh()
}

func (l *LogsModel) add(line string) {
	ts := logTimeStyle.Render(l.now().Format("15:04:05"))
	l.entries = append(l.entries, ts+" "+line)
	l.refresh()
}

func (l *LogsModel) refresh() {
	atBottom := l.viewport.AtBottom()
	l.viewport.SetContent(strings.Join(l.entries, "\n"))
	if atBottom {
		l.viewport.GotoBottom()
	}
}

func (l LogsModel) label(i int) string {
	if i >= 0 && i < len(l.runLabels) {
		return l.runLabels[i]
	}
	return fmt.Sprintf("run %d", i+1)
}

// AddExecutionConfig logs the benchmark configuration.
func (l *LogsModel) AddExecutionConfig(cfg config.AppConfig) {
	l.add(fmt.Sprintf("N=%s chunk=%s seed=%d repeat=%d",
		format.FormatInt(cfg.N), format.FormatInt(cfg.ChunkSize), cfg.Seed, cfg.Repeat))
	if len(cfg.Sweep) > 0 {
		l.add(fmt.Sprintf("Sweep over %d thread counts", len(cfg.Sweep)))
	}
}

// AddProgressEntry logs a run's progress each time it crosses a quarter.
func (l *LogsModel) AddProgressEntry(msg ProgressMsg) {
	if msg.RunIndex < 0 || msg.RunIndex >= len(l.logged) {
		return
	}
	milestone := int(msg.Value * progressMilestones)
	if milestone <= l.logged[msg.RunIndex] {
		return
	}
	l.logged[msg.RunIndex] = milestone
	l.add(fmt.Sprintf("%s %s",
		logRunStyle.Render(l.label(msg.RunIndex)),
		logProgressStyle.Render(fmt.Sprintf("%3.0f%%", float64(milestone)*100/progressMilestones))))
}

// AddRunResult logs the figures and samples of one run.
func (l *LogsModel) AddRunResult(run orchestration.RunResult) {
	res := run.Result
	status := logSuccessStyle.Render(res.Validation.Status())
	if !res.Validation.OK {
		status = logErrorStyle.Render(res.Validation.Status())
	}
	l.add(fmt.Sprintf("%s serial %s, parallel %s, %s",
		logRunStyle.Render(fmt.Sprintf("%d threads (%d used)", res.Parallel.ThreadsRequested, res.Parallel.ThreadsUsed)),
		format.FormatMillis(res.SerialTime), format.FormatMillis(res.ParallelTime), status))
	if res.SpeedupOK {
		l.add("Speedup " + format.FormatSpeedup(res.Speedup))
	}
	if err := res.Validation.Err(); err != nil {
		l.add(logErrorStyle.Render(err.Error()))
	}
	n := min(res.Config.Display, len(res.R))
	for i := 0; i < n; i++ {
		l.add(fmt.Sprintf("%4d | %2d + %2d = %3d", i, res.A[i], res.B[i], res.R[i]))
	}
}

// AddResults logs a comparison table of several runs.
func (l *LogsModel) AddResults(results []orchestration.RunResult) {
	l.add(tableHeaderStyle.Render(fmt.Sprintf("%7s %4s %12s %12s %8s %s", "Threads", "Used", "Serial", "Parallel", "Speedup", "Status")))
	for _, run := range results {
		if run.Err != nil {
			l.add(fmt.Sprintf("%7d %s", run.Config.Threads, logErrorStyle.Render("ERR "+run.Err.Error())))
			continue
		}
		res := run.Result
		speedup := "n/a"
		if res.SpeedupOK {
			speedup = format.FormatSpeedup(res.Speedup)
		}
		status := logSuccessStyle.Render(res.Validation.Status())
		if !res.Validation.OK {
			status = logErrorStyle.Render(res.Validation.Status())
		}
		l.add(fmt.Sprintf("%7d %4d %12s %12s %8s %s", run.Config.Threads, res.Parallel.ThreadsUsed,
			format.FormatMillis(res.SerialTime), format.FormatMillis(res.ParallelTime), speedup, status))
	}
}

// AddError logs a run error.
func (l *LogsModel) AddError(msg ErrorMsg) {
	l.add(logErrorStyle.Render("Error: " + msg.Err.Error()))
}

// Reset clears the log.
func (l *LogsModel) Reset() {
	l.entries = nil
	clear(l.logged)
	l.refresh()
}

// Update scrolls the log.
func (l *LogsModel) Update(msg tea.Msg) {
	l.viewport, _ = l.viewport.Update(msg)
}

// View renders the log panel at its configured height.
func (l LogsModel) View() string {
	return l.renderToHeight(l.height)
}

// renderToHeight renders the log panel with the given outer height.
func (l LogsModel) renderToHeight(h int) string {
	vp := l.viewport
	vp.Height = max(h-2, 0)
	return panelStyle.
		Width(max(l.width-2, 0)).
		Height(max(h-2, 0)).
		Render(vp.View())
}
