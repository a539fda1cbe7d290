package tui

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/vecbench/internal/bench"
	"github.com/agbru/vecbench/internal/config"
	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/format"
	"github.com/agbru/vecbench/internal/orchestration"
	"github.com/agbru/vecbench/internal/sysmon"
)

// ExecutionState holds the execution-related fields of a TUI session.
type ExecutionState struct {
	ctx        context.Context
	cancel     context.CancelFunc
	runs       []bench.Config
	opts       []bench.Option
	generation uint64
	done       bool
	exitCode   int
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

// bodyHeight returns the available height for the main body panels.
func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-footerHeight, minBodyHeight)
}

// logsWidth returns the width allocated to the logs panel.
func (l LayoutManager) logsWidth() int {
	return l.width * LogsPanelWidthPercent / 100
}

// rightWidth returns the width allocated to the right column (metrics + chart).
func (l LayoutManager) rightWidth() int {
	return l.width - l.logsWidth()
}

// metricsHeight returns the height allocated to the metrics panel.
func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

// chartHeight returns the height allocated to the chart panel.
func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model for the TUI dashboard.
type Model struct {
	header  HeaderModel
	logs    LogsModel
	metrics MetricsModel
	chart   ChartModel
	footer  FooterModel

	keymap KeyMap

	ExecutionState
	LayoutManager

	parentCtx context.Context
	config    config.AppConfig
	ref       *programRef
	paused    bool
}

// NewModel creates a new TUI model running every benchmark of cfg.
func NewModel(parentCtx context.Context, cfg config.AppConfig, opts []bench.Option, version string) Model {
	runs := cfg.BenchConfigs()
	ctx, cancel := context.WithCancel(parentCtx)

	logs := NewLogsModel(runs)
	logs.AddExecutionConfig(cfg)
	keymap := DefaultKeyMap()

	return Model{
		header:  NewHeaderModel(version, workload(cfg)),
		logs:    logs,
		metrics: NewMetricsModel(),
		chart:   NewChartModel(),
		footer:  NewFooterModel(keymap),
		keymap:  keymap,
		ExecutionState: ExecutionState{
			ctx:      ctx,
			cancel:   cancel,
			runs:     runs,
			opts:     opts,
			exitCode: apperrors.ExitSuccess,
		},
		parentCtx: parentCtx,
		config:    cfg,
		ref:       &programRef{},
	}
}

func workload(cfg config.AppConfig) string {
	return fmt.Sprintf("N=%s chunk=%s", format.FormatInt(cfg.N), format.FormatInt(cfg.ChunkSize))
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return m.startCmds()
}

// startCmds launches the runs of the current generation together with the
// sampling tick and the cancellation watcher.
func (m Model) startCmds() tea.Cmd {
	return tea.Batch(
		tickCmd(),
		startRunsCmd(m.ref, m.ctx, m.runs, m.opts, m.config, m.generation),
		watchContextCmd(m.ctx, m.generation),
	)
}

// finish freezes the timers and marks the session done.
func (m *Model) finish() {
	m.done = true
	m.header.SetDone()
	m.footer.SetDone(true)
}

// current reports whether a message tagged with gen belongs to the runs on
// screen. Reruns bump the generation, so late messages of canceled runs
// are ignored.
func (m Model) current(gen uint64) bool { return gen == m.generation }

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case ProgressMsg:
		if !m.paused {
			m.logs.AddProgressEntry(msg)
			m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
			m.metrics.UpdateProgress(msg.AverageProgress)
		}
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case RunResultMsg:
		m.logs.AddRunResult(msg.Result)
		if msg.Result.Err == nil {
			m.metrics.SetResult(msg.Result.Result)
			if len(m.runs) == 1 {
				m.chart.AddSpeedup(msg.Result.Result.Speedup, msg.Result.Result.SpeedupOK)
			}
		}
		return m, nil

	case ComparisonResultsMsg:
		m.logs.AddResults(msg.Results)
		for _, r := range msg.Results {
			if r.Err == nil {
				m.chart.AddSpeedup(r.Result.Speedup, r.Result.SpeedupOK)
				m.metrics.SetResult(r.Result)
			}
		}
		return m, nil

	case ErrorMsg:
		m.logs.AddError(msg)
		m.footer.SetError(true)
		m.finish()
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if !m.paused {
			return m, tea.Batch(sampleMemStatsCmd(), sampleSysStatsCmd(m.ctx), tickCmd())
		}
		return m, tickCmd()

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		return m, nil

	case SysStatsMsg:
		m.chart.UpdateSysStats(msg.Usage)
		return m, nil

	case RunsCompleteMsg:
		if !m.current(msg.Generation) {
			return m, nil
		}
		m.exitCode = msg.ExitCode
		m.finish()
		m.chart.SetDone(m.header.Elapsed())
		return m, nil

	case ContextCancelledMsg:
		if !m.current(msg.Generation) {
			return m, nil
		}
		m.finish()
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.cancel != nil {
			m.cancel()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Pause):
		m.paused = !m.paused
		m.footer.SetPaused(m.paused)
		return m, nil

	case key.Matches(msg, m.keymap.Reset):
		cmd := m.restart()
		return m, cmd

	case key.Matches(msg, m.keymap.Up), key.Matches(msg, m.keymap.Down),
		key.Matches(msg, m.keymap.PageUp), key.Matches(msg, m.keymap.PageDown):
		m.logs.Update(msg)
		return m, nil
	}

	return m, nil
}

// restart cancels the runs in flight and starts the same configuration again
// under a new generation with cleared panels.
func (m *Model) restart() tea.Cmd {
	if m.cancel != nil {
		m.cancel()
	}
	m.generation++
	m.ctx, m.cancel = context.WithCancel(m.parentCtx)

	m.header.Reset()
	m.logs.Reset()
	m.chart.Reset()
	m.metrics = NewMetricsModel()
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.footer.SetDone(false)
	m.footer.SetError(false)
	m.footer.SetPaused(false)
	m.done, m.paused = false, false
	m.exitCode = apperrors.ExitSuccess

	return m.startCmds()
}

// View renders the entire dashboard.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	logs := m.logs.renderToHeight(lipgloss.Height(rightCol))
	body := lipgloss.JoinHorizontal(lipgloss.Top, logs, rightCol)

	return lipgloss.JoinVertical(lipgloss.Left, m.header.View(), body, m.footer.View())
}

// Layout constants for the TUI dashboard.
const (
	headerHeight          = 1
	footerHeight          = 1
	minBodyHeight         = 4
	LogsPanelWidthPercent = 60
	MetricsPanelHeight    = 6
)

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.footer.SetWidth(m.width)
	m.logs.SetSize(m.logsWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
}

// Run shows the dashboard until the user quits or ctx is canceled and
// returns the exit code of the last completed set of runs.
func Run(ctx context.Context, cfg config.AppConfig, opts []bench.Option, version string) int {
	initTUIStyles()

	model := NewModel(ctx, cfg, opts, version)
	defer model.cancel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	if err != nil {
		return apperrors.ExitErrorGeneric
	}

	if m, ok := finalModel.(Model); ok {
		m.cancel()
		return m.exitCode
	}
	return apperrors.ExitSuccess
}

// startRunsCmd returns a tea.Cmd that executes the runs through the
// orchestration layer and reports completion.
func startRunsCmd(ref *programRef, ctx context.Context, runs []bench.Config, opts []bench.Option, cfg config.AppConfig, gen uint64) tea.Cmd {
	return func() tea.Msg {
		reporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteRuns(ctx, runs, opts, reporter, io.Discard)
		presOpts := orchestration.PresentationOptions{Verbose: cfg.Verbose}
		exitCode := orchestration.AnalyzeRuns(results, presOpts, presenter, io.Discard)

		return RunsCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after 500ms.
func tickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapSys:      ms.HeapSys,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// sampleSysStatsCmd reads the host load and returns a SysStatsMsg.
func sampleSysStatsCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		return SysStatsMsg{Usage: sysmon.Sample(ctx)}
	}
}

// watchContextCmd waits for context cancellation and sends a message.
func watchContextCmd(ctx context.Context, gen uint64) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err(), Generation: gen}
	}
}
