package tui

import (
	"io"
	"sync"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/vecbench/internal/errors"
	"github.com/agbru/vecbench/internal/orchestration"
)

// programRef lets benchmark goroutines reach the running program. bubbletea
// copies the model on every Update, so the pointer lives outside the model.
// Messages sent before SetProgram are dropped.
type programRef struct {
	program atomic.Pointer[tea.Program]
}

func (r *programRef) SetProgram(p *tea.Program) { r.program.Store(p) }

func (r *programRef) Send(msg tea.Msg) {
	if p := r.program.Load(); p != nil {
		p.Send(msg)
	}
}

var (
	_ orchestration.ProgressReporter = (*TUIProgressReporter)(nil)
	_ orchestration.ResultPresenter  = (*TUIResultPresenter)(nil)
)

// TUIProgressReporter turns harness progress into ProgressMsg values for the
// dashboard, followed by a single ProgressDoneMsg when the channel closes.
type TUIProgressReporter struct {
	ref *programRef
}

// DisplayProgress implements orchestration.ProgressReporter.
func (t *TUIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numRuns int, _ io.Writer) {
	defer wg.Done()

	agg := orchestration.NewProgressAggregator(numRuns)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}
	for update := range progressChan {
		p := agg.Update(update)
		t.ref.Send(ProgressMsg{
			RunIndex:        p.RunIndex,
			Value:           p.Value,
			AverageProgress: p.AverageProgress,
			ETA:             p.ETA,
		})
	}
	t.ref.Send(ProgressDoneMsg{})
}

// TUIResultPresenter routes run results and errors to the dashboard panels
// instead of the terminal.
type TUIResultPresenter struct {
	ref *programRef
}

func (t *TUIResultPresenter) PresentResult(result orchestration.RunResult, opts orchestration.PresentationOptions, _ io.Writer) {
	t.ref.Send(RunResultMsg{Result: result, Verbose: opts.Verbose})
}

func (t *TUIResultPresenter) PresentComparisonTable(results []orchestration.RunResult, _ io.Writer) {
	t.ref.Send(ComparisonResultsMsg{Results: results})
}

// HandleError shows err in the log panel and maps it to an exit code. A nil
// error sends nothing.
func (t *TUIResultPresenter) HandleError(err error, _ io.Writer) int {
	if err != nil {
		t.ref.Send(ErrorMsg{Err: err})
	}
	return apperrors.ExitCodeFor(err)
}
