package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// FooterModel renders the key help and the run status.
type FooterModel struct {
	bindings []key.Binding
	paused   bool
	done     bool
	hasError bool
	width    int
}

// NewFooterModel creates a footer showing the given bindings.
func NewFooterModel(km KeyMap) FooterModel {
	return FooterModel{bindings: km.ShortHelp()}
}

// SetWidth updates the available width.
func (f *FooterModel) SetWidth(w int) { f.width = w }

// SetPaused toggles the paused indicator.
func (f *FooterModel) SetPaused(p bool) { f.paused = p }

// SetDone marks the runs as finished.
func (f *FooterModel) SetDone(d bool) { f.done = d }

// SetError marks the runs as failed.
func (f *FooterModel) SetError(e bool) { f.hasError = e }

// View renders the footer.
func (f FooterModel) View() string {
	var status string
	switch {
	case f.hasError:
		status = statusErrorStyle.Render("ERROR")
	case f.done:
		status = statusDoneStyle.Render("DONE")
	case f.paused:
		status = statusPausedStyle.Render("PAUSED")
	default:
		status = statusRunningStyle.Render("RUNNING")
	}

	help := make([]string, 0, len(f.bindings))
	for _, b := range f.bindings {
		h := b.Help()
		help = append(help, footerKeyStyle.Render(h.Key)+" "+footerDescStyle.Render(h.Desc))
	}
	return " " + status + "  " + strings.Join(help, "  ")
}
