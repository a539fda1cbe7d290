package tui

import (
	"slices"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

func TestDefaultKeyMap_AllBindingsDefined(t *testing.T) {
	t.Parallel()
	km := DefaultKeyMap()

	bindings := []struct {
		name    string
		binding key.Binding
	}{
		{"Quit", km.Quit},
		{"Pause", km.Pause},
		{"Reset", km.Reset},
		{"Up", km.Up},
		{"Down", km.Down},
		{"PageUp", km.PageUp},
		{"PageDown", km.PageDown},
	}

	for _, b := range bindings {
		t.Run(b.name, func(t *testing.T) {
			if !b.binding.Enabled() {
				t.Errorf("expected %s binding to be enabled", b.name)
			}
			if len(b.binding.Keys()) == 0 {
				t.Errorf("expected %s binding to have at least one key", b.name)
			}
			if b.binding.Help().Key == "" {
				t.Errorf("expected %s binding to have help text", b.name)
			}
		})
	}
}

func TestDefaultKeyMap_QuitKeys(t *testing.T) {
	t.Parallel()
	keys := DefaultKeyMap().Quit.Keys()
	for _, want := range []string{"q", "ctrl+c"} {
		if !slices.Contains(keys, want) {
			t.Errorf("expected Quit binding to include %q, got %v", want, keys)
		}
	}
}

func TestFooterModel_View(t *testing.T) {
	t.Parallel()
	f := NewFooterModel(DefaultKeyMap())
	tests := []struct {
		name  string
		setup func(*FooterModel)
		want  string
	}{
		{"running", func(*FooterModel) {}, "RUNNING"},
		{"paused", func(f *FooterModel) { f.SetPaused(true) }, "PAUSED"},
		{"done", func(f *FooterModel) { f.SetDone(true) }, "DONE"},
		{"error wins", func(f *FooterModel) { f.SetDone(true); f.SetError(true) }, "ERROR"},
	}
	for _, tt := range tests {
		ff := f
		tt.setup(&ff)
		view := ff.View()
		if !strings.Contains(view, tt.want) || !strings.Contains(view, "quit") {
			t.Errorf("%s: footer %q missing %q", tt.name, view, tt.want)
		}
	}
}
