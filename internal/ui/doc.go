// Package ui holds the color themes shared by the text report and the
// dashboard. Report code reads escape codes through the Color* accessors;
// the dashboard reads a lipgloss palette from GetCurrentTUITheme.
package ui
