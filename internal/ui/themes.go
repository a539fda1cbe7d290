package ui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the ANSI escape codes used by the text report. Fields are named
// after what they color in a report, not after the color itself.
type Theme struct {
	Name string

	// Value colors measured numbers: times, throughputs, speedups.
	Value string
	// Label colors section headers and secondary text.
	Label string
	// Pass and Fail color the validation status and comparison rows.
	Pass string
	Fail string
	// Warn colors notes that do not change the outcome, such as an
	// unavailable speedup.
	Warn string
	// Note colors configuration values echoed back to the user.
	Note string

	Bold      string
	Underline string
	Reset     string
}

// TUITheme is the lipgloss palette of the dashboard.
type TUITheme struct {
	Bg      lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

const (
	bold      = "\033[1m"
	underline = "\033[4m"
	reset     = "\033[0m"
)

func ansi256(code string) string { return "\033[38;5;" + code + "m" }

var (
	// DarkTheme suits dark terminal backgrounds.
	DarkTheme = Theme{
		Name:  "dark",
		Value: ansi256("39"), Label: ansi256("245"),
		Pass: ansi256("82"), Fail: ansi256("196"),
		Warn: ansi256("220"), Note: ansi256("141"),
		Bold: bold, Underline: underline, Reset: reset,
	}

	// LightTheme suits light terminal backgrounds.
	LightTheme = Theme{
		Name:  "light",
		Value: ansi256("27"), Label: ansi256("240"),
		Pass: ansi256("28"), Fail: ansi256("124"),
		Warn: ansi256("130"), Note: ansi256("54"),
		Bold: bold, Underline: underline, Reset: reset,
	}

	// NoColorTheme emits no escape codes at all.
	NoColorTheme = Theme{Name: "none"}

	DarkTUITheme = TUITheme{
		Bg:      lipgloss.Color("#000000"),
		Text:    lipgloss.Color("#E0E0E0"),
		Border:  lipgloss.Color("#FF6600"),
		Accent:  lipgloss.Color("#FF8C00"),
		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB347"),
		Error:   lipgloss.Color("#FF4444"),
		Dim:     lipgloss.Color("#666666"),
		Info:    lipgloss.Color("#4488FF"),
	}

	LightTUITheme = TUITheme{
		Bg:      lipgloss.Color("#FFFFFF"),
		Text:    lipgloss.Color("#1F1F1F"),
		Border:  lipgloss.Color("#005FAF"),
		Accent:  lipgloss.Color("#005FD7"),
		Success: lipgloss.Color("#008700"),
		Warning: lipgloss.Color("#AF5F00"),
		Error:   lipgloss.Color("#AF0000"),
		Dim:     lipgloss.Color("#808080"),
		Info:    lipgloss.Color("#5F00AF"),
	}

	// NoColorTUITheme renders with the terminal's default colors.
	NoColorTUITheme = TUITheme{
		Bg:      lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
		Border:  lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Dim:     lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
	}
)

var (
	themeMutex   sync.RWMutex
	currentTheme = DarkTheme
)

// GetCurrentTUITheme returns the dashboard palette paired with the active
// report theme.
func GetCurrentTUITheme() TUITheme {
	switch GetCurrentTheme().Name {
	case NoColorTheme.Name:
		return NoColorTUITheme
	case LightTheme.Name:
		return LightTUITheme
	default:
		return DarkTUITheme
	}
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates a theme by name: "dark", "light" or "none". Anything
// else selects dark.
func SetTheme(name string) {
	SetCurrentTheme(themeByName(name))
}

func themeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case LightTheme.Name:
		return LightTheme
	case NoColorTheme.Name:
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme picks the theme at startup. The -no-color flag and a set NO_COLOR
// variable (https://no-color.org/) both disable colors; otherwise
// VECBENCH_THEME names the theme.
func InitTheme(noColor bool) {
	if _, set := os.LookupEnv("NO_COLOR"); noColor || set {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetTheme(os.Getenv("VECBENCH_THEME"))
}
