package ui

// Color accessors return the escape code of the active theme. They return
// empty strings when colors are disabled, so callers can always interpolate
// them.

func ColorReset() string     { return GetCurrentTheme().Reset }
func ColorRed() string       { return GetCurrentTheme().Fail }
func ColorGreen() string     { return GetCurrentTheme().Pass }
func ColorYellow() string    { return GetCurrentTheme().Warn }
func ColorBlue() string      { return GetCurrentTheme().Value }
func ColorMagenta() string   { return GetCurrentTheme().Note }
func ColorCyan() string      { return GetCurrentTheme().Label }
func ColorBold() string      { return GetCurrentTheme().Bold }
func ColorUnderline() string { return GetCurrentTheme().Underline }

// StatusColor returns the pass color when ok is true and the fail color
// otherwise.
func StatusColor(ok bool) string {
	if ok {
		return ColorGreen()
	}
	return ColorRed()
}
