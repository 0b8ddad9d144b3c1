// Package term provides ANSI color state and terminal detection.
//
// Colors are package-level variables because multiple packages (logging,
// display) need them for output formatting. [Configure] sets them once
// during startup; when colors are disabled the variables are empty strings,
// making string concatenation a no-op.
package term

import (
	"os"
	"strings"

	"github.com/stillcut/stillcut/internal/config"
)

// ANSI color codes. Empty when colors are disabled.
var (
	Red     = ""
	Green   = ""
	Yellow  = ""
	Blue    = ""
	Cyan    = ""
	Magenta = ""
	NC      = "" // Reset sequence.
)

// bright bold palette, indexed in the same order as the variables above
var palette = [...]string{
	"\033[1;91m", "\033[1;92m", "\033[1;93m", "\033[1;94m", "\033[1;96m", "\033[1;95m",
}

// Configure resolves the color mode and sets the package-level ANSI
// variables. Call once during startup (from [logging.NewLogger]).
func Configure(mode config.ColorMode) {
	targets := []*string{&Red, &Green, &Yellow, &Blue, &Cyan, &Magenta}
	if !colorsWanted(mode) {
		for _, t := range targets {
			*t = ""
		}
		NC = ""
		return
	}
	for i, t := range targets {
		*t = palette[i]
	}
	NC = "\033[0m"
}

// Enabled reports whether ANSI colors are currently active.
func Enabled() bool { return NC != "" }

// colorsWanted applies the precedence: explicit mode first, then TTY
// detection and the NO_COLOR convention (https://no-color.org).
func colorsWanted(mode config.ColorMode) bool {
	if mode == config.ColorAlways {
		return true
	}
	if mode == config.ColorNever {
		return false
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		return false
	}
	if strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is attached to a TTY (character device).
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
