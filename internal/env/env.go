// Package env detects the terminal environment the toolkit runs in. It is
// the analogue of a browser library checking for a DOM and querying
// matchMedia: when there is no interactive terminal, callers degrade to
// logged no-ops instead of failing.
package env

import (
	"os"
	"strconv"

	"golang.org/x/term"
)

// isTerminal is replaced in tests.
var isTerminal = func(fd uintptr) bool { return term.IsTerminal(int(fd)) }

// Interactive reports whether stdout is attached to a terminal. All
// rendering and announcement paths should check this before mutating the
// screen.
func Interactive() bool {
	return isTerminal(os.Stdout.Fd())
}

// ReducedMotion reports whether the user asked for reduced motion, via
// FOKUS_REDUCE_MOTION or persisted preferences surfaced as env by the
// host.
func ReducedMotion() bool {
	return boolEnv("FOKUS_REDUCE_MOTION")
}

// HighContrast reports whether the user asked for a high-contrast
// presentation, via FOKUS_HIGH_CONTRAST.
func HighContrast() bool {
	return boolEnv("FOKUS_HIGH_CONTRAST")
}

// NoColor honors the NO_COLOR convention: any non-empty value disables
// color output.
func NoColor() bool {
	return os.Getenv("NO_COLOR") != ""
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		// Any set-but-unparseable value counts as enabled, like NO_COLOR.
		return true
	}
	return b
}
