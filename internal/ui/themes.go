// Package ui provides theme and color support for the calculator's output.
// It centralizes the ANSI escape codes so the CLI and the error reporting
// paths style their output consistently, and so color can be switched off
// in one place.
package ui

import (
	"os"
	"sync"
)

// Theme is a named set of ANSI escape codes, one per color category.
type Theme struct {
	// Name identifies the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes or completed operations.
	Success string
	// Warning is used for caution messages or non-critical issues.
	Warning string
	// Error indicates failures.
	Error string
	// Info is used for informational messages.
	Info string
	// Bold is the escape code for bold text.
	Bold string
	// Underline is the escape code for underlined text.
	Underline string
	// Reset clears all formatting.
	Reset string
}

var (
	// DefaultTheme targets dark terminal backgrounds with bright accents.
	DefaultTheme = Theme{
		Name:      "default",
		Primary:   "\033[38;5;39m",  // bright blue
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;220m", // yellow
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;141m", // purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all styling. Used when NO_COLOR is set or the
	// --no-color flag is provided.
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is the active theme. Guarded by themeMutex because the
	// server and CLI paths may consult it from multiple goroutines.
	currentTheme = DefaultTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the currently active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Primarily used by tests to
// restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// InitTheme selects the active theme from the noColor flag and the
// environment. The NO_COLOR variable (https://no-color.org/) disables
// colors whenever it is present, whatever its value.
//
// Parameters:
//   - noColor: If true, disables all color output regardless of environment.
func InitTheme(noColor bool) {
	themeMutex.Lock()
	defer themeMutex.Unlock()

	if noColor {
		currentTheme = NoColorTheme
		return
	}
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		currentTheme = NoColorTheme
		return
	}
	currentTheme = DefaultTheme
}
