package ui

import (
	"os"
	"sync"
)

// Theme is a terminal color scheme. Each field holds the ANSI escape
// sequence for one output category; empty fields render as plain text.
type Theme struct {
	Name      string
	Primary   string // accent for operation names and headings
	Secondary string // de-emphasized detail
	Success   string
	Warning   string // durations and truncation notices
	Error     string
	Info      string // digit counts and algorithm names
	Bold      string
	Underline string
	Reset     string
}

var (
	// DarkTheme targets dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
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

	// LightTheme targets light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;27m",  // dark blue
		Secondary: "\033[38;5;240m", // dark grey
		Success:   "\033[38;5;28m",  // dark green
		Warning:   "\033[38;5;130m", // orange
		Error:     "\033[38;5;124m", // dark red
		Info:      "\033[38;5;54m",  // dark purple
		Bold:      "\033[1m",
		Underline: "\033[4m",
		Reset:     "\033[0m",
	}

	// NoColorTheme renders everything unstyled. Selected when NO_COLOR
	// is present in the environment.
	NoColorTheme = Theme{
		Name: "none",
	}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// SetCurrentTheme replaces the active theme. Tests use it to restore
// state after overriding the theme.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// SetTheme activates the theme with the given name ("dark", "light" or
// "none"). Unknown names fall back to the dark theme.
func SetTheme(name string) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = themeByName(name)
}

func themeByName(name string) Theme {
	switch name {
	case "light":
		return LightTheme
	case "none":
		return NoColorTheme
	default:
		return DarkTheme
	}
}

// InitTheme resolves the startup theme. Precedence, highest first: the
// noColor argument, the NO_COLOR environment variable
// (https://no-color.org/, any non-empty value disables colors), the
// BIGNUM_THEME environment variable, then the dark default.
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
	currentTheme = themeByName(os.Getenv("BIGNUM_THEME"))
}
