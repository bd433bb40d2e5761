// Package level defines the ordered severity vocabulary used by go-beams
// destinations and filters.
package level

import (
	"fmt"
	"strings"
)

// Level represents the severity of a log event. Levels are ordered:
// Verbose < Debug < Info < Warning < Error.
type Level int8

const (
	// Verbose is the most detailed level, typically disabled outside development.
	Verbose Level = iota

	// Debug provides diagnostic information for troubleshooting.
	Debug

	// Info represents normal operational messages.
	Info

	// Warning indicates a potentially harmful situation.
	Warning

	// Error represents a failure that needs attention.
	Error
)

// String returns the lower-case name of the level.
func (l Level) String() string {
	switch l {
	case Verbose:
		return "verbose"
	case Debug:
		return "debug"
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Label returns the upper-case label rendered for the level by default.
// Destinations may override labels per level without affecting this table.
func (l Level) Label() string {
	switch l {
	case Verbose:
		return "VERBOSE"
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level name or label into a Level. Matching is
// case-insensitive. It returns an error listing the allowed values when the
// input is not a known level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "verbose":
		return Verbose, nil
	case "debug":
		return Debug, nil
	case "info":
		return Info, nil
	case "warning", "warn":
		return Warning, nil
	case "error":
		return Error, nil
	default:
		return Info, fmt.Errorf("invalid log level: %s (must be one of: verbose, debug, info, warning, error)", s)
	}
}

// AllLevels returns every level in ascending severity order.
func AllLevels() []Level {
	return []Level{Verbose, Debug, Info, Warning, Error}
}
