// Package event defines the immutable log event value consumed by filters,
// formatters and destinations.
package event

import (
	"strings"
	"time"

	"github.com/gaborage/go-beams/level"
)

// Event is a single log event. It is created once per log call and consumed
// synchronously; fields are never mutated after construction.
type Event struct {
	Time     time.Time
	Level    level.Level
	Message  string
	Thread   string
	File     string
	Function string
	Line     int
}

// New creates an event stamped with the current wall-clock time.
func New(lvl level.Level, message, thread, file, function string, line int) Event {
	return Event{
		Time:     time.Now(),
		Level:    lvl,
		Message:  message,
		Thread:   thread,
		File:     file,
		Function: function,
		Line:     line,
	}
}

// FileName returns the last path segment of the event's file, extension included.
func (e Event) FileName() string {
	if idx := strings.LastIndexByte(e.File, '/'); idx >= 0 {
		return e.File[idx+1:]
	}
	return e.File
}

// Stem returns the file name without its extension (text before the first dot).
func (e Event) Stem() string {
	name := e.FileName()
	if idx := strings.IndexByte(name, '.'); idx >= 0 {
		return name[:idx]
	}
	return name
}

// WithMessage returns a copy of the event carrying a different message.
// Used by the logger facade when the message is resolved lazily.
func (e Event) WithMessage(message string) Event {
	e.Message = message
	return e
}
