// Package logger is the dispatch facade of go-beams. A Logger fans log
// events out to registered destinations, capturing the call site and
// goroutine id once per call. Message strings are resolved lazily: when no
// destination needs the message to decide, formatting arguments is deferred
// until a destination actually logs the event.
package logger

import (
	"fmt"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gaborage/go-beams/destination"
	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/internal/goid"
	"github.com/gaborage/go-beams/level"
)

// callerSkip is the number of frames between runtime.Caller and the user's
// log call: callSite, dispatch and the leveled method.
const callerSkip = 3

// Logger dispatches events to a set of destinations. Destinations marked
// async get a dedicated single-consumer queue so their delivery order is
// preserved without blocking the call site; the rest are invoked inline.
type Logger struct {
	mu    sync.RWMutex
	dests []registration
}

type registration struct {
	dest   destination.Destination
	worker *worker
}

// New returns a logger with no destinations.
func New() *Logger {
	return &Logger{}
}

// AddDestination registers a destination. Returns false when the destination
// is already registered.
func (l *Logger) AddDestination(d destination.Destination) bool {
	if d == nil {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.dests {
		if r.dest == d {
			return false
		}
	}

	reg := registration{dest: d}
	if d.Async() {
		reg.worker = newWorker(d)
	}
	l.dests = append(l.dests, reg)
	return true
}

// RemoveDestination unregisters a destination, stopping its queue if it has
// one. Returns false when the destination was not registered.
func (l *Logger) RemoveDestination(d destination.Destination) bool {
	l.mu.Lock()
	var removed *registration
	for i, r := range l.dests {
		if r.dest == d {
			removed = &l.dests[i]
			l.dests = append(l.dests[:i], l.dests[i+1:]...)
			break
		}
	}
	l.mu.Unlock()

	if removed == nil {
		return false
	}
	if removed.worker != nil {
		removed.worker.stop()
	}
	return true
}

// CountDestinations returns the number of registered destinations.
func (l *Logger) CountDestinations() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.dests)
}

// Verbose logs at verbose level.
func (l *Logger) Verbose(args ...any) {
	l.dispatch(level.Verbose, func() string { return fmt.Sprint(args...) })
}

// Verbosef logs a formatted message at verbose level.
func (l *Logger) Verbosef(format string, args ...any) {
	l.dispatch(level.Verbose, func() string { return fmt.Sprintf(format, args...) })
}

// Debug logs at debug level.
func (l *Logger) Debug(args ...any) {
	l.dispatch(level.Debug, func() string { return fmt.Sprint(args...) })
}

// Debugf logs a formatted message at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.dispatch(level.Debug, func() string { return fmt.Sprintf(format, args...) })
}

// Info logs at info level.
func (l *Logger) Info(args ...any) {
	l.dispatch(level.Info, func() string { return fmt.Sprint(args...) })
}

// Infof logs a formatted message at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.dispatch(level.Info, func() string { return fmt.Sprintf(format, args...) })
}

// Warning logs at warning level.
func (l *Logger) Warning(args ...any) {
	l.dispatch(level.Warning, func() string { return fmt.Sprint(args...) })
}

// Warningf logs a formatted message at warning level.
func (l *Logger) Warningf(format string, args ...any) {
	l.dispatch(level.Warning, func() string { return fmt.Sprintf(format, args...) })
}

// Error logs at error level.
func (l *Logger) Error(args ...any) {
	l.dispatch(level.Error, func() string { return fmt.Sprint(args...) })
}

// Errorf logs a formatted message at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.dispatch(level.Error, func() string { return fmt.Sprintf(format, args...) })
}

func (l *Logger) dispatch(lvl level.Level, msg func() string) {
	file, function, line := callSite(callerSkip)
	e := event.New(lvl, "", goid.ID(), file, function, line)

	l.mu.RLock()
	regs := append([]registration(nil), l.dests...)
	l.mu.RUnlock()

	// Resolve the message at most once across all destinations, and only
	// when a destination needs it to filter or to log.
	var resolved string
	haveMsg := false
	resolve := func() string {
		if !haveMsg {
			resolved = msg()
			haveMsg = true
		}
		return resolved
	}

	for _, r := range regs {
		probe := e
		if r.dest.HasMessageFilters() {
			probe = e.WithMessage(resolve())
		}
		if !r.dest.ShouldLog(probe) {
			continue
		}

		final := e.WithMessage(resolve())
		if r.worker != nil {
			r.worker.enqueue(final)
			continue
		}
		r.dest.Log(final)
	}
}

// Flush drains every async queue and flushes every destination, returning
// the first delivery error.
func (l *Logger) Flush() error {
	l.mu.RLock()
	regs := append([]registration(nil), l.dests...)
	l.mu.RUnlock()

	g := new(errgroup.Group)
	for _, r := range regs {
		g.Go(func() error {
			if r.worker != nil {
				r.worker.drain()
			}
			return r.dest.Flush()
		})
	}
	return g.Wait()
}

// Close stops all async queues, flushes every destination and unregisters
// them. The logger must not be used after Close.
func (l *Logger) Close() error {
	l.mu.Lock()
	regs := l.dests
	l.dests = nil
	l.mu.Unlock()

	g := new(errgroup.Group)
	for _, r := range regs {
		g.Go(func() error {
			if r.worker != nil {
				r.worker.stop()
			}
			return r.dest.Flush()
		})
	}
	return g.Wait()
}

// callSite captures the caller's file, function and line.
func callSite(skip int) (file, function string, line int) {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "", "", 0
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return file, "", line
	}
	return file, functionName(fn.Name()), line
}

// functionName strips the package path and package name from a fully
// qualified function name ("pkg/path.Func" -> "Func").
func functionName(full string) string {
	if idx := strings.LastIndexByte(full, '/'); idx >= 0 {
		full = full[idx+1:]
	}
	if idx := strings.IndexByte(full, '.'); idx >= 0 {
		full = full[idx+1:]
	}
	return full
}
