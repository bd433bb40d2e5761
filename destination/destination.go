// Package destination composes a filter set with a pattern formatter and
// delivers rendered log lines to a physical sink. Each destination is
// independent: it owns its filters, its format pattern and its level/color
// tables, and serializes its own physical writes so concurrent Log calls
// never interleave output.
package destination

import (
	"sync"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/filter"
	"github.com/gaborage/go-beams/format"
	"github.com/gaborage/go-beams/level"
)

// Destination is the contract every sink honors. Log must be safe for
// concurrent use; Flush pushes buffered output to the physical sink and
// reports delivery errors.
type Destination interface {
	Log(e event.Event)
	ShouldLog(e event.Event) bool
	HasMessageFilters() bool
	Async() bool
	Flush() error
}

// Core is the shared filtering and formatting state composed by every sink.
// Sinks embed a *Core and take writeMu around physical writes.
type Core struct {
	writeMu sync.Mutex

	cfgMu    sync.RWMutex
	minLevel level.Level
	async    bool

	filters   *filter.Set
	formatter *format.Formatter
}

// NewCore returns a core with the default pattern and a Verbose minimum
// level, so a fresh destination logs everything.
func NewCore() *Core {
	c := &Core{
		filters:   filter.NewSet(),
		formatter: format.New(format.DefaultPattern),
	}
	c.SetMinLevel(level.Verbose)
	return c
}

// SetMinLevel changes the destination's minimum level. The required at-least
// level filter is reinstalled as a side effect; level-filter exclusivity in
// the set evicts the previous gate.
func (c *Core) SetMinLevel(l level.Level) {
	c.cfgMu.Lock()
	c.minLevel = l
	c.cfgMu.Unlock()

	c.filters.Add(filter.MinLevel(l))
}

// MinLevel returns the destination's minimum level.
func (c *Core) MinLevel() level.Level {
	c.cfgMu.RLock()
	defer c.cfgMu.RUnlock()
	return c.minLevel
}

// SetAsync marks the destination for asynchronous delivery. The logger
// facade, not the destination, owns queue management; this flag is only a
// hint read at registration time.
func (c *Core) SetAsync(async bool) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.async = async
}

// Async reports whether delivery should be dispatched off the calling thread.
func (c *Core) Async() bool {
	c.cfgMu.RLock()
	defer c.cfgMu.RUnlock()
	return c.async
}

// AddFilter attaches a filter to the destination.
func (c *Core) AddFilter(f filter.Filter) {
	c.filters.Add(f)
}

// RemoveFilter detaches a filter. Removing an absent filter is a no-op.
func (c *Core) RemoveFilter(f filter.Filter) {
	c.filters.Remove(f)
}

// Filters exposes the destination's filter set.
func (c *Core) Filters() *filter.Set {
	return c.filters
}

// HasMessageFilters reports whether any message-target filter is attached.
// Callers may use it to skip building expensive message strings.
func (c *Core) HasMessageFilters() bool {
	return c.filters.HasMessageFilters()
}

// ShouldLog reports whether the event passes the destination's filters.
func (c *Core) ShouldLog(e event.Event) bool {
	return c.filters.ShouldLog(e)
}

// Formatter returns the destination's formatter for setup-time configuration
// (pattern, level strings, level colors). Configure it before the destination
// starts receiving events.
func (c *Core) Formatter() *format.Formatter {
	return c.formatter
}

// SetFormat replaces the render pattern.
func (c *Core) SetFormat(pattern string) {
	c.formatter.Pattern = pattern
}

// Process runs the destination's decision and rendering in one step: it
// returns the rendered line and true when the event passes the filters, or
// an empty string and false when it does not.
func (c *Core) Process(e event.Event) (string, bool) {
	if !c.filters.ShouldLog(e) {
		return "", false
	}
	return c.formatter.Render(e), true
}

// Flush is a no-op hook for sinks without buffering.
func (c *Core) Flush() error {
	return nil
}
