package destination

import (
	"github.com/rs/zerolog"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

// Zerolog forwards events into a zerolog.Logger as structured records
// instead of rendered lines, so the receiving pipeline keeps its JSON
// shape. Filters still apply; the format pattern does not.
type Zerolog struct {
	*Core
	zl zerolog.Logger
}

// NewZerolog returns a destination bridging into zl.
func NewZerolog(zl zerolog.Logger) *Zerolog {
	return &Zerolog{Core: NewCore(), zl: zl}
}

// Log emits the event through the wrapped zerolog logger.
func (d *Zerolog) Log(e event.Event) {
	if !d.ShouldLog(e) {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	d.zl.WithLevel(zerologLevel(e.Level)).
		Str("file", e.FileName()).
		Str("function", e.Function).
		Int("line", e.Line).
		Str("thread", e.Thread).
		Msg(e.Message)
}

func zerologLevel(l level.Level) zerolog.Level {
	switch l {
	case level.Verbose:
		return zerolog.TraceLevel
	case level.Debug:
		return zerolog.DebugLevel
	case level.Info:
		return zerolog.InfoLevel
	case level.Warning:
		return zerolog.WarnLevel
	case level.Error:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
