// Package format renders log events into text through a $-delimited token
// pattern. Rendering is best-effort: unrecognized tokens and malformed date
// formats degrade to verbatim or empty output, never to an error, so a log
// call can never fail its caller.
package format

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

// DefaultPattern is the render pattern destinations start with.
const DefaultPattern = "$Dyyyy-MM-dd HH:mm:ss.SSS$d $N.$F:$l $L: $M"

// Formatter renders events according to a token pattern. The zero value is
// not usable; construct with New.
//
// Token vocabulary (the first character of each $-delimited phrase):
//
//	L  level label          M  message            m  JSON-escaped message
//	T  thread id            N  file name stem     n  file name
//	F  function name        l  line number
//	D  timestamp, remainder of the phrase is the date format
//	d  resume literal text after a D phrase
//	C  color escape for the event level    c  color reset
//
// Anything else, including the text before the first $, is emitted verbatim.
type Formatter struct {
	// Pattern is the $-token template.
	Pattern string

	// LevelStrings overrides the rendered label per level. Levels without an
	// entry fall back to level.Label.
	LevelStrings map[level.Level]string

	// LevelColors holds the per-level color code emitted by the C token,
	// without the escape prefix. Empty by default.
	LevelColors map[level.Level]string

	// Escape is prepended to the level color by the C token.
	Escape string

	// Reset is emitted by the c token.
	Reset string

	// Now supplies the wall-clock time for the D token. Defaults to time.Now.
	Now func() time.Time
}

// New returns a formatter for the given pattern.
func New(pattern string) *Formatter {
	return &Formatter{
		Pattern:      pattern,
		LevelStrings: make(map[level.Level]string),
		LevelColors:  make(map[level.Level]string),
	}
}

// LevelString returns the label rendered for a level.
func (f *Formatter) LevelString(l level.Level) string {
	if s, ok := f.LevelStrings[l]; ok {
		return s
	}
	return l.Label()
}

func (f *Formatter) colorFor(l level.Level) string {
	return f.LevelColors[l]
}

func (f *Formatter) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

// Render produces the output line for an event.
func (f *Formatter) Render(e event.Event) string {
	var b strings.Builder

	for _, phrase := range strings.Split(f.Pattern, "$") {
		if phrase == "" {
			continue
		}

		rest := phrase[1:]
		switch phrase[0] {
		case 'L':
			b.WriteString(f.LevelString(e.Level))
			b.WriteString(rest)
		case 'M':
			b.WriteString(e.Message)
			b.WriteString(rest)
		case 'm':
			b.WriteString(jsonEscapedMessage(e.Message))
			b.WriteString(rest)
		case 'T':
			b.WriteString(e.Thread)
			b.WriteString(rest)
		case 'N':
			b.WriteString(e.Stem())
			b.WriteString(rest)
		case 'n':
			b.WriteString(e.FileName())
			b.WriteString(rest)
		case 'F':
			b.WriteString(e.Function)
			b.WriteString(rest)
		case 'l':
			b.WriteString(strconv.Itoa(e.Line))
			b.WriteString(rest)
		case 'D':
			// The whole remainder of the phrase is the date format; a
			// following $d phrase resumes literal text.
			b.WriteString(f.formatDate(rest))
		case 'd':
			b.WriteString(rest)
		case 'C':
			b.WriteString(f.Escape)
			b.WriteString(f.colorFor(e.Level))
			b.WriteString(rest)
		case 'c':
			b.WriteString(f.Reset)
			b.WriteString(rest)
		default:
			b.WriteString(phrase)
		}
	}

	return b.String()
}

func (f *Formatter) formatDate(dateFormat string) string {
	if dateFormat == "" {
		return ""
	}
	return f.now().Format(Layout(dateFormat))
}

// jsonEscapedMessage encodes {"message": msg} and extracts the escaped value
// substring. Encoding failure degrades to an empty substitution.
func jsonEscapedMessage(msg string) string {
	b, err := json.Marshal(struct {
		Message string `json:"message"`
	}{Message: msg})
	if err != nil {
		return ""
	}

	s := strings.TrimPrefix(string(b), `{"message":"`)
	return strings.TrimSuffix(s, `"}`)
}
