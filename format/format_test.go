package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

func testEvent() event.Event {
	return event.Event{
		Level:    level.Error,
		Message:  "boom",
		Thread:   "7",
		File:     "/a/b/Foo.swift",
		Function: "bar",
		Line:     42,
	}
}

func TestRenderLevelAndMessage(t *testing.T) {
	f := New("$L: $M")
	assert.Equal(t, "ERROR: boom", f.Render(testEvent()))
}

func TestRenderCallSite(t *testing.T) {
	f := New("$N.$F:$l")
	assert.Equal(t, "Foo.bar:42", f.Render(testEvent()))
}

func TestRenderTokens(t *testing.T) {
	e := testEvent()

	tests := []struct {
		name     string
		pattern  string
		expected string
	}{
		{name: "file_with_extension", pattern: "$n", expected: "Foo.swift"},
		{name: "thread", pattern: "[$T]", expected: "[7]"},
		{name: "unknown_token_verbatim", pattern: "$L $x!", expected: "ERROR x!"},
		{name: "leading_literal", pattern: "at $l", expected: "at 42"},
		{name: "empty_phrases_ignored", pattern: "$$L$$: $M", expected: "ERROR: boom"},
		{name: "empty_pattern", pattern: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, New(tt.pattern).Render(e))
		})
	}
}

func TestRenderDate(t *testing.T) {
	f := New("$Dyyyy-MM-dd HH:mm:ss.SSS$d $L: $M")
	f.Now = func() time.Time {
		return time.Date(2024, 3, 9, 17, 5, 6, 78_000_000, time.UTC)
	}

	assert.Equal(t, "2024-03-09 17:05:06.078 ERROR: boom", f.Render(testEvent()))
}

func TestRenderDateEmptyFormat(t *testing.T) {
	f := New("$D$d!")
	assert.Equal(t, "!", f.Render(testEvent()))
}

func TestDefaultPattern(t *testing.T) {
	f := New(DefaultPattern)
	f.Now = func() time.Time {
		return time.Date(2024, 3, 9, 17, 5, 6, 78_000_000, time.UTC)
	}

	assert.Equal(t, "2024-03-09 17:05:06.078 Foo.bar:42 ERROR: boom", f.Render(testEvent()))
}

func TestJSONEscapedMessage(t *testing.T) {
	e := testEvent()
	e.Message = "say \"hi\"\nnow"

	out := New("$m").Render(e)
	assert.Equal(t, `say \"hi\"\nnow`, out)
}

func TestLevelStringOverride(t *testing.T) {
	f := New("$L")
	f.LevelStrings[level.Error] = "💥"

	assert.Equal(t, "💥", f.Render(testEvent()))

	// Other levels keep their default label.
	e := testEvent()
	e.Level = level.Info
	assert.Equal(t, "INFO", f.Render(e))
}

func TestLevelStringRoundTrip(t *testing.T) {
	f := New("$L")
	for _, l := range level.AllLevels() {
		e := event.Event{Level: l}
		parsed, err := level.ParseLevel(f.Render(e))
		require.NoError(t, err)
		assert.Equal(t, l, parsed)
	}
}

func TestColorTokens(t *testing.T) {
	f := New("$C$L$c $M")
	f.Escape = "\033["
	f.Reset = "\033[0m"
	f.LevelColors[level.Error] = "31m"

	assert.Equal(t, "\033[31mERROR\033[0m boom", f.Render(testEvent()))
}

func TestColorTokensWithoutConfig(t *testing.T) {
	f := New("$C$L$c")
	assert.Equal(t, "ERROR", f.Render(testEvent()))
}

func TestLayout(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{name: "default_stamp", format: "yyyy-MM-dd HH:mm:ss.SSS", expected: "2006-01-02 15:04:05.000"},
		{name: "short_year", format: "yy/M/d", expected: "06/1/2"},
		{name: "twelve_hour", format: "hh:mm a", expected: "03:04 PM"},
		{name: "month_names", format: "MMM MMMM", expected: "Jan January"},
		{name: "weekday", format: "EEE EEEE", expected: "Mon Monday"},
		{name: "zones", format: "zzz Z ZZZZZ", expected: "MST -0700 -07:00"},
		{name: "iso_zone", format: "XXX", expected: "Z07:00"},
		{name: "unknown_letters_verbatim", format: "QQ yyyy", expected: "QQ 2006"},
		{name: "literals_untouched", format: "[] yyyy", expected: "[] 2006"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Layout(tt.format))
		})
	}
}
