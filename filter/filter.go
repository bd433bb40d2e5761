// Package filter implements the predicate system that decides whether a log
// event is written by a destination. A filter inspects one event attribute
// (level, file path, function name or message text) with a comparison
// operator; filters marked required are AND-combined, the remaining filters
// are OR-combined.
package filter

import (
	"strings"

	"github.com/google/uuid"

	"github.com/gaborage/go-beams/event"
	"github.com/gaborage/go-beams/level"
)

// Target selects which event attribute a filter inspects.
type Target int

const (
	// TargetLevel compares against the event's severity ordinal.
	TargetLevel Target = iota

	// TargetPath compares against the event's file path.
	TargetPath

	// TargetFunction compares against the event's function name.
	TargetFunction

	// TargetMessage compares against the event's message text.
	TargetMessage
)

// String returns the name of the target.
func (t Target) String() string {
	switch t {
	case TargetLevel:
		return "level"
	case TargetPath:
		return "path"
	case TargetFunction:
		return "function"
	case TargetMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Op is the comparison operator applied to the targeted attribute.
type Op int

const (
	// OpEquals matches when the attribute equals one of the operands.
	OpEquals Op = iota

	// OpContains matches when the attribute contains one of the operands.
	OpContains

	// OpStartsWith matches when the attribute starts with one of the operands.
	OpStartsWith

	// OpEndsWith matches when the attribute ends with one of the operands.
	OpEndsWith

	// OpExcludes matches when the attribute contains none of the operands.
	OpExcludes

	// OpAtLeast matches when the event level is at least the filter level.
	// Only meaningful for TargetLevel.
	OpAtLeast
)

// Filter is an immutable predicate over one event attribute. Each filter
// carries a unique id assigned at construction; removal from a Set matches on
// that id, so removing a filter affects exactly the added instance even when
// another filter is structurally identical.
type Filter struct {
	id            uuid.UUID
	target        Target
	op            Op
	values        []string
	min           level.Level
	caseSensitive bool
	required      bool
}

// ID returns the filter's unique identity.
func (f Filter) ID() uuid.UUID {
	return f.id
}

// Target returns the event attribute the filter inspects.
func (f Filter) Target() Target {
	return f.target
}

// Required reports whether the filter participates in the AND clause.
func (f Filter) Required() bool {
	return f.required
}

// Apply evaluates the filter against an event.
func (f Filter) Apply(e event.Event) bool {
	if f.target == TargetLevel {
		return f.applyLevel(e.Level)
	}
	return f.applyText(f.attribute(e))
}

func (f Filter) attribute(e event.Event) string {
	switch f.target {
	case TargetPath:
		return e.File
	case TargetFunction:
		return e.Function
	case TargetMessage:
		return e.Message
	default:
		return ""
	}
}

func (f Filter) applyLevel(l level.Level) bool {
	switch f.op {
	case OpAtLeast:
		return l >= f.min
	case OpEquals:
		return l == f.min
	default:
		return false
	}
}

func (f Filter) applyText(value string) bool {
	values := f.values
	if !f.caseSensitive {
		value = strings.ToLower(value)
		values = make([]string, len(f.values))
		for i, v := range f.values {
			values[i] = strings.ToLower(v)
		}
	}

	switch f.op {
	case OpEquals:
		return anyMatch(values, func(v string) bool { return value == v })
	case OpContains:
		return anyMatch(values, func(v string) bool { return strings.Contains(value, v) })
	case OpStartsWith:
		return anyMatch(values, func(v string) bool { return strings.HasPrefix(value, v) })
	case OpEndsWith:
		return anyMatch(values, func(v string) bool { return strings.HasSuffix(value, v) })
	case OpExcludes:
		return !anyMatch(values, func(v string) bool { return strings.Contains(value, v) })
	default:
		return false
	}
}

func anyMatch(values []string, match func(string) bool) bool {
	for _, v := range values {
		if match(v) {
			return true
		}
	}
	return false
}

// MinLevel builds the required minimum-level gate installed by destinations.
// Events pass when their level is at least l.
func MinLevel(l level.Level) Filter {
	return Filter{
		id:       uuid.New(),
		target:   TargetLevel,
		op:       OpAtLeast,
		min:      l,
		required: true,
	}
}

// LevelIs builds a filter matching exactly one level.
func LevelIs(l level.Level, required bool) Filter {
	return Filter{
		id:       uuid.New(),
		target:   TargetLevel,
		op:       OpEquals,
		min:      l,
		required: required,
	}
}

// Builder constructs text filters for a fixed target. Obtain one via Path,
// Function or Message.
type Builder struct {
	target Target
}

// Path returns a builder for filters over the event's file path.
func Path() Builder {
	return Builder{target: TargetPath}
}

// Function returns a builder for filters over the event's function name.
func Function() Builder {
	return Builder{target: TargetFunction}
}

// Message returns a builder for filters over the event's message text.
func Message() Builder {
	return Builder{target: TargetMessage}
}

// Equals builds a filter matching attributes equal to one of values.
func (b Builder) Equals(caseSensitive, required bool, values ...string) Filter {
	return b.build(OpEquals, caseSensitive, required, values)
}

// Contains builds a filter matching attributes containing one of values.
func (b Builder) Contains(caseSensitive, required bool, values ...string) Filter {
	return b.build(OpContains, caseSensitive, required, values)
}

// StartsWith builds a filter matching attributes starting with one of values.
func (b Builder) StartsWith(caseSensitive, required bool, values ...string) Filter {
	return b.build(OpStartsWith, caseSensitive, required, values)
}

// EndsWith builds a filter matching attributes ending with one of values.
func (b Builder) EndsWith(caseSensitive, required bool, values ...string) Filter {
	return b.build(OpEndsWith, caseSensitive, required, values)
}

// Excludes builds a filter matching attributes that contain none of values.
func (b Builder) Excludes(caseSensitive, required bool, values ...string) Filter {
	return b.build(OpExcludes, caseSensitive, required, values)
}

func (b Builder) build(op Op, caseSensitive, required bool, values []string) Filter {
	return Filter{
		id:            uuid.New(),
		target:        b.target,
		op:            op,
		values:        append([]string(nil), values...),
		caseSensitive: caseSensitive,
		required:      required,
	}
}
