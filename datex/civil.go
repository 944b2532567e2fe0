// File: civil.go
// Title: Civil Date-Time Value
// Description: Implements CivilDateTime, a calendar date-time value with a
//              Kind tag, and its conversion to UTC. The Unspecified-to-Local
//              equivalence during conversion is an explicit policy encoded
//              in the ToUTC conversion table.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"time"
)

// CivilDateTime is a calendar date-time value with a Kind tag. The fields
// are wall-clock values; they only denote an instant once combined with a
// kind (or, for OffsetDateTime, an explicit offset).
type CivilDateTime struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Kind       Kind
}

// FromTime builds a CivilDateTime from the wall-clock fields of t, tagged
// with the given kind. The location of t is not inspected; callers choose
// the kind explicitly.
func FromTime(t time.Time, kind Kind) CivilDateTime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return CivilDateTime{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: t.Nanosecond(),
		Kind:       kind,
	}
}

// Time materializes the wall-clock fields in the given location
func (c CivilDateTime) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second, c.Nanosecond, loc)
}

// ToUTC converts the value to UTC according to its kind. The conversion
// table is deliberately explicit:
//
//	UTC         -> the value is already UTC; fields unchanged
//	Local       -> convert through the process-local zone rules (DST-aware)
//	Unspecified -> same as Local; ambiguous input is assumed to have been
//	               authored in the local zone
func (c CivilDateTime) ToUTC() CivilDateTime {
	switch c.Kind {
	case KindUTC:
		out := c
		out.Kind = KindUTC
		return out
	case KindLocal:
		return FromTime(c.Time(time.Local).In(time.UTC), KindUTC)
	case KindUnspecified:
		// Policy, not an oversight: unspecified defaults to local.
		return FromTime(c.Time(time.Local).In(time.UTC), KindUTC)
	default:
		return FromTime(c.Time(time.Local).In(time.UTC), KindUTC)
	}
}

// Millisecond returns the sub-second fraction truncated to milliseconds
func (c CivilDateTime) Millisecond() int {
	return c.Nanosecond / int(time.Millisecond)
}

// Equal reports whether two values have identical fields and kind
func (c CivilDateTime) Equal(other CivilDateTime) bool {
	return c == other
}

// EqualFields reports whether two values share the same wall-clock fields,
// ignoring kind
func (c CivilDateTime) EqualFields(other CivilDateTime) bool {
	c.Kind = other.Kind
	return c == other
}

// String returns the canonical rendering without conversion
func (c CivilDateTime) String() string {
	return Format(c, FormatOptions{})
}
