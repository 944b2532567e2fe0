// File: offset.go
// Title: Offset-Aware Date-Time Value
// Description: Implements OffsetDateTime, a wall-clock value paired with a
//              fixed UTC offset. The offset is preserved verbatim; the UTC
//              instant is derived, never stored.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"fmt"
	"time"
)

// OffsetDateTime pairs the wall-clock value exactly as written (kind
// Unspecified) with the fixed UTC offset the input carried
type OffsetDateTime struct {
	Civil  CivilDateTime
	Offset time.Duration
}

// UTCInstant derives the UTC civil value: the wall clock shifted by the
// negated offset. The stored offset is never mutated.
func (o OffsetDateTime) UTCInstant() CivilDateTime {
	t := o.Civil.Time(time.UTC).Add(-o.Offset)
	return FromTime(t, KindUTC)
}

// Time materializes the instant in a fixed zone of the stored offset
func (o OffsetDateTime) Time() time.Time {
	loc := time.FixedZone(o.OffsetString(), int(o.Offset/time.Second))
	return o.Civil.Time(loc)
}

// OffsetString renders the offset in ±hh:mm form. A zero offset always
// renders as +00:00: the duration cannot carry the sign of a parsed -00:00.
func (o OffsetDateTime) OffsetString() string {
	offset := o.Offset
	sign := "+"
	if offset < 0 {
		sign = "-"
		offset = -offset
	}
	hours := int(offset / time.Hour)
	minutes := int(offset%time.Hour) / int(time.Minute)
	return fmt.Sprintf("%s%02d:%02d", sign, hours, minutes)
}

// String renders the wall-clock value followed by its offset
func (o OffsetDateTime) String() string {
	return Format(o.Civil, FormatOptions{}) + o.OffsetString()
}
