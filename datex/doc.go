// Package datex provides strict date/time parsing and normalization.
//
// Package: datex
// Title: Date/Time Parsing and Normalization
// Description: This package implements the datenorm core: exact pattern-based
//              parsing of date/time strings, conversion between local, UTC,
//              and offset-aware representations, format-conformance probing,
//              multi-pattern flexible parsing, and canonical rendering. All
//              operations are pure functions with no shared mutable state;
//              the only ambient input is the process-local timezone rule
//              table used for local-to-UTC conversion.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation
//
// # Values and kinds
//
// A CivilDateTime is a calendar date-time without inherent timezone meaning.
// Its Kind tag (Unspecified, Local, UTC) governs conversion semantics and is
// never inferred from the input: ParseExact always yields KindUnspecified,
// and only an explicit caller directive (ParseToUTC's source kind, or
// setting Kind before ToUTC) changes that. During UTC conversion an
// Unspecified value is treated exactly like a Local one; ambiguous input is
// assumed to have been authored in the process-local zone. This is a policy
// choice, kept visible in the ToUTC conversion table.
//
// An OffsetDateTime pairs a wall-clock value with a fixed UTC offset. The
// offset is preserved verbatim (sign, hours, minutes, including fractional
// hours such as +05:30); the derived UTC instant is a pure function of the
// value and the offset.
//
// # Patterns
//
// Patterns are template strings describing the exact token layout an input
// must match. Supported tokens:
//
//	yyyy yy          year (4-digit, 2-digit)
//	MMMM MMM MM M    month (full name, abbreviation, zero-padded, bare)
//	dddd ddd dd d    day (full name, abbreviation, zero-padded, bare)
//	HH H             hour, 24-hour clock
//	hh h             hour, 12-hour clock (combine with tt)
//	mm m             minute
//	ss s             second
//	fff ff f         fractional seconds (must follow a '.' literal)
//	tt               AM/PM designator
//	zzz zz           numeric UTC offset (+05:30, +05)
//	K                UTC offset or literal Z for UTC
//
// plus the literal separators '-', '/', ':', '.', ',', ' ' and 'T'. Any
// other character is a PATTERN_ERROR. Parsing is strict: every character of
// the input must be consumed, zero-padded tokens require their padding, and
// syntactically matching but impossible calendar values (month 13, February
// 29 outside leap years) are PARSE_ERRORs. There is no closest-guess
// recovery; ambiguity between patterns is resolved only by ParseFlexible's
// explicit candidate order. A blank pattern selects CanonicalPattern
// (CanonicalOffsetPattern for ParseOffset).
//
// # Locales
//
// Every parsing operation takes an explicit Locale rather than reading
// ambient process state. The zero Locale and Invariant() both mean the fixed
// invariant locale: English month/day names, '.' decimal separator,
// locale-insensitive digits. Callers may supply their own name tables for
// parsing inputs whose name tokens are written in another language; numeric
// tokens are never locale-sensitive.
//
// # Errors
//
// ParseExact, ParseToUTC and ParseOffset fail fast with structured errors
// (core/error codes PARSE_ERROR, CONVERSION_ERROR, PATTERN_ERROR) carrying
// the offending text and the pattern tried. TryMatch and ParseFlexible never
// return errors: probing and flexible parsing represent failure as data.
//
// Usage:
//
//	v, err := datex.ParseExact("2026-01-03T14:30:00", "yyyy-MM-ddTHH:mm:ss", datex.Invariant())
//	if err != nil {
//	    return err
//	}
//	utc, err := datex.ParseToUTC("2026-01-03 14:30", "yyyy-MM-dd HH:mm", datex.KindLocal, datex.Invariant())
//
//	res := datex.ParseFlexible("01/03/2026", nil, datex.Invariant())
//	if res.Success {
//	    fmt.Println(res.Pattern, datex.Format(res.Value, datex.FormatOptions{}))
//	}
package datex
