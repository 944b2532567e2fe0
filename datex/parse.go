// File: parse.go
// Title: Strict Parsing Operations
// Description: Implements the committing parse entry points: ParseExact,
//              ParseToUTC, ParseOffset, and the non-raising TryMatch probe.
//              All failures surface immediately as structured errors; there
//              is no recovery, retry, or closest-guess behavior.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"strings"
	"time"

	dnerror "datenorm/core/error"
)

// Default patterns substituted when a caller passes a blank pattern to the
// committing parse entry points
const (
	CanonicalPattern       = "yyyy-MM-ddTHH:mm:ss"
	CanonicalOffsetPattern = "yyyy-MM-ddTHH:mm:ssK"
)

// ParseExact parses text against a pattern that must describe its layout
// fully and unambiguously: every character of text must be consumed, and the
// result must be a real calendar value. The result carries KindUnspecified;
// a pattern alone never implies timezone information. If the pattern
// contains an offset token the offset is validated and then discarded; use
// ParseOffset to retain it. A blank pattern selects CanonicalPattern.
func ParseExact(text, pattern string, loc Locale) (CivilDateTime, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = CanonicalPattern
	}

	fp, err := CompilePattern(pattern)
	if err != nil {
		return CivilDateTime{}, err
	}

	t, err := fp.parse(text, loc)
	if err != nil {
		return CivilDateTime{}, newParseError(text, pattern, "datex.ParseExact", err)
	}

	return FromTime(t, KindUnspecified), nil
}

// ParseToUTC parses text with ParseExact, tags the result with the caller's
// source kind, and converts it to UTC:
//
//	Local       -> apply the process-local zone rules
//	UTC         -> no numeric change, only the kind tag is set
//	Unspecified -> treated identically to Local (explicit policy)
//
// Failures are CONVERSION_ERRORs wrapping the underlying parse failure.
func ParseToUTC(text, pattern string, source Kind, loc Locale) (CivilDateTime, error) {
	if !source.IsValid() {
		return CivilDateTime{}, dnerror.Newf("invalid source kind %d", int(source)).
			WithCode(dnerror.CodeInvalidInput).
			WithOperation("datex.ParseToUTC")
	}

	civil, err := ParseExact(text, pattern, loc)
	if err != nil {
		return CivilDateTime{}, dnerror.Wrapf(err, "cannot convert %q to utc", text).
			WithCode(dnerror.CodeConversion).
			WithOperation("datex.ParseToUTC").
			WithDetail("sourceKind", source.String())
	}

	civil.Kind = source
	return civil.ToUTC(), nil
}

// ParseOffset parses text against a pattern that must contain an offset
// token, capturing the offset verbatim (sign, hours, minutes, including
// fractional-hour offsets such as +05:30). A blank pattern selects
// CanonicalOffsetPattern.
func ParseOffset(text, pattern string, loc Locale) (OffsetDateTime, error) {
	if strings.TrimSpace(pattern) == "" {
		pattern = CanonicalOffsetPattern
	}

	fp, err := CompilePattern(pattern)
	if err != nil {
		return OffsetDateTime{}, err
	}

	if !fp.HasOffset() {
		return OffsetDateTime{}, dnerror.Newf("pattern %q has no offset token", pattern).
			WithCode(dnerror.CodePattern).
			WithOperation("datex.ParseOffset").
			WithDetail("pattern", pattern)
	}

	t, err := fp.parse(text, loc)
	if err != nil {
		return OffsetDateTime{}, newParseError(text, pattern, "datex.ParseOffset", err)
	}

	_, offsetSeconds := t.Zone()

	return OffsetDateTime{
		Civil:  FromTime(t, KindUnspecified),
		Offset: time.Duration(offsetSeconds) * time.Second,
	}, nil
}

// TryMatch reports whether text would parse successfully against the
// pattern. It never returns an error; malformed patterns simply do not match.
func TryMatch(text, pattern string, loc Locale) bool {
	_, err := ParseExact(text, pattern, loc)
	return err == nil
}

// newParseError builds the PARSE_ERROR naming both the offending text and
// the pattern that was tried
func newParseError(text, pattern, operation string, cause error) *dnerror.Error {
	return dnerror.Wrapf(cause, "text %q does not conform to pattern %q", text, pattern).
		WithCode(dnerror.CodeParse).
		WithOperation(operation).
		WithDetail("text", text).
		WithDetail("pattern", pattern)
}
