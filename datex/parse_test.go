// File: parse_test.go
// Title: Strict Parsing Tests
// Description: Tests for ParseExact, ParseToUTC, ParseOffset and TryMatch
//              covering strict consumption, calendar validation, kind
//              tagging, conversion policy, and error classification.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial test implementation

package datex

import (
	"testing"
	"time"

	dnerror "datenorm/core/error"
)

// ===============================
// ParseExact Tests
// ===============================

func TestParseExact(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		pattern  string
		wantErr  bool
		expected CivilDateTime
	}{
		{
			"ISO date-time",
			"2026-01-03T14:30:45", "yyyy-MM-ddTHH:mm:ss",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45},
		},
		{
			"ISO date only",
			"2026-01-03", "yyyy-MM-dd",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
		},
		{
			"US slash date",
			"01/03/2026", "MM/dd/yyyy",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
		},
		{
			"EU slash date swaps month and day",
			"01/03/2026", "dd/MM/yyyy",
			false,
			CivilDateTime{Year: 2026, Month: time.March, Day: 1},
		},
		{
			"European dotted date",
			"03.01.2026", "dd.MM.yyyy",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
		},
		{
			"compact date-time",
			"20260103143045", "yyyyMMddHHmmss",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45},
		},
		{
			"milliseconds",
			"2026-01-03T14:30:45.045", "yyyy-MM-ddTHH:mm:ss.fff",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45, Nanosecond: 45000000},
		},
		{
			"month name",
			"03 January 2026", "dd MMMM yyyy",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
		},
		{
			"12-hour clock with designator",
			"2026-01-03 02:30 PM", "yyyy-MM-dd hh:mm tt",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30},
		},
		{
			"offset token is validated then discarded",
			"2026-01-03T14:30:00+05:00", "yyyy-MM-ddTHH:mm:sszzz",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30},
		},
		{"Feb 29 in non-leap year", "2025-02-29", "yyyy-MM-dd", true, CivilDateTime{}},
		{"Feb 29 in leap year", "2024-02-29", "yyyy-MM-dd", false,
			CivilDateTime{Year: 2024, Month: time.February, Day: 29}},
		{"month 13", "2026-13-01", "yyyy-MM-dd", true, CivilDateTime{}},
		{"month 0", "2026-00-10", "yyyy-MM-dd", true, CivilDateTime{}},
		{"day 32", "2026-01-32", "yyyy-MM-dd", true, CivilDateTime{}},
		{"unpadded hour against padded token", "2026-01-03T4:30:45", "yyyy-MM-ddTHH:mm:ss", true, CivilDateTime{}},
		{
			"unpadded hour against bare token",
			"2026-01-03T4:30:45", "yyyy-MM-ddTH:mm:ss",
			false,
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 4, Minute: 30, Second: 45},
		},
		{"trailing slack", "2026-01-03 extra", "yyyy-MM-dd", true, CivilDateTime{}},
		{"truncated input", "2026-01", "yyyy-MM-dd", true, CivilDateTime{}},
		{"unpadded day against padded token", "2026-01-3", "yyyy-MM-dd", true, CivilDateTime{}},
		{"wrong separator", "2026/01/03", "yyyy-MM-dd", true, CivilDateTime{}},
		{"empty text", "", "yyyy-MM-dd", true, CivilDateTime{}},
		{"not a date", "not-a-date", "yyyy-MM-dd", true, CivilDateTime{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseExact(tc.text, tc.pattern, Invariant())

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseExact(%q, %q) expected error, got %v", tc.text, tc.pattern, result)
				}
				if !dnerror.HasCode(err, dnerror.CodeParse) {
					t.Errorf("error code = %v, want PARSE_ERROR", dnerror.GetCode(err))
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseExact(%q, %q) unexpected error: %v", tc.text, tc.pattern, err)
			}
			if !result.Equal(tc.expected) {
				t.Errorf("ParseExact(%q, %q) = %+v, want %+v", tc.text, tc.pattern, result, tc.expected)
			}
			if result.Kind != KindUnspecified {
				t.Errorf("Kind = %v, want KindUnspecified", result.Kind)
			}
		})
	}
}

func TestParseExactErrorNamesTextAndPattern(t *testing.T) {
	_, err := ParseExact("2025-02-29", "yyyy-MM-dd", Invariant())
	if err == nil {
		t.Fatal("expected error")
	}

	dnErr, ok := err.(*dnerror.Error)
	if !ok {
		t.Fatalf("error is %T, want *dnerror.Error", err)
	}
	if dnErr.Detail("text") != "2025-02-29" {
		t.Errorf("Detail(text) = %v, want %q", dnErr.Detail("text"), "2025-02-29")
	}
	if dnErr.Detail("pattern") != "yyyy-MM-dd" {
		t.Errorf("Detail(pattern) = %v, want %q", dnErr.Detail("pattern"), "yyyy-MM-dd")
	}
}

func TestParseExactBadPattern(t *testing.T) {
	_, err := ParseExact("2026-01-03", "yyyy-QQ-dd", Invariant())
	if err == nil {
		t.Fatal("expected error for unknown token")
	}
	if !dnerror.HasCode(err, dnerror.CodePattern) {
		t.Errorf("error code = %v, want PATTERN_ERROR", dnerror.GetCode(err))
	}
}

func TestHourTokenWidths(t *testing.T) {
	// HH requires the zero-padded two-digit form; H accepts both widths.
	testCases := []struct {
		name    string
		text    string
		pattern string
		want    bool
	}{
		{"HH padded", "2026-01-03T04:30:45", "yyyy-MM-ddTHH:mm:ss", true},
		{"HH unpadded", "2026-01-03T4:30:45", "yyyy-MM-ddTHH:mm:ss", false},
		{"H padded", "2026-01-03T04:30:45", "yyyy-MM-ddTH:mm:ss", true},
		{"H unpadded", "2026-01-03T4:30:45", "yyyy-MM-ddTH:mm:ss", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TryMatch(tc.text, tc.pattern, Invariant()); got != tc.want {
				t.Errorf("TryMatch(%q, %q) = %v, want %v", tc.text, tc.pattern, got, tc.want)
			}
		})
	}
}

func TestParseExactBlankPatternUsesCanonical(t *testing.T) {
	fromBlank, err1 := ParseExact("2026-01-03T14:30:45", "", Invariant())
	fromCanonical, err2 := ParseExact("2026-01-03T14:30:45", CanonicalPattern, Invariant())

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !fromBlank.Equal(fromCanonical) {
		t.Errorf("blank pattern = %+v, canonical = %+v", fromBlank, fromCanonical)
	}
}

func TestParseOffsetBlankPatternUsesCanonical(t *testing.T) {
	result, err := ParseOffset("2026-01-03T14:30:00+05:00", "", Invariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Offset != 5*time.Hour {
		t.Errorf("Offset = %v, want 5h", result.Offset)
	}
}

// ===============================
// TryMatch Tests
// ===============================

func TestTryMatchMirrorsParseExact(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		pattern string
	}{
		{"valid iso", "2026-01-03", "yyyy-MM-dd"},
		{"invalid calendar", "2025-02-29", "yyyy-MM-dd"},
		{"mismatched layout", "01/03/2026", "yyyy-MM-dd"},
		{"bad pattern", "2026-01-03", "yyyy-QQ-dd"},
		{"empty input", "", "yyyy-MM-dd"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseExact(tc.text, tc.pattern, Invariant())
			want := err == nil

			if got := TryMatch(tc.text, tc.pattern, Invariant()); got != want {
				t.Errorf("TryMatch(%q, %q) = %v, want %v", tc.text, tc.pattern, got, want)
			}
		})
	}
}

// ===============================
// ParseToUTC Tests
// ===============================

func TestParseToUTCFromUTCKeepsFields(t *testing.T) {
	result, err := ParseToUTC("2026-07-15T23:45:10", "yyyy-MM-ddTHH:mm:ss", KindUTC, Invariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := CivilDateTime{
		Year: 2026, Month: time.July, Day: 15,
		Hour: 23, Minute: 45, Second: 10,
		Kind: KindUTC,
	}
	if !result.Equal(expected) {
		t.Errorf("result = %+v, want %+v (no numeric change for UTC source)", result, expected)
	}
}

func TestParseToUTCFromLocalUsesZoneRules(t *testing.T) {
	result, err := ParseToUTC("2026-07-15T23:45:10", "yyyy-MM-ddTHH:mm:ss", KindLocal, Invariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Expected value computed through the same zone database the conversion
	// must use, so the test holds in any TZ environment.
	want := FromTime(time.Date(2026, time.July, 15, 23, 45, 10, 0, time.Local).In(time.UTC), KindUTC)
	if !result.Equal(want) {
		t.Errorf("result = %+v, want %+v", result, want)
	}
}

func TestParseToUTCUnspecifiedEqualsLocal(t *testing.T) {
	inputs := []struct {
		text    string
		pattern string
	}{
		{"2026-01-03T14:30:00", "yyyy-MM-ddTHH:mm:ss"},
		{"2026-07-15T02:00:00", "yyyy-MM-ddTHH:mm:ss"}, // near DST boundaries in many zones
		{"2026-12-31", "yyyy-MM-dd"},
	}

	for _, in := range inputs {
		t.Run(in.text, func(t *testing.T) {
			fromLocal, err1 := ParseToUTC(in.text, in.pattern, KindLocal, Invariant())
			fromUnspecified, err2 := ParseToUTC(in.text, in.pattern, KindUnspecified, Invariant())

			if err1 != nil || err2 != nil {
				t.Fatalf("unexpected errors: %v, %v", err1, err2)
			}
			if !fromLocal.Equal(fromUnspecified) {
				t.Errorf("policy violation: local=%+v unspecified=%+v", fromLocal, fromUnspecified)
			}
		})
	}
}

func TestParseToUTCWrapsParseFailure(t *testing.T) {
	_, err := ParseToUTC("not-a-date", "yyyy-MM-dd", KindLocal, Invariant())
	if err == nil {
		t.Fatal("expected error")
	}

	if !dnerror.HasCode(err, dnerror.CodeConversion) {
		t.Errorf("outer code missing: %v", dnerror.GetCode(err))
	}
	// The underlying parse failure stays reachable in the chain
	if !dnerror.HasCode(err, dnerror.CodeParse) {
		t.Error("CONVERSION_ERROR should wrap the underlying PARSE_ERROR")
	}
}

func TestParseToUTCInvalidKind(t *testing.T) {
	_, err := ParseToUTC("2026-01-03", "yyyy-MM-dd", Kind(42), Invariant())
	if err == nil {
		t.Fatal("expected error for invalid kind")
	}
	if !dnerror.HasCode(err, dnerror.CodeInvalidInput) {
		t.Errorf("error code = %v, want INVALID_INPUT", dnerror.GetCode(err))
	}
}

// ===============================
// ParseOffset Tests
// ===============================

func TestParseOffset(t *testing.T) {
	testCases := []struct {
		name        string
		text        string
		pattern     string
		wantErr     bool
		wantCode    dnerror.Code
		offset      time.Duration
		utcHour     int
		utcMinute   int
		wallHour    int
		wallMinute  int
	}{
		{
			name:    "positive whole-hour offset",
			text:    "2026-01-03T14:30:00+05:00", pattern: "yyyy-MM-ddTHH:mm:sszzz",
			offset: 5 * time.Hour, utcHour: 9, utcMinute: 30, wallHour: 14, wallMinute: 30,
		},
		{
			name:    "fractional-hour offset",
			text:    "2026-01-03T14:30:00+05:30", pattern: "yyyy-MM-ddTHH:mm:sszzz",
			offset: 5*time.Hour + 30*time.Minute, utcHour: 9, utcMinute: 0, wallHour: 14, wallMinute: 30,
		},
		{
			name:    "negative offset",
			text:    "2026-01-03T14:30:00-03:00", pattern: "yyyy-MM-ddTHH:mm:sszzz",
			offset: -3 * time.Hour, utcHour: 17, utcMinute: 30, wallHour: 14, wallMinute: 30,
		},
		{
			name:    "zulu via K token",
			text:    "2026-01-03T14:30:00Z", pattern: "yyyy-MM-ddTHH:mm:ssK",
			offset: 0, utcHour: 14, utcMinute: 30, wallHour: 14, wallMinute: 30,
		},
		{
			name:    "numeric offset via K token",
			text:    "2026-01-03T14:30:00+02:00", pattern: "yyyy-MM-ddTHH:mm:ssK",
			offset: 2 * time.Hour, utcHour: 12, utcMinute: 30, wallHour: 14, wallMinute: 30,
		},
		{
			name: "pattern without offset token",
			text: "2026-01-03T14:30:00", pattern: "yyyy-MM-ddTHH:mm:ss",
			wantErr: true, wantCode: dnerror.CodePattern,
		},
		{
			name: "text without offset",
			text: "2026-01-03T14:30:00", pattern: "yyyy-MM-ddTHH:mm:sszzz",
			wantErr: true, wantCode: dnerror.CodeParse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := ParseOffset(tc.text, tc.pattern, Invariant())

			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseOffset(%q, %q) expected error", tc.text, tc.pattern)
				}
				if !dnerror.HasCode(err, tc.wantCode) {
					t.Errorf("error code = %v, want %v", dnerror.GetCode(err), tc.wantCode)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseOffset(%q, %q) unexpected error: %v", tc.text, tc.pattern, err)
			}

			if result.Offset != tc.offset {
				t.Errorf("Offset = %v, want %v", result.Offset, tc.offset)
			}
			if result.Civil.Hour != tc.wallHour || result.Civil.Minute != tc.wallMinute {
				t.Errorf("wall clock = %02d:%02d, want %02d:%02d",
					result.Civil.Hour, result.Civil.Minute, tc.wallHour, tc.wallMinute)
			}
			if result.Civil.Kind != KindUnspecified {
				t.Errorf("Civil.Kind = %v, want KindUnspecified", result.Civil.Kind)
			}

			utc := result.UTCInstant()
			if utc.Hour != tc.utcHour || utc.Minute != tc.utcMinute {
				t.Errorf("UTCInstant = %02d:%02d, want %02d:%02d", utc.Hour, utc.Minute, tc.utcHour, tc.utcMinute)
			}
			if utc.Kind != KindUTC {
				t.Errorf("UTCInstant.Kind = %v, want KindUTC", utc.Kind)
			}
		})
	}
}

func TestParseOffsetSignedZeroRendersPositive(t *testing.T) {
	result, err := ParseOffset("2026-01-03T14:30:00-00:00", "yyyy-MM-ddTHH:mm:sszzz", Invariant())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Offset != 0 {
		t.Errorf("Offset = %v, want 0", result.Offset)
	}
	// The sign of a zero offset is not representable in a duration
	if got := result.OffsetString(); got != "+00:00" {
		t.Errorf("OffsetString() = %q, want +00:00", got)
	}
}

func TestParseOffsetUTCInstantProperty(t *testing.T) {
	// For all offsets o: UTCInstant == wall clock - o, exactly.
	offsets := []string{"+00:00", "+01:00", "+05:30", "+09:45", "-03:00", "-11:30"}

	for _, o := range offsets {
		t.Run(o, func(t *testing.T) {
			result, err := ParseOffset("2026-06-10T12:00:00"+o, "yyyy-MM-ddTHH:mm:sszzz", Invariant())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			want := FromTime(result.Civil.Time(time.UTC).Add(-result.Offset), KindUTC)
			if !result.UTCInstant().Equal(want) {
				t.Errorf("UTCInstant() = %+v, want %+v", result.UTCInstant(), want)
			}
			// The stored offset is untouched by the derivation
			if got := result.OffsetString(); got != o {
				t.Errorf("OffsetString() = %q, want %q", got, o)
			}
		})
	}
}
