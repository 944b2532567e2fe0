// File: format_test.go
// Title: Canonical Rendering Tests
// Description: Tests for Format covering zero padding, subsecond rendering,
//              UTC conversion on output, determinism, and round trips.
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
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name     string
		value    CivilDateTime
		opts     FormatOptions
		expected string
	}{
		{
			"basic",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45},
			FormatOptions{},
			"2026-01-03T14:30:45",
		},
		{
			"single-digit fields are zero padded",
			CivilDateTime{Year: 202, Month: time.February, Day: 5, Hour: 4, Minute: 7, Second: 9},
			FormatOptions{},
			"0202-02-05T04:07:09",
		},
		{
			"subsecond always three digits",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45, Nanosecond: 45000000},
			FormatOptions{IncludeSubsecond: true},
			"2026-01-03T14:30:45.045",
		},
		{
			"subsecond zero",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
			FormatOptions{IncludeSubsecond: true},
			"2026-01-03T00:00:00.000",
		},
		{
			"utc value with utc output only gains the suffix",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Kind: KindUTC},
			FormatOptions{UseUTC: true},
			"2026-01-03T14:30:00Z",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(tc.value, tc.opts); got != tc.expected {
				t.Errorf("Format = %q, want %q", got, tc.expected)
			}
		})
	}
}

func TestFormatUseUTCConvertsNonUTCKinds(t *testing.T) {
	fields := CivilDateTime{Year: 2026, Month: time.July, Day: 15, Hour: 23, Minute: 45, Second: 10}

	asLocal := fields
	asLocal.Kind = KindLocal
	asUnspecified := fields
	asUnspecified.Kind = KindUnspecified

	converted := fields
	converted.Kind = KindLocal
	want := Format(converted.ToUTC(), FormatOptions{UseUTC: true})

	if got := Format(asLocal, FormatOptions{UseUTC: true}); got != want {
		t.Errorf("local: Format = %q, want %q", got, want)
	}
	// Unspecified follows the local-assumption policy on output too
	if got := Format(asUnspecified, FormatOptions{UseUTC: true}); got != want {
		t.Errorf("unspecified: Format = %q, want %q", got, want)
	}
}

func TestFormatIsDeterministic(t *testing.T) {
	v := CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30, Second: 45, Nanosecond: 123000000}
	opts := FormatOptions{IncludeSubsecond: true}

	first := Format(v, opts)
	for i := 0; i < 5; i++ {
		if got := Format(v, opts); got != first {
			t.Fatalf("rendering changed between calls: %q vs %q", first, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	inputs := []string{
		"2026-01-03T14:30:45",
		"2024-02-29T00:00:00",
		"0999-12-31T23:59:59",
	}

	for _, text := range inputs {
		t.Run(text, func(t *testing.T) {
			v, err := ParseExact(text, "yyyy-MM-ddTHH:mm:ss", Invariant())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := Format(v, FormatOptions{}); got != text {
				t.Errorf("round trip = %q, want %q", got, text)
			}
		})
	}
}
