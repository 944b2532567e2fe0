// File: locale_test.go
// Title: Locale Tests
// Description: Tests for the Locale value covering the invariant default,
//              name translation during parsing, and the zero-value contract.
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

// german is a hand-rolled locale table used as the non-invariant fixture
func german() Locale {
	return Locale{
		Name: "de",
		MonthNames: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthAbbrevs: [12]string{
			"Jan", "Feb", "Mär", "Apr", "Mai", "Jun",
			"Jul", "Aug", "Sep", "Okt", "Nov", "Dez",
		},
		DayNames: [7]string{
			"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag",
		},
		DayAbbrevs: [7]string{
			"So", "Mo", "Di", "Mi", "Do", "Fr", "Sa",
		},
		AMPM: [2]string{"vorm.", "nachm."},
	}
}

func TestIsInvariant(t *testing.T) {
	if !(Locale{}).IsInvariant() {
		t.Error("zero locale must be invariant")
	}
	if !Invariant().IsInvariant() {
		t.Error("Invariant() must report invariant")
	}
	if german().IsInvariant() {
		t.Error("named locale must not report invariant")
	}
}

func TestZeroLocaleBehavesAsInvariant(t *testing.T) {
	// Name tokens parse English names under the zero value, exactly as they
	// do under the explicit invariant locale.
	fromZero, err1 := ParseExact("03 January 2026", "dd MMMM yyyy", Locale{})
	fromInvariant, err2 := ParseExact("03 January 2026", "dd MMMM yyyy", Invariant())

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !fromZero.Equal(fromInvariant) {
		t.Errorf("zero locale = %+v, invariant = %+v", fromZero, fromInvariant)
	}
}

func TestParseWithLocaleNames(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		pattern  string
		expected CivilDateTime
	}{
		{
			"full month name",
			"03 März 2026", "dd MMMM yyyy",
			CivilDateTime{Year: 2026, Month: time.March, Day: 3},
		},
		{
			"abbreviated month name",
			"03 Dez 2026", "dd MMM yyyy",
			CivilDateTime{Year: 2026, Month: time.December, Day: 3},
		},
		{
			"full day name",
			"Samstag, 03 Januar 2026", "dddd, dd MMMM yyyy",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3},
		},
		{
			"time designator",
			"2026-01-03 02:30 nachm.", "yyyy-MM-dd hh:mm tt",
			CivilDateTime{Year: 2026, Month: time.January, Day: 3, Hour: 14, Minute: 30},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseExact(tc.text, tc.pattern, german())
			if err != nil {
				t.Fatalf("ParseExact(%q, %q) unexpected error: %v", tc.text, tc.pattern, err)
			}
			if !got.Equal(tc.expected) {
				t.Errorf("ParseExact(%q, %q) = %+v, want %+v", tc.text, tc.pattern, got, tc.expected)
			}
		})
	}
}

func TestLocaleNeverAffectsNumericTokens(t *testing.T) {
	// Digits and separators are locale-independent: a purely numeric pattern
	// parses identically under every locale.
	fromGerman, err1 := ParseExact("2026-01-03T14:30:45", "yyyy-MM-ddTHH:mm:ss", german())
	fromInvariant, err2 := ParseExact("2026-01-03T14:30:45", "yyyy-MM-ddTHH:mm:ss", Invariant())

	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if !fromGerman.Equal(fromInvariant) {
		t.Errorf("locale leaked into numeric parsing: %+v vs %+v", fromGerman, fromInvariant)
	}
}

func TestInvariantNamesRejectedUnderForeignLocale(t *testing.T) {
	// Under a non-invariant locale the locale's names are expected, and the
	// German day "Samstag" is not a valid English name.
	if TryMatch("Samstag, 03 Januar 2026", "dddd, dd MMMM yyyy", Invariant()) {
		t.Error("German names must not parse under the invariant locale")
	}
}
