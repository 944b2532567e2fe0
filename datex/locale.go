// File: locale.go
// Title: Locale Tables
// Description: Implements the explicit Locale value threaded through every
//              parsing call. Only name tokens (month, day, AM/PM) are
//              locale-sensitive; digits and separators never are. The zero
//              Locale is the invariant locale, so behavior can never depend
//              on ambient process state.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"strings"
)

// InvariantName identifies the built-in invariant locale
const InvariantName = "invariant"

// Locale supplies the name tables used when a pattern contains name tokens
// (MMMM, MMM, dddd, ddd, tt). The zero value is equivalent to Invariant().
type Locale struct {
	Name string

	MonthNames   [12]string
	MonthAbbrevs [12]string
	DayNames     [7]string
	DayAbbrevs   [7]string
	AMPM         [2]string
}

// Invariant returns the fixed invariant locale: English names, the only
// locale with built-in tables
func Invariant() Locale {
	return Locale{
		Name: InvariantName,
		MonthNames: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthAbbrevs: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		DayNames: [7]string{
			"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
		},
		DayAbbrevs: [7]string{
			"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
		},
		AMPM: [2]string{"AM", "PM"},
	}
}

// IsInvariant reports whether the locale behaves as the invariant locale
func (l Locale) IsInvariant() bool {
	return l.Name == "" || l.Name == InvariantName
}

// toInvariant rewrites locale-specific names in text to their invariant
// equivalents so the strict parser can consume them. All pairs are applied
// in a single pass so that substituted output is never rescanned; full names
// are listed before abbreviations so a full name is never half-consumed by
// its own abbreviation.
func (l Locale) toInvariant(text string) string {
	if l.IsInvariant() {
		return text
	}

	inv := Invariant()
	pairs := make([]string, 0, 2*(12+7+12+7+2))

	for i := 0; i < 12; i++ {
		pairs = appendNamePair(pairs, l.MonthNames[i], inv.MonthNames[i])
	}
	for i := 0; i < 7; i++ {
		pairs = appendNamePair(pairs, l.DayNames[i], inv.DayNames[i])
	}
	for i := 0; i < 12; i++ {
		pairs = appendNamePair(pairs, l.MonthAbbrevs[i], inv.MonthAbbrevs[i])
	}
	for i := 0; i < 7; i++ {
		pairs = appendNamePair(pairs, l.DayAbbrevs[i], inv.DayAbbrevs[i])
	}
	for i := 0; i < 2; i++ {
		pairs = appendNamePair(pairs, l.AMPM[i], inv.AMPM[i])
	}

	if len(pairs) == 0 {
		return text
	}
	return strings.NewReplacer(pairs...).Replace(text)
}

func appendNamePair(pairs []string, from, to string) []string {
	if from == "" || from == to {
		return pairs
	}
	return append(pairs, from, to)
}
