// File: flexible.go
// Title: Flexible Multi-Pattern Parsing
// Description: Implements first-match-wins parsing over an ordered list of
//              candidate patterns. Failure is represented as data, never as
//              an error: callers of this entry point have declared their
//              uncertainty about the input format up front.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"fmt"
	"strings"
)

// FlexibleParseResult is the outcome of a multi-pattern parse attempt
type FlexibleParseResult struct {
	// Success reports whether any candidate pattern matched
	Success bool

	// Value is the parsed civil value on success
	Value CivilDateTime

	// Pattern is the candidate that matched on success
	Pattern string

	// Attempted counts the patterns tried before success or exhaustion
	Attempted int

	// Diagnostic summarizes the failed attempts; empty on success
	Diagnostic string
}

// DefaultPatterns returns the built-in ordered candidate list used when the
// caller supplies none. Order is significant: the first match wins, so more
// specific layouts come first.
func DefaultPatterns() []string {
	return []string{
		"yyyy-MM-ddTHH:mm:ss.fffzzz",
		"yyyy-MM-ddTHH:mm:sszzz",
		"yyyy-MM-ddTHH:mm:ss.fff",
		"yyyy-MM-ddTHH:mm:ss",
		"yyyy-MM-dd HH:mm:ss",
		"yyyy-MM-dd HH:mm",
		"yyyy-MM-dd",
		"MM/dd/yyyy HH:mm:ss",
		"MM/dd/yyyy",
		"dd.MM.yyyy",
		"yyyyMMddHHmmss",
		"yyyyMMdd",
	}
}

// ParseFlexible attempts ParseExact with each candidate pattern in order and
// returns on the first match. Pattern order is the caller's mechanism for
// resolving format ambiguity (MM/dd/yyyy versus dd/MM/yyyy); there is no
// best-match scoring. A nil or empty candidate list selects
// DefaultPatterns(). This operation never returns a Go error.
func ParseFlexible(text string, patterns []string, loc Locale) FlexibleParseResult {
	if len(patterns) == 0 {
		patterns = DefaultPatterns()
	}

	for i, pattern := range patterns {
		value, err := ParseExact(text, pattern, loc)
		if err == nil {
			return FlexibleParseResult{
				Success:   true,
				Value:     value,
				Pattern:   pattern,
				Attempted: i + 1,
			}
		}
	}

	return FlexibleParseResult{
		Success:   false,
		Attempted: len(patterns),
		Diagnostic: fmt.Sprintf("input %q matched none of the %d candidate patterns (tried: %s)",
			text, len(patterns), strings.Join(patterns, ", ")),
	}
}
