// File: stringx.go
// Title: Core String Utilities
// Description: Implements blank/empty checks, padding, and default-value
//              helpers for consistent string handling across datenorm.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation

package stringx

import (
	"strings"
	"unicode"
)

// IsEmpty checks if a string is empty
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank checks if a string is empty or contains only whitespace
func IsBlank(s string) bool {
	if len(s) == 0 {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank checks if a string contains at least one non-whitespace character
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first string that is not blank
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// FromBlankDefault returns the default value if the string is blank
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// PadLeft pads a string on the left with the given rune until it reaches width
func PadLeft(s string, width int, pad rune) string {
	gap := width - len([]rune(s))
	if gap <= 0 {
		return s
	}
	return strings.Repeat(string(pad), gap) + s
}

// Truncate shortens a string to maxLen runes, appending ellipsis when cut.
// The ellipsis counts against maxLen.
func Truncate(s string, maxLen int, ellipsis string) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	ellipsisRunes := []rune(ellipsis)
	if maxLen <= len(ellipsisRunes) {
		return string(ellipsisRunes[:maxLen])
	}
	return string(runes[:maxLen-len(ellipsisRunes)]) + ellipsis
}
