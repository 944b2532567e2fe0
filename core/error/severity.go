// File: severity.go
// Title: Error Severity Definitions
// Description: Defines severity levels for error classification and the
//              default mapping from error codes to severities.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: malformed caller input, a pattern that fails to match
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: missing configuration file, unsupported locale table
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: corrupted configuration, invariant violations
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	// Examples: internal state corruption
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Caller-input failures; expected in normal operation
	case CodeParse, CodeConversion, CodePattern, CodeLocale, CodeInvalidInput:
		return SeverityLow

	// Environment problems; operation cannot proceed but the cause is external
	case CodeConfig, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	case CodeInternal:
		return SeverityHigh

	default:
		return SeverityMedium
	}
}
