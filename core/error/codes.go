// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across datenorm. These codes enable structured
//              error handling, CLI exit-status mapping, and testable error
//              taxonomies.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for datenorm
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Date/time parsing and normalization
	CodeParse      Code = "PARSE_ERROR"
	CodeConversion Code = "CONVERSION_ERROR"
	CodePattern    Code = "PATTERN_ERROR"
	CodeLocale     Code = "LOCALE_ERROR"

	// Configuration and environment
	CodeConfig        Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeParse, CodeConversion, CodePattern, CodeLocale,
		CodeConfig, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeParse, CodeConversion, CodePattern, CodeLocale:
		return "datetime"
	case CodeConfig, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// ExitStatus returns the process exit status a CLI caller should use for
// this error code. Usage errors are reported by the CLI itself with status 2.
func (c Code) ExitStatus() int {
	switch c {
	case CodeParse, CodeConversion, CodePattern, CodeLocale, CodeInvalidInput:
		return 1
	case CodeConfig, CodeMissingConfig, CodeInvalidConfig:
		return 2
	default:
		return 1
	}
}
