// Package error provides structured error handling for datenorm.
//
// Package: error
// Title: datenorm Error Handling Framework
// Description: This package implements a structured error type with error
//              codes, severity levels, contextual details, and stack traces.
//              The date/time core classifies its failures through the codes
//              defined here (PARSE_ERROR, CONVERSION_ERROR, PATTERN_ERROR),
//              and the CLI translates codes into process exit statuses.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Stack trace capture for debugging
// - Error severity levels and categorization
// - Exit-status mapping for CLI callers
//
// Usage:
//
//	import dnerror "datenorm/core/error"
//
//	// Create a new error with context
//	err := dnerror.New("text does not conform to pattern").
//	    WithCode(dnerror.CodeParse).
//	    WithDetail("text", "2025-02-29").
//	    WithDetail("pattern", "yyyy-MM-dd")
//
//	// Wrap an existing error with context
//	wrapped := dnerror.Wrap(err, "utc conversion failed").
//	    WithCode(dnerror.CodeConversion)
//
//	// Check error classification
//	if dnerror.HasCode(err, dnerror.CodeParse) {
//	    // handle parse failures specifically
//	}
package error
