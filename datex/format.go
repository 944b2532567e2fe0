// File: format.go
// Title: Canonical Rendering
// Description: Implements the canonical, locale-invariant rendering of civil
//              date-time values. Output is deterministic: equal values with
//              equal options always render identical text.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"fmt"
)

// FormatOptions controls canonical rendering
type FormatOptions struct {
	// UseUTC converts the value to UTC first (via the Local-assumption
	// policy when the kind is Unspecified) and appends a trailing Z
	UseUTC bool

	// IncludeSubsecond appends the millisecond fraction, always exactly
	// three zero-padded digits
	IncludeSubsecond bool
}

// Format renders a canonical, zero-padded, locale-invariant representation:
// YYYY-MM-DDThh:mm:ss, optionally suffixed with .fff and/or Z
func Format(v CivilDateTime, opts FormatOptions) string {
	if opts.UseUTC && v.Kind != KindUTC {
		v = v.ToUTC()
	}

	text := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d",
		v.Year, int(v.Month), v.Day, v.Hour, v.Minute, v.Second)

	if opts.IncludeSubsecond {
		text += fmt.Sprintf(".%03d", v.Millisecond())
	}

	if opts.UseUTC {
		text += "Z"
	}

	return text
}
