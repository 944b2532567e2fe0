// File: kind.go
// Title: Date/Time Kind Definitions
// Description: Defines the closed Kind enumeration (Unspecified, Local, UTC)
//              attached to civil date-time values. The kind governs UTC
//              conversion semantics and is only ever set by explicit caller
//              directive, never inferred from input data.
// Version: v0.1.0
// Created: 2026-04-03
// Modified: 2026-04-03
//
// Change History:
// - 2026-04-03 v0.1.0: Initial implementation

package datex

import (
	"strings"

	dnerror "datenorm/core/error"
)

// Kind tags a civil date-time with its timezone interpretation
type Kind int

const (
	// KindUnspecified marks a value with no timezone interpretation yet.
	// During UTC conversion it is treated like KindLocal; see ToUTC.
	KindUnspecified Kind = iota

	// KindLocal marks a value expressed in the process-local timezone
	KindLocal

	// KindUTC marks a value expressed in Coordinated Universal Time
	KindUTC
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindUnspecified:
		return "unspecified"
	case KindLocal:
		return "local"
	case KindUTC:
		return "utc"
	default:
		return "unknown"
	}
}

// IsValid checks if the kind is one of the three defined values
func (k Kind) IsValid() bool {
	switch k {
	case KindUnspecified, KindLocal, KindUTC:
		return true
	default:
		return false
	}
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unspecified":
		return KindUnspecified, nil
	case "local":
		return KindLocal, nil
	case "utc":
		return KindUTC, nil
	default:
		return KindUnspecified, dnerror.Newf("unknown kind: %s", s).
			WithCode(dnerror.CodeInvalidInput).
			WithDetail("kind", s)
	}
}
