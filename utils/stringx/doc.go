// Package stringx provides small string helpers shared across datenorm.
//
// Package: stringx
// Title: String Utilities
// Description: Blank/empty checks, padding, and default-value helpers used
//              by the configuration layer and the CLI. Kept deliberately
//              small; anything date-specific lives in datex.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation
package stringx
