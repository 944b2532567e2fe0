// File: doc.go
// Title: CLI Package Documentation
// Description: Package overview for the datenorm command tree.
// Version: v0.1.0
// Created: 2026-04-04
// Modified: 2026-04-04
//
// Change History:
// - 2026-04-04 v0.1.0: Initial implementation

// Package cli implements the datenorm command tree. It is the translation
// layer between the datex library and the process boundary: flags and
// configuration select the parsing inputs, structured errors are mapped to
// exit statuses (0 success, 1 parse/conversion/pattern failure, 2 usage or
// configuration failure), and results are printed in canonical form.
package cli
