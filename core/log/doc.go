// Package log provides structured, leveled logging for datenorm.
//
// Package: log
// Title: datenorm Logging Framework
// Description: This package implements a structured logger with log levels,
//              pluggable output formats (JSON, text, console), contextual
//              fields, request IDs, and integration with the datenorm error
//              system. The date/time core itself is pure and never logs;
//              this package serves the CLI and the configuration layer.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation with structured logging
//
// Usage:
//
//	logger := log.New().
//	    WithName("cli").
//	    WithLevel(log.LevelDebug).
//	    WithRequestID(requestID)
//
//	logger.Info("pattern matched", log.Fields{"pattern": "yyyy-MM-dd"})
//	logger.LogError(err)
package log
