// Package config provides configuration management for datenorm.
//
// Package: config
// Title: datenorm Configuration Management
// Description: This package implements loading, parsing, and typed access to
//              configuration data from TOML and YAML files with environment
//              variable overrides. The CLI uses it for the flexible-parse
//              pattern catalog, formatting defaults, and logging settings.
// Version: v0.1.0
// Created: 2026-04-02
// Modified: 2026-04-02
//
// Change History:
// - 2026-04-02 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("datenorm.toml", config.LoadOptions{
//	    EnvPrefix: "DATENORM",
//	})
//	if err != nil {
//	    return err
//	}
//
//	patterns := cfg.GetStringSlice("flexible.patterns")
//	level := cfg.GetString("log.level", "info")
//
// Environment variables override file values: the key "log.level" with
// prefix "DATENORM" is overridden by DATENORM_LOG_LEVEL.
package config
