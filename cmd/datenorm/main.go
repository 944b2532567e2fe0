// File: main.go
// Title: datenorm Entry Point
// Description: Thin entry point delegating to the CLI command tree and
//              translating errors into exit statuses.
// Version: v0.1.0
// Created: 2026-04-04
// Modified: 2026-04-04
//
// Change History:
// - 2026-04-04 v0.1.0: Initial implementation

package main

import (
	"os"

	"datenorm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(cli.ExitStatus(err))
	}
}
