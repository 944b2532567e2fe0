// File: patterns.go
// Title: Patterns Command
// Description: Implements "datenorm patterns": shows the effective candidate
//              pattern list in the order detect tries them.
// Version: v0.1.0
// Created: 2026-04-04
// Modified: 2026-04-04
//
// Change History:
// - 2026-04-04 v0.1.0: Initial implementation

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"datenorm/datex"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "Show the effective candidate pattern list",
	Long: `Shows the candidate patterns "detect" tries, in order. Patterns
configured under [patterns] replace the built-in list. Each pattern is
compiled so catalog mistakes surface here instead of at detection time.`,
	Args: cobra.NoArgs,
	RunE: runPatterns,
}

func init() {
	rootCmd.AddCommand(patternsCmd)
}

func runPatterns(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	for i, pattern := range candidatePatterns(nil) {
		fp, err := datex.CompilePattern(pattern)
		if err != nil {
			logger.LogError(err)
			return err
		}
		fmt.Fprintf(out, "%2d. %-30s -> %s\n", i+1, pattern, fp.Layout())
	}
	return nil
}
