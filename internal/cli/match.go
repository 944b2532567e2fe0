// File: match.go
// Title: Match Command
// Description: Implements "datenorm match": a parse probe whose verdict is
//              carried by the exit status.
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

	dnerror "datenorm/core/error"
	"datenorm/datex"
	"datenorm/utils/stringx"
)

var matchPattern string

var matchCmd = &cobra.Command{
	Use:   "match TEXT",
	Short: "Check whether text matches a pattern",
	Long: `Checks whether TEXT would parse strictly against --pattern.
Prints the verdict and exits 0 on a match, 1 otherwise.`,
	Args: cobra.ExactArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchPattern, "pattern", "p", "", "format pattern to probe (default: "+datex.CanonicalPattern+")")
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	text := args[0]
	pattern := stringx.FromBlankDefault(matchPattern, datex.CanonicalPattern)

	if datex.TryMatch(text, pattern, locale) {
		fmt.Fprintln(cmd.OutOrStdout(), "match")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "no match")
	return dnerror.Newf("text %q does not match pattern %q", text, pattern).
		WithCode(dnerror.CodeParse).
		WithOperation("cli.match")
}
