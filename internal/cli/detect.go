// File: detect.go
// Title: Detect Command
// Description: Implements "datenorm detect": first-match-wins parsing over
//              the effective candidate pattern list.
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
	"datenorm/core/log"
	"datenorm/datex"
)

var detectPatterns []string

var detectCmd = &cobra.Command{
	Use:   "detect TEXT",
	Short: "Try an ordered list of candidate patterns",
	Long: `Tries the candidate patterns in order and reports the first match.
Candidates come from --patterns, then the [patterns] config section,
then the built-in list; order decides ambiguous inputs.`,
	Args: cobra.ExactArgs(1),
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringSliceVar(&detectPatterns, "patterns", nil, "comma-separated candidate patterns tried in order")
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	text := args[0]
	candidates := candidatePatterns(detectPatterns)

	result := datex.ParseFlexible(text, candidates, locale)
	if !result.Success {
		logger.Debug("detection exhausted", log.Fields{"attempted": result.Attempted})
		return dnerror.New(result.Diagnostic).
			WithCode(dnerror.CodeParse).
			WithOperation("cli.detect").
			WithDetail("attempted", result.Attempted)
	}

	logger.Debug("detected", log.Fields{"pattern": result.Pattern, "attempted": result.Attempted})

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "pattern: %s\n", result.Pattern)
	fmt.Fprintf(out, "value:   %s\n", datex.Format(result.Value, datex.FormatOptions{}))
	return nil
}
