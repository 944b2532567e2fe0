// File: parse.go
// Title: Parse Command
// Description: Implements "datenorm parse": strict single-pattern parsing
//              with canonical rendering.
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

	"datenorm/core/log"
	"datenorm/datex"
)

var (
	parsePattern   string
	parseKind      string
	parseUTC       bool
	parseSubsecond bool
)

var parseCmd = &cobra.Command{
	Use:   "parse TEXT",
	Short: "Parse text against a pattern and render it canonically",
	Long: `Parses TEXT strictly against --pattern and prints the canonical
rendering. The pattern must describe the text fully; any leftover or
missing characters fail the parse.

With --kind the value is tagged before rendering; with --utc it is
converted to UTC first (unspecified values are treated as local).`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parsePattern, "pattern", "p", "", "format pattern (default: "+datex.CanonicalPattern+")")
	parseCmd.Flags().StringVarP(&parseKind, "kind", "k", "unspecified", "timezone kind of the input (unspecified, local, utc)")
	parseCmd.Flags().BoolVar(&parseUTC, "utc", false, "convert to UTC before rendering")
	parseCmd.Flags().BoolVar(&parseSubsecond, "subsecond", false, "render the millisecond fraction")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	text := args[0]

	kind, err := datex.ParseKind(parseKind)
	if err != nil {
		return err
	}

	value, err := datex.ParseExact(text, parsePattern, locale)
	if err != nil {
		logger.LogError(err)
		return err
	}
	value.Kind = kind

	logger.Debug("parsed", log.Fields{"text": text, "pattern": parsePattern, "kind": kind.String()})

	fmt.Fprintln(cmd.OutOrStdout(), datex.Format(value, datex.FormatOptions{
		UseUTC:           parseUTC,
		IncludeSubsecond: parseSubsecond,
	}))
	return nil
}
