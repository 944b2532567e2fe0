// File: convert.go
// Title: Convert Command
// Description: Implements "datenorm convert": parse and normalize to UTC
//              under an explicit source kind.
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
	convertPattern   string
	convertKind      string
	convertSubsecond bool
)

var convertCmd = &cobra.Command{
	Use:   "convert TEXT",
	Short: "Parse text and convert it to UTC",
	Long: `Parses TEXT strictly against --pattern, tags it with the source
--kind, and prints the UTC instant.

  local        the process-local timezone rules apply
  utc          the fields are taken as-is
  unspecified  treated as local`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertPattern, "pattern", "p", "", "format pattern (default: "+datex.CanonicalPattern+")")
	convertCmd.Flags().StringVarP(&convertKind, "kind", "k", "local", "timezone kind of the input (unspecified, local, utc)")
	convertCmd.Flags().BoolVar(&convertSubsecond, "subsecond", false, "render the millisecond fraction")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	text := args[0]

	kind, err := datex.ParseKind(convertKind)
	if err != nil {
		return err
	}

	value, err := datex.ParseToUTC(text, convertPattern, kind, locale)
	if err != nil {
		logger.LogError(err)
		return err
	}

	logger.Debug("converted", log.Fields{"text": text, "sourceKind": kind.String()})

	fmt.Fprintln(cmd.OutOrStdout(), datex.Format(value, datex.FormatOptions{
		UseUTC:           true,
		IncludeSubsecond: convertSubsecond,
	}))
	return nil
}
