// File: offset.go
// Title: Offset Command
// Description: Implements "datenorm offset": parse text carrying an explicit
//              UTC offset and show the wall clock, the offset, and the
//              derived UTC instant.
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

var offsetPattern string

var offsetCmd = &cobra.Command{
	Use:   "offset TEXT",
	Short: "Parse text carrying an explicit UTC offset",
	Long: `Parses TEXT against --pattern, which must contain an offset token
(zzz, zz, or K). The offset is preserved exactly as written; the UTC
instant is derived from it.`,
	Args: cobra.ExactArgs(1),
	RunE: runOffset,
}

func init() {
	offsetCmd.Flags().StringVarP(&offsetPattern, "pattern", "p", "", "format pattern with an offset token (default: "+datex.CanonicalOffsetPattern+")")
	rootCmd.AddCommand(offsetCmd)
}

func runOffset(cmd *cobra.Command, args []string) error {
	value, err := datex.ParseOffset(args[0], offsetPattern, locale)
	if err != nil {
		logger.LogError(err)
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "value:  %s\n", value.String())
	fmt.Fprintf(out, "offset: %s\n", value.OffsetString())
	fmt.Fprintf(out, "utc:    %s\n", datex.Format(value.UTCInstant(), datex.FormatOptions{UseUTC: true}))
	return nil
}
