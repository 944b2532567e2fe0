// File: root.go
// Title: CLI Root Command
// Description: Defines the datenorm root command, its persistent flags, and
//              the shared runtime (configuration, logger, locale) every
//              subcommand uses. Errors are translated into process exit
//              statuses here, at the outermost boundary.
// Version: v0.1.0
// Created: 2026-04-04
// Modified: 2026-04-04
//
// Change History:
// - 2026-04-04 v0.1.0: Initial implementation

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"datenorm/core/config"
	dnerror "datenorm/core/error"
	"datenorm/core/log"
	"datenorm/datex"
	"datenorm/utils/stringx"
)

// EnvPrefix is the prefix for environment variable overrides
const EnvPrefix = "DATENORM"

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *log.Logger
	locale datex.Locale
)

var rootCmd = &cobra.Command{
	Use:   "datenorm",
	Short: "Strict date/time parsing and normalization",
	Long: `datenorm parses date/time text against explicit patterns and
normalizes the result to canonical or UTC form.

Commands:
  parse    - parse text against a pattern and render it canonically
  convert  - parse text and convert it to UTC
  offset   - parse text carrying an explicit UTC offset
  match    - check whether text matches a pattern (verdict via exit code)
  detect   - try an ordered list of candidate patterns
  patterns - show the effective candidate pattern list`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
}

// Execute runs the command tree and reports failures on stderr
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "datenorm: %v\n", err)
	}
	return err
}

// ExitStatus maps a command error to the process exit status: structured
// errors carry their own mapping, anything else is a usage error.
func ExitStatus(err error) int {
	if err == nil {
		return 0
	}
	var dnErr *dnerror.Error
	if errors.As(err, &dnErr) {
		return dnErr.Code().ExitStatus()
	}
	return 2
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./datenorm.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (text, json, console)")
}

// initRuntime loads the configuration and builds the logger and locale
// shared by all subcommands. Flags beat environment, environment beats file.
func initRuntime(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = loadConfig()
	if err != nil {
		return err
	}

	logger, err = buildLogger()
	if err != nil {
		return err
	}

	locale, err = localeFromConfig(cfg)
	if err != nil {
		logger.LogError(err)
		return err
	}

	logger.Debug("runtime initialized", log.Fields{
		"config": stringx.FromBlankDefault(cfg.FilePath(), "<none>"),
		"locale": stringx.FromBlankDefault(locale.Name, datex.InvariantName),
	})
	return nil
}

// loadConfig loads the configuration file. An explicit --config path must
// exist; the default path is optional.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = "datenorm.toml"
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, dnerror.Wrapf(err, "config file not found: %s", path).
				WithCode(dnerror.CodeMissingConfig).
				WithOperation("cli.loadConfig")
		}
		return config.NewEmpty(EnvPrefix), nil
	}

	return config.LoadWithOptions(path, config.LoadOptions{
		EnvPrefix: EnvPrefix,
		Defaults: map[string]interface{}{
			"log": map[string]interface{}{
				"level":  "info",
				"format": "text",
			},
		},
	})
}

// buildLogger assembles the CLI logger: level and format from config with
// flag overrides, plus a per-invocation request id.
func buildLogger() (*log.Logger, error) {
	levelName := stringx.FirstNonBlank(logLevel, cfg.GetString("log.level"), "info")
	level, err := log.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	formatName := stringx.FirstNonBlank(logFormat, cfg.GetString("log.format"), "text")
	format, err := log.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	return log.New().
		WithName("datenorm").
		WithLevel(level).
		WithFormat(format).
		WithRequestID(uuid.NewString()), nil
}

// localeFromConfig builds the parsing locale from the [locale] config
// section. Without one the invariant locale applies. Tables are data: every
// supplied table must be complete.
func localeFromConfig(cfg *config.Config) (datex.Locale, error) {
	name := cfg.GetString("locale.name")
	if stringx.IsBlank(name) || name == datex.InvariantName {
		return datex.Invariant(), nil
	}

	loc := datex.Invariant()
	loc.Name = name

	if err := fillTable(cfg, "locale.month_names", loc.MonthNames[:]); err != nil {
		return datex.Locale{}, err
	}
	if err := fillTable(cfg, "locale.month_abbrevs", loc.MonthAbbrevs[:]); err != nil {
		return datex.Locale{}, err
	}
	if err := fillTable(cfg, "locale.day_names", loc.DayNames[:]); err != nil {
		return datex.Locale{}, err
	}
	if err := fillTable(cfg, "locale.day_abbrevs", loc.DayAbbrevs[:]); err != nil {
		return datex.Locale{}, err
	}
	if err := fillTable(cfg, "locale.ampm", loc.AMPM[:]); err != nil {
		return datex.Locale{}, err
	}

	return loc, nil
}

// fillTable copies a configured name table into dst; a missing key keeps the
// invariant names, a present key must match the table length exactly
func fillTable(cfg *config.Config, key string, dst []string) error {
	if !cfg.Has(key) {
		return nil
	}

	values := cfg.GetStringSlice(key)
	if len(values) != len(dst) {
		return dnerror.Newf("locale table %s has %d entries, want %d", key, len(values), len(dst)).
			WithCode(dnerror.CodeLocale).
			WithOperation("cli.localeFromConfig").
			WithDetail("key", key)
	}

	copy(dst, values)
	return nil
}

// candidatePatterns returns the effective flexible-parse candidate list:
// command-line patterns beat the config catalog, which beats the built-ins
func candidatePatterns(flagPatterns []string) []string {
	if len(flagPatterns) > 0 {
		return flagPatterns
	}
	if configured := cfg.GetStringSlice("patterns.candidates"); len(configured) > 0 {
		return configured
	}
	return datex.DefaultPatterns()
}
