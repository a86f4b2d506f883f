package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/MartinWickman/mello2026/cliparse"
	"github.com/MartinWickman/mello2026/logger"
	"github.com/MartinWickman/mello2026/report"
	"github.com/MartinWickman/mello2026/tally"
	"github.com/MartinWickman/mello2026/tsvparse"
)

const version = "1.0.0"

// errUsage marks invocations with the wrong arguments. Usage has already
// been printed when it is returned; main only needs the exit code.
var errUsage = errors.New("expected exactly one ballot file argument")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Validation failures and usage mistakes already produced their
		// output; everything else is structural and gets logged.
		if !errors.Is(err, tally.ErrBallotsInvalid) && !errors.Is(err, errUsage) {
			slog.Error("tally failed", "error", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts cliparse.Options

	cmd := &cobra.Command{
		Use:     "mello2026 <tsv-file>",
		Short:   "Validate and tally Mello ballots from a Forms TSV export",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		// Errors and usage are handled in RunE and main; cobra's automatic
		// printing would land after the report.
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
				return errUsage
			}

			cfg, err := cliparse.Resolve(opts)
			if err != nil {
				return err
			}
			logger.Init(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)

			return run(cfg, args[0], cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", `report banner title (default "`+cliparse.DefaultTitle+`")`)
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level: debug, info, warn, or error")
	cmd.Flags().StringVar(&opts.LogFormat, "log-format", "", "log format: text or json")

	return cmd
}

// run parses the export, validates, tallies, and writes the report. A
// non-nil return is either tally.ErrBallotsInvalid after a complete report,
// or a structural problem that aborted before any output.
func run(cfg cliparse.Config, path string, out io.Writer) error {
	songs, ballots, err := tsvparse.ParseFile(path)
	if err != nil {
		return err
	}
	slog.Info("ballots loaded", "file", path, "voters", len(ballots), "songs", len(songs))

	violations := tally.Validate(songs, ballots)
	if len(violations) > 0 {
		slog.Warn("ballot validation failed", "violations", len(violations))
		report.WriteValidationErrors(out, violations)
	}

	results := tally.Rank(tally.Aggregate(songs, ballots))
	report.WriteResults(out, cfg.Title, songs, ballots, results)

	if len(violations) > 0 {
		return tally.ErrBallotsInvalid
	}
	return nil
}
