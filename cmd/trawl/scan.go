package main

import (
	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/ignore"
	"github.com/qforic/trawl/internal/logging"
	"github.com/qforic/trawl/internal/scan"
	"github.com/qforic/trawl/internal/streams"
)

var scanFlags = struct {
	ruleFlags
	out  string
	rate int
}{}

var scanCmd = &cobra.Command{
	Use:   "scan [roots...]",
	Short: "Walk roots and print the files surviving the ignore rules",
	Long: `Walk each root (default: the current directory) and print every file
that no ignore rule matches, one path per line.

Unreadable directories are skipped; a rule that cannot be built or a path
that cannot be canonicalized aborts the scan.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.Logger()
		rules, err := scanFlags.rules(logger)
		if err != nil {
			return err
		}
		filter := scan.CombineFilters(ignore.NewFilter(rules, logger))
		opts := &scan.Options{MaxFilesPerSecond: resolveRate(scanFlags.rate, nil), Logger: logger}

		var found []string
		for _, root := range rootsFromArgs(args) {
			paths, err := scan.Find(cmd.Context(), root, filter, opts)
			if err != nil {
				return err
			}
			found = append(found, paths...)
		}

		out, desc, err := streams.Output(scanFlags.out)
		if err != nil {
			return err
		}
		if err := streams.WriteLines(out, found); err != nil {
			_ = out.Close()
			return err
		}
		if err := out.Close(); err != nil {
			return err
		}
		logger.Info("scan complete", "files", len(found), "output", desc)
		return nil
	},
}

func init() {
	scanFlags.register(scanCmd)
	scanCmd.Flags().StringVarP(&scanFlags.out, "out", "o", "", "write results here instead of stdout (- for stdout)")
	scanCmd.Flags().IntVar(&scanFlags.rate, "rate", 0, "max files per second offered to the filter (0 = unlimited)")
}
