package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/config"
	"github.com/qforic/trawl/internal/ignore"
	"github.com/qforic/trawl/internal/inventory"
	"github.com/qforic/trawl/internal/logging"
	"github.com/qforic/trawl/internal/scan"
)

var indexFlags = struct {
	ruleFlags
	rate  int
	batch int
}{}

var indexCmd = &cobra.Command{
	Use:   "index [roots...]",
	Short: "Walk roots and record the surviving files in the inventory",
	Long: `Walk each root like scan does, but record the surviving files in the
inventory database instead of printing them. Each run becomes one scan
snapshot; an aborted run stays marked unfinished and is never served by
lookup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := logging.Logger()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		rules, err := indexFlags.rules(logger)
		if err != nil {
			return err
		}
		filter := scan.CombineFilters(ignore.NewFilter(rules, logger))

		db, err := openInventory(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		roots := rootsFromArgs(args)
		sc, err := inventory.BeginScan(ctx, db, strings.Join(roots, ","))
		if err != nil {
			return err
		}
		logger.Info("index started", "scan", sc.ID, "roots", sc.Roots)

		metrics := &scan.Metrics{}
		opts := &scan.Options{
			MaxFilesPerSecond: resolveRate(indexFlags.rate, cfg),
			Logger:            logger,
			Metrics:           metrics,
		}
		rec := inventory.NewRecorder(ctx, db, sc.ID, indexFlags.batch, logger)
		for _, root := range roots {
			if err := scan.Scan(ctx, root, filter, rec.Collect, opts); err != nil {
				// Leave the scan unfinished; lookup ignores it.
				return err
			}
		}
		if err := rec.Close(); err != nil {
			return err
		}
		if err := inventory.FinishScan(ctx, db, sc.ID, rec.Count()); err != nil {
			return err
		}
		logger.Info("index complete",
			"scan", sc.ID, "files", rec.Count(),
			"dirs", metrics.Dirs.Load(), "skipped", metrics.Skipped.Load())
		fmt.Fprintf(cmd.OutOrStdout(), "scan %d: %d files\n", sc.ID, rec.Count())
		return nil
	},
}

func init() {
	indexFlags.register(indexCmd)
	indexCmd.Flags().IntVar(&indexFlags.rate, "rate", 0, "max files per second offered to the filter (0 = unlimited)")
	indexCmd.Flags().IntVar(&indexFlags.batch, "batch", 0, "paths per inventory write (0 = default)")
}
