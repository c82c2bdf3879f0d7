package main

import (
	"database/sql"
	"errors"

	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/config"
	"github.com/qforic/trawl/internal/inventory"
	"github.com/qforic/trawl/internal/logging"
	"github.com/qforic/trawl/internal/streams"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <substring>",
	Short: "Print indexed paths containing the substring",
	Long: `Search the most recent finished scan snapshot for paths containing the
given substring and print them sorted, one per line. No filesystem walk
happens; answers come from the inventory recorded by trawl index.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		db, err := openInventory(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		sc, err := inventory.LatestFinishedScan(ctx, db)
		if errors.Is(err, sql.ErrNoRows) {
			return errors.New("no finished scans in the inventory; run trawl index first")
		}
		if err != nil {
			return err
		}
		paths, err := inventory.Lookup(ctx, db, sc.ID, args[0])
		if err != nil {
			return err
		}
		logging.Logger().Info("lookup", "scan", sc.ID, "matches", len(paths))
		return streams.WriteLines(cmd.OutOrStdout(), paths)
	},
}
