package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/qforic/trawl/internal/config"
	"github.com/qforic/trawl/internal/inventory"
)

var scansCmd = &cobra.Command{
	Use:   "scans",
	Short: "List recorded index runs",
	Args:  cobra.NoArgs,
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

		scans, err := inventory.ListScans(ctx, db)
		if err != nil {
			return err
		}
		for _, s := range scans {
			finished := "running"
			if s.FinishedAt != nil {
				finished = s.FinishedAt.Format(time.RFC3339)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\t%d\t%s\n",
				s.ID, s.StartedAt.Format(time.RFC3339), finished, s.FileCount, s.Roots)
		}
		return nil
	},
}
