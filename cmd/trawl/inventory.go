package main

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/qforic/trawl/internal/config"
	"github.com/qforic/trawl/internal/inventory"
)

// inventoryFileName is the SQLite database file created under the data dir.
const inventoryFileName = "trawl.db"

// openInventory opens the configured inventory backend and migrates it:
// PostgreSQL when TRAWL_DATABASE_URL is set, otherwise SQLite under the
// data dir (created if missing).
func openInventory(cfg *config.Config) (*sql.DB, error) {
	if url := cfg.DatabaseURL(); url != "" {
		db, err := inventory.OpenPostgres(url)
		if err != nil {
			return nil, err
		}
		if err := inventory.MigratePostgres(db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return db, nil
	}

	if err := os.MkdirAll(cfg.DataDir(), 0o750); err != nil {
		return nil, err
	}
	db, err := inventory.Open(filepath.Join(cfg.DataDir(), inventoryFileName))
	if err != nil {
		return nil, err
	}
	if err := inventory.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
