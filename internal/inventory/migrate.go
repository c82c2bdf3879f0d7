package inventory

import "database/sql"

// Migrate creates the scans and files tables for SQLite if they do not
// exist, and enables foreign keys. Idempotent; safe to call on every
// startup.
func Migrate(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS scans (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		roots TEXT NOT NULL,
		started_at TEXT NOT NULL,
		finished_at TEXT,
		file_count INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		return err
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS files (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		scan_id INTEGER NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
		path TEXT NOT NULL
	)`); err != nil {
		return err
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_scans_started_at ON scans(started_at DESC)"); err != nil {
		return err
	}
	// Lookup reads (scan_id, path LIKE ...) ordered by path; the composite
	// index serves both the filter and the ordering.
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_files_scan_id_path ON files(scan_id, path)"); err != nil {
		return err
	}

	return nil
}
