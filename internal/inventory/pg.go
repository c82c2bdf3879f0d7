package inventory

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenPostgres opens a PostgreSQL inventory using the given URL (e.g. from
// TRAWL_DATABASE_URL). Caller must Close when done; MigratePostgres should
// be called after open to create the schema.
func OpenPostgres(url string) (*sql.DB, error) {
	db, err := sql.Open("pgx", url)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	return db, nil
}

// MigratePostgres creates the scans and files tables and indexes if they do
// not exist. Idempotent; safe to call on every startup.
func MigratePostgres(db *sql.DB) error {
	// timestamptz for all timestamps; stored in UTC.
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS scans (
			id BIGSERIAL PRIMARY KEY,
			roots TEXT NOT NULL,
			started_at TIMESTAMPTZ NOT NULL,
			finished_at TIMESTAMPTZ,
			file_count BIGINT NOT NULL DEFAULT 0
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scans_started_at ON scans(started_at DESC)`,
		`CREATE TABLE IF NOT EXISTS files (
			id BIGSERIAL PRIMARY KEY,
			scan_id BIGINT NOT NULL REFERENCES scans(id) ON DELETE CASCADE,
			path TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_files_scan_id_path ON files(scan_id, path)`,
	}
	for _, q := range ddl {
		if _, err := db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}
