package inventory

import (
	"context"
	"database/sql"
	"time"
)

// Scan is one recorded index run (metadata only; paths live in files).
type Scan struct {
	ID         int64
	Roots      string
	StartedAt  time.Time
	FinishedAt *time.Time
	FileCount  int64
}

// BeginScan inserts a scan with started_at set to now and returns it.
// finished_at stays null until FinishScan; an interrupted run is therefore
// visible as an unfinished scan and never served by LatestFinishedScan.
func BeginScan(ctx context.Context, db *sql.DB, roots string) (*Scan, error) {
	startedAt := time.Now().UTC().Format(time.RFC3339)
	var id int64
	err := db.QueryRowContext(ctx,
		"INSERT INTO scans (roots, started_at, finished_at, file_count) VALUES ($1, $2, NULL, 0) RETURNING id",
		roots, startedAt).Scan(&id)
	if err != nil {
		return nil, err
	}
	parsed, _ := time.Parse(time.RFC3339, startedAt)
	return &Scan{ID: id, Roots: roots, StartedAt: parsed}, nil
}

// FinishScan sets finished_at to now and records the final file count.
// Returns sql.ErrNoRows when the scan does not exist.
func FinishScan(ctx context.Context, db *sql.DB, id, fileCount int64) error {
	finishedAt := time.Now().UTC().Format(time.RFC3339)
	res, err := db.ExecContext(ctx,
		"UPDATE scans SET finished_at = $1, file_count = $2 WHERE id = $3",
		finishedAt, fileCount, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// GetScan returns the scan with the given id, or sql.ErrNoRows.
func GetScan(ctx context.Context, db *sql.DB, id int64) (*Scan, error) {
	var s Scan
	var startedAt rfc3339Time
	var finishedAt nullRFC3339Time
	err := db.QueryRowContext(ctx,
		"SELECT id, roots, started_at, finished_at, file_count FROM scans WHERE id = $1", id).
		Scan(&s.ID, &s.Roots, &startedAt, &finishedAt, &s.FileCount)
	if err != nil {
		return nil, err
	}
	s.StartedAt = startedAt.Time
	s.FinishedAt = finishedAt.Ptr()
	return &s, nil
}

// LatestFinishedScan returns the most recently finished scan, or
// sql.ErrNoRows when no scan has finished yet.
func LatestFinishedScan(ctx context.Context, db *sql.DB) (*Scan, error) {
	var s Scan
	var startedAt rfc3339Time
	var finishedAt nullRFC3339Time
	err := db.QueryRowContext(ctx,
		`SELECT id, roots, started_at, finished_at, file_count FROM scans
		 WHERE finished_at IS NOT NULL ORDER BY finished_at DESC, id DESC LIMIT 1`).
		Scan(&s.ID, &s.Roots, &startedAt, &finishedAt, &s.FileCount)
	if err != nil {
		return nil, err
	}
	s.StartedAt = startedAt.Time
	s.FinishedAt = finishedAt.Ptr()
	return &s, nil
}

// ListScans returns all scans ordered newest first.
func ListScans(ctx context.Context, db *sql.DB) ([]Scan, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, roots, started_at, finished_at, file_count FROM scans ORDER BY started_at DESC, id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scans []Scan
	for rows.Next() {
		var s Scan
		var startedAt rfc3339Time
		var finishedAt nullRFC3339Time
		if err := rows.Scan(&s.ID, &s.Roots, &startedAt, &finishedAt, &s.FileCount); err != nil {
			return nil, err
		}
		s.StartedAt = startedAt.Time
		s.FinishedAt = finishedAt.Ptr()
		scans = append(scans, s)
	}
	return scans, rows.Err()
}
