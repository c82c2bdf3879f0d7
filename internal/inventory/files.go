package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// InsertFilesBatch inserts the given paths for scanID in one round-trip.
// An empty batch is a no-op.
func InsertFilesBatch(ctx context.Context, database *sql.DB, scanID int64, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	// VALUES ($1,$2), ($1,$3), ... with the scan id as the shared first arg.
	placeholders := make([]string, len(paths))
	args := make([]interface{}, 0, len(paths)+1)
	args = append(args, scanID)
	for i, p := range paths {
		placeholders[i] = fmt.Sprintf("($1,$%d)", i+2)
		args = append(args, p)
	}
	// #nosec G202 -- placeholders built from len(paths); all values passed as args
	query := "INSERT INTO files (scan_id, path) VALUES " + strings.Join(placeholders, ", ")
	_, err := database.ExecContext(ctx, query, args...)
	return err
}

// Lookup returns the paths recorded for scanID that contain needle, sorted.
// The needle is matched as a literal substring: LIKE wildcards in it are
// escaped.
func Lookup(ctx context.Context, db *sql.DB, scanID int64, needle string) ([]string, error) {
	pattern := "%" + escapeLike(needle) + "%"
	rows, err := db.QueryContext(ctx,
		`SELECT path FROM files WHERE scan_id = $1 AND path LIKE $2 ESCAPE '\' ORDER BY path`,
		scanID, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// CountFiles returns how many paths are recorded for scanID.
func CountFiles(ctx context.Context, db *sql.DB, scanID int64) (int64, error) {
	var n int64
	err := db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM files WHERE scan_id = $1", scanID).Scan(&n)
	return n, err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
