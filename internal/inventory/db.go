// Package inventory persists scan snapshots: each index run records its
// accepted paths so lookups can answer from the latest snapshot without
// re-walking the filesystem. The matching engine itself stays stateless;
// the inventory is just one collector implementation layered on top of it.
package inventory

import (
	"database/sql"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"
)

// busyTimeoutMS is how long SQLite waits (ms) before returning SQLITE_BUSY
// when another connection holds the write lock. Applied per-connection via
// DSN so every pool connection gets it.
const busyTimeoutMS = 30000

// Open opens the SQLite inventory at path and enables WAL mode. The caller
// must Close it. For an in-memory database use ":memory:"; the URI form
// file::memory:?cache=shared is used so all connections in the pool share
// the same database (otherwise each connection gets its own empty one).
func Open(path string) (*sql.DB, error) {
	dsn := path
	if path == ":memory:" {
		dsn = "file::memory:?cache=shared&_busy_timeout=" + strconv.Itoa(busyTimeoutMS)
	} else {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		dsn = path + sep + "_busy_timeout=" + strconv.Itoa(busyTimeoutMS)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}
