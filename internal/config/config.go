package config

import (
	"errors"
	"os"
	"strconv"
)

// Env names for configuration. Empty or unset means use the default.
const (
	EnvDataDir           = "TRAWL_DATA_DIR"
	EnvDatabaseURL       = "TRAWL_DATABASE_URL" // PostgreSQL URL; unset means local SQLite
	EnvMaxFilesPerSecond = "TRAWL_MAX_FILES_PER_SECOND"
)

// Default values when env is unset.
const (
	DefaultDataDir = "./data"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	dataDir           string
	databaseURL       string
	maxFilesPerSecond int
}

// Load reads configuration from the environment. The default data dir is
// used when TRAWL_DATA_DIR is unset or empty; TRAWL_DATABASE_URL is
// optional (unset selects the SQLite inventory under the data dir).
// Returns an error if TRAWL_MAX_FILES_PER_SECOND is set but not a
// non-negative number. Zero means no throttle.
func Load() (*Config, error) {
	dataDir := os.Getenv(EnvDataDir)
	if dataDir == "" {
		dataDir = DefaultDataDir
	}

	databaseURL := os.Getenv(EnvDatabaseURL)

	maxFiles := 0
	if s := os.Getenv(EnvMaxFilesPerSecond); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.New("TRAWL_MAX_FILES_PER_SECOND must be a number")
		}
		if n < 0 {
			return nil, errors.New("TRAWL_MAX_FILES_PER_SECOND must not be negative")
		}
		maxFiles = n
	}

	return &Config{dataDir: dataDir, databaseURL: databaseURL, maxFilesPerSecond: maxFiles}, nil
}

// DataDir returns the path to the data directory holding the SQLite
// inventory database.
func (c *Config) DataDir() string {
	return c.dataDir
}

// DatabaseURL returns the PostgreSQL connection URL, or "" when the
// inventory should use SQLite.
func (c *Config) DatabaseURL() string {
	return c.databaseURL
}

// MaxFilesPerSecond returns the default scan throttle (0 = unlimited).
// Flags may override it per run.
func (c *Config) MaxFilesPerSecond() int {
	return c.maxFilesPerSecond
}
