// Package logging owns the process-wide logger: stderr, "trawl" prefix,
// verbosity adjustable at runtime.
package logging

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "trawl"})

// Setup maps a verbosity step to a log level and installs it on the shared
// logger: -1 errors only, 0 warnings (the default), 1 informational, 2 and
// up debug. Safe to call again mid-run to change verbosity.
func Setup(verbosity int) *log.Logger {
	switch {
	case verbosity <= -1:
		logger.SetLevel(log.ErrorLevel)
	case verbosity == 0:
		logger.SetLevel(log.WarnLevel)
	case verbosity == 1:
		logger.SetLevel(log.InfoLevel)
	default:
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Logger returns the shared logger without changing its level.
func Logger() *log.Logger { return logger }
