package scan

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/time/rate"
)

// ErrMissingFileName reports a path with no representable file name (".",
// "..", or a bare separator) reaching the filter stage. The walk only
// produces named entries, so hitting it indicates a logic defect in the
// caller, not a filesystem condition.
var ErrMissingFileName = errors.New("missing file name")

const progressLogInterval = 1000

// Options tunes a scan. A nil Options (or the zero value) means no
// throttle, no logging, no metrics.
type Options struct {
	// MaxFilesPerSecond limits how many entries per second are offered to
	// the filter. Zero disables the limiter.
	MaxFilesPerSecond int
	// Logger receives advisory progress and skip diagnostics. Nil is silent.
	Logger *log.Logger
	// Metrics, when set, is updated as the walk proceeds.
	Metrics *Metrics
}

// Metrics counts walk activity.
type Metrics struct {
	Dirs     atomic.Int64 // directories listed
	Entries  atomic.Int64 // non-directory entries offered to the filter
	Accepted atomic.Int64 // entries handed to the collector
	Skipped  atomic.Int64 // directories skipped because listing failed
}

// Scan walks root and offers every non-directory entry to filter, handing
// accepted paths to collect in discovery order. Directories themselves are
// never filtered. A directory that cannot be listed is skipped and the walk
// continues; filter and collector errors abort the scan immediately. A root
// that is itself a non-directory is offered to the filter directly; a root
// that cannot be inspected at all is skipped like any unreadable entry,
// completing an empty scan.
func Scan(ctx context.Context, root string, filter Filter, collect Collector, opts *Options) error {
	if opts == nil {
		opts = &Options{}
	}
	var limiter *rate.Limiter
	if opts.MaxFilesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.MaxFilesPerSecond), 1)
	}

	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		if opts.Metrics != nil {
			opts.Metrics.Skipped.Add(1)
		}
		if opts.Logger != nil {
			opts.Logger.Debug("skipping unreadable root", "root", root, "err", err)
		}
		return nil
	}
	if !info.IsDir() {
		return scanEntry(ctx, root, filter, collect, limiter, opts)
	}

	// Pending directories expand iteratively so the skip-on-listing-error
	// and abort-on-filter-error policies live in one loop; this also avoids
	// recursion depth limits on deep trees.
	pending := []string{root}
	for len(pending) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		dir := pending[0]
		pending = pending[1:]
		entries, err := os.ReadDir(dir)
		if err != nil {
			// One unreadable directory must not abort discovery of the
			// rest of the tree.
			if opts.Metrics != nil {
				opts.Metrics.Skipped.Add(1)
			}
			if opts.Logger != nil {
				opts.Logger.Debug("skipping unreadable directory", "dir", dir, "err", err)
			}
			continue
		}
		if opts.Metrics != nil {
			opts.Metrics.Dirs.Add(1)
		}
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(dir, entry.Name())
			if entry.IsDir() {
				pending = append(pending, path)
				continue
			}
			if err := scanEntry(ctx, path, filter, collect, limiter, opts); err != nil {
				return err
			}
		}
	}
	return nil
}

// Add offers a single path to filter and hands it to collect when accepted.
// Scan uses it for every non-directory entry; callers may also use it
// directly to push known files through the same filtering.
func Add(path string, filter Filter, collect Collector) error {
	_, err := addEntry(path, filter, collect, nil)
	return err
}

// Find scans root and returns the accepted paths in discovery order. On any
// scan error no paths are returned.
func Find(ctx context.Context, root string, filter Filter, opts *Options) ([]string, error) {
	found := []string{}
	collect := func(path string) error {
		found = append(found, path)
		return nil
	}
	if err := Scan(ctx, root, filter, collect, opts); err != nil {
		return nil, err
	}
	return found, nil
}

func scanEntry(ctx context.Context, path string, filter Filter, collect Collector, limiter *rate.Limiter, opts *Options) error {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if opts.Metrics != nil {
		n := opts.Metrics.Entries.Add(1)
		if opts.Logger != nil && n%progressLogInterval == 0 {
			opts.Logger.Debug("scan progress", "entries", n, "current", path)
		}
	}
	accepted, err := addEntry(path, filter, collect, opts.Logger)
	if accepted && opts.Metrics != nil {
		opts.Metrics.Accepted.Add(1)
	}
	return err
}

func addEntry(path string, filter Filter, collect Collector, logger *log.Logger) (bool, error) {
	if base := filepath.Base(path); base == "." || base == ".." || base == string(filepath.Separator) {
		return false, fmt.Errorf("%w: %q", ErrMissingFileName, path)
	}
	keep, err := filter(path)
	if err != nil {
		return false, err
	}
	if !keep {
		return false, nil
	}
	if logger != nil {
		logger.Debug("found file", "path", path)
	}
	if err := collect(path); err != nil {
		return false, fmt.Errorf("collect %s: %w", path, err)
	}
	return true, nil
}
