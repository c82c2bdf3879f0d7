package inventory

import (
	"context"
	"database/sql"
	"time"

	"github.com/charmbracelet/log"
)

const (
	defaultBatchSize   = 500
	flushRetryAttempts = 5
	flushRetryBackoff  = 50 * time.Millisecond
)

// Recorder is a scan collector that batches accepted paths into the
// inventory. Collect buffers; a full batch flushes inside a busy-retry
// loop, and Close flushes the remainder. Not safe for concurrent use: one
// Recorder serves one scan run.
type Recorder struct {
	ctx       context.Context // scoped to the one scan run the Recorder serves
	db        *sql.DB
	scanID    int64
	batchSize int
	batch     []string
	count     int64
	logger    *log.Logger
}

// NewRecorder returns a Recorder appending to the given scan. A batchSize
// of zero or less uses the default; a nil logger is silent.
func NewRecorder(ctx context.Context, db *sql.DB, scanID int64, batchSize int, logger *log.Logger) *Recorder {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Recorder{
		ctx:       ctx,
		db:        db,
		scanID:    scanID,
		batchSize: batchSize,
		batch:     make([]string, 0, batchSize),
		logger:    logger,
	}
}

// Collect buffers one accepted path, flushing when the batch fills. Pass
// rec.Collect to the scanner as its collector.
func (r *Recorder) Collect(path string) error {
	r.batch = append(r.batch, path)
	if len(r.batch) >= r.batchSize {
		return r.flush()
	}
	return nil
}

// Close flushes any buffered paths.
func (r *Recorder) Close() error {
	return r.flush()
}

// Count returns how many paths have been written to the database so far.
func (r *Recorder) Count() int64 {
	return r.count
}

func (r *Recorder) flush() error {
	if len(r.batch) == 0 {
		return nil
	}
	batch := r.batch
	err := RetryOnBusy(r.ctx, flushRetryAttempts, flushRetryBackoff, func() error {
		return InsertFilesBatch(r.ctx, r.db, r.scanID, batch)
	})
	if err != nil {
		return err
	}
	r.count += int64(len(batch))
	r.batch = r.batch[:0]
	if r.logger != nil {
		r.logger.Debug("inventory flush", "scan", r.scanID, "total", r.count)
	}
	return nil
}
