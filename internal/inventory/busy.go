package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrBusy marks a retry budget exhausted on SQLITE_BUSY; detect it with
// errors.Is.
var ErrBusy = errors.New("database busy: retries exhausted")

// IsBusy reports whether err indicates SQLite returned SQLITE_BUSY
// (database locked). Used to decide when to retry an operation.
func IsBusy(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "SQLITE_BUSY") || strings.Contains(s, "database is locked")
}

// RetryOnBusy runs fn. If fn returns an error for which IsBusy is true, it
// backs off and retries up to maxAttempts times (including the first run);
// the backoff doubles each round, capped at 5s. Non-busy errors return
// immediately. When every attempt came back busy the result wraps ErrBusy.
// Respects context cancellation while backing off.
func RetryOnBusy(ctx context.Context, maxAttempts int, initialBackoff time.Duration, fn func() error) error {
	var lastErr error
	backoff := initialBackoff
	for attempt := 0; attempt < maxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsBusy(lastErr) {
			return lastErr
		}
		if attempt == maxAttempts-1 {
			break
		}
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
		if backoff > 5*time.Second {
			backoff = 5 * time.Second
		}
	}
	return fmt.Errorf("%w: %v", ErrBusy, lastErr)
}
