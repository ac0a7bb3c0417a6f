// Package retry implements bounded retry with exponential backoff.
package retry

import (
	"fmt"
	"time"

	"elite-miner/internal/logger"
)

// sleep is swapped out in tests to avoid real backoff waits.
var sleep = time.Sleep

// Do invokes op up to maxAttempts times. After a failed attempt it blocks
// for baseDelay * 2^attempt before trying again; the final attempt's error
// is returned wrapped with the attempt count. Only operation failures are
// retried here — callers must not use Do to mask logically absent results.
func Do[T any](op func() (T, error), maxAttempts int, baseDelay time.Duration) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := op()
		if err == nil {
			return v, nil
		}
		lastErr = err
		if attempt == maxAttempts-1 {
			break
		}
		delay := baseDelay << attempt
		logger.Warn("Retry", fmt.Sprintf("attempt %d failed: %v, retrying in %s", attempt+1, err, delay))
		sleep(delay)
	}
	return zero, fmt.Errorf("failed after %d attempts: %w", maxAttempts, lastErr)
}
