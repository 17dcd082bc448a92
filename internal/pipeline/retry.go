package pipeline

import (
	"errors"
	"math/rand"
	"time"

	"github.com/Dubas14/HairCareStore/internal/cms"
)

const (
	maxRetries   = 3
	baseDelay    = 500 * time.Millisecond
	maxDelay     = 10 * time.Second
	jitterFactor = 0.3
)

// IsRetryable reports whether an error is worth retrying.
func IsRetryable(err error) bool {
	var re *cms.RetryableError
	return errors.As(err, &re)
}

// Backoff computes the delay before retry attempt n (0-based),
// with exponential growth and jitter.
func Backoff(attempt int) time.Duration {
	delay := baseDelay * (1 << uint(attempt))
	if delay > maxDelay {
		delay = maxDelay
	}
	jitter := time.Duration(rand.Int63n(int64(float64(delay) * jitterFactor)))
	return delay + jitter
}
