package payscale

import (
	"math"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// DefaultBackoff waits 1.5 seconds per failed attempt, capped at 4 seconds.
func DefaultBackoff(attempt int) time.Duration {
	seconds := math.Min(1.5*float64(attempt), 4.0)
	return time.Duration(seconds * float64(time.Second))
}

// attemptBackOff adapts a per-attempt wait function to backoff.BackOff.
type attemptBackOff struct {
	wait    func(attempt int) time.Duration
	attempt int
}

var _ backoff.BackOff = (*attemptBackOff)(nil)

func newAttemptBackOff(wait func(attempt int) time.Duration) *attemptBackOff {
	if wait == nil {
		wait = DefaultBackoff
	}
	return &attemptBackOff{wait: wait}
}

func (b *attemptBackOff) NextBackOff() time.Duration {
	b.attempt++
	return b.wait(b.attempt)
}

func (b *attemptBackOff) Reset() {
	b.attempt = 0
}
