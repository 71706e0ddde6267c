// Package retry runs an operation a bounded number of times with a
// backoff between attempts.
package retry

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

const defaultDelay = 100 * time.Millisecond

type Backoff func(attempt int) time.Duration

type ShouldRetry func(error) bool

type Config struct {
	MaxAttempts int
	Backoff     Backoff
	ShouldRetry ShouldRetry
}

func (c *Config) normalize() {
	if c.MaxAttempts == 0 {
		c.MaxAttempts = 1
	}
	if c.Backoff == nil {
		c.Backoff = ExponentialBackoff(defaultDelay)
	}
	if c.ShouldRetry == nil {
		c.ShouldRetry = func(error) bool { return true }
	}
}

func ExponentialBackoff(delay time.Duration) Backoff {
	return func(attempt int) time.Duration {
		base := 1 << attempt * delay
		jitter := time.Duration(rand.IntN(int(base/2)) + 1)
		return base + jitter
	}
}

func LinearBackoff(delay time.Duration) Backoff {
	return func(int) time.Duration {
		return delay
	}
}

// Do calls fn until it succeeds, the attempts run out or ctx is done.
// The last error is returned, wrapped with the ctx error when the
// waiting was interrupted.
func Do(ctx context.Context, c Config, fn func() error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.normalize()
	timer := time.NewTimer(0)
	defer timer.Stop()

	var err error
	for attempt := 1; attempt <= c.MaxAttempts; attempt++ {
		err = fn()
		if err == nil || !c.ShouldRetry(err) {
			return err
		}

		timer.Reset(c.Backoff(attempt))
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}

	return err
}
