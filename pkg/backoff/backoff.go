// Package backoff provides capped exponential delay calculation.
package backoff

import "time"

// Delay returns the wait before attempt number attempts is retried:
// base * 2^attempts, capped at max. attempts below zero is treated as zero.
// The result depends only on the arguments, never on wall-clock state.
func Delay(base, max time.Duration, attempts int) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempts < 0 {
		attempts = 0
	}

	d := base
	for i := 0; i < attempts; i++ {
		d *= 2
		if d >= max || d <= 0 {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
