package jikan

import "time"

// transportRetryDelay is the fixed pause after a failed connection attempt.
const transportRetryDelay = time.Second

// rateLimitDelay is 2^attempt seconds for a zero-based attempt: 1s, 2s, 4s ... capped.
func rateLimitDelay(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 5 {
		return time.Minute
	}
	return time.Duration(1<<attempt) * time.Second
}
