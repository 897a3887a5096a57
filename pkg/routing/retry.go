package routing

import (
	"math"
	"math/rand"
	"time"
)

// RetryConfig bounds the retry loop for transient computation failures.
// Backoff grows exponentially from InitialBackoff by Multiplier per attempt,
// capped at MaxBackoff, with multiplicative jitter to avoid retry storms.
type RetryConfig struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	Multiplier     float64
}

// DefaultRetryConfig returns the standard retry policy
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:    3,
		InitialBackoff: 100 * time.Millisecond,
		MaxBackoff:     5 * time.Second,
		Multiplier:     2.0,
	}
}

// BackoffFor computes the delay before the next attempt. attempt is
// 1-based: the delay after the first failed attempt uses InitialBackoff.
// Jitter scales the capped delay by a random factor in [0.8, 1.2).
func (c RetryConfig) BackoffFor(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	backoff := float64(c.InitialBackoff) * math.Pow(c.Multiplier, float64(attempt-1))
	if max := float64(c.MaxBackoff); backoff > max {
		backoff = max
	}
	jitter := 0.8 + 0.4*rand.Float64()
	return time.Duration(backoff * jitter)
}
