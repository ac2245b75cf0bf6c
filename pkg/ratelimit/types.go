package ratelimit

import (
	"context"
	"time"
)

// Result contains the outcome of a rate limit check.
type Result struct {
	// Allowed indicates whether the request may proceed.
	Allowed bool

	// Limit is the maximum number of requests allowed per window.
	Limit int

	// Remaining is the number of requests left in the current window.
	Remaining int

	// ResetAt is when the current window expires.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter is the interface the middleware and handlers depend on.
type Limiter interface {
	// Allow consumes one slot for the key and reports whether the request
	// is within the limit.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status reports the current state without consuming a slot.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears the window for the key.
	Reset(ctx context.Context, key string) error
}

// Store is the pluggable counter backend.
type Store interface {
	// IncrementAndGet atomically increments the counter for the key,
	// opening a new window of the given length when none is active, and
	// returns the post-increment count with the time remaining in the
	// window.
	IncrementAndGet(ctx context.Context, key string, window time.Duration) (count int64, ttl time.Duration, err error)

	// Get returns the current count and remaining window time, zero values
	// when no window is active.
	Get(ctx context.Context, key string) (count int64, ttl time.Duration, err error)

	// Delete removes the key's window.
	Delete(ctx context.Context, key string) error
}
