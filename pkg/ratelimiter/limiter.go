package ratelimiter

import (
	"context"
	"fmt"
	"time"
)

// Store keeps bucket state per key. A negative remaining count means the
// request must be denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}

// Result is the outcome of one check.
type Result struct {
	Limit     int
	Remaining int
	ResetAt   time.Time
}

// Allowed reports whether the request fits in the bucket.
func (r Result) Allowed() bool {
	return r.Remaining >= 0
}

// RetryAfter returns how long a denied client should wait.
func (r Result) RetryAfter() time.Duration {
	if r.Allowed() {
		return 0
	}
	return max(time.Until(r.ResetAt), 0)
}

// Limiter is a token bucket rate limiter.
type Limiter struct {
	store Store
	cfg   Config
}

// New creates a Limiter over store.
func New(store Store, cfg Config) (*Limiter, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Limiter{store: store, cfg: cfg}, nil
}

// Allow consumes one token for key.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	return l.AllowN(ctx, key, 1)
}

// AllowN consumes n tokens for key.
func (l *Limiter) AllowN(ctx context.Context, key string, n int) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: must be positive, got %d", ErrInvalidTokenCount, n)
	}
	remaining, resetAt, err := l.store.ConsumeTokens(ctx, key, n, l.cfg)
	if err != nil {
		return Result{}, err
	}
	return Result{Limit: l.cfg.Capacity, Remaining: remaining, ResetAt: resetAt}, nil
}

// Reset forgets the bucket of key.
func (l *Limiter) Reset(ctx context.Context, key string) error {
	return l.store.Reset(ctx, key)
}
