package ratelimiter

import (
	"fmt"
	"time"
)

// Config describes a token bucket. A zero Capacity disables limiting.
type Config struct {
	Capacity       int           `env:"RATE_LIMIT_CAPACITY" envDefault:"0"`          // Burst size per client. 0 disables limiting.
	RefillRate     int           `env:"RATE_LIMIT_REFILL_RATE" envDefault:"10"`      // Tokens added each interval.
	RefillInterval time.Duration `env:"RATE_LIMIT_REFILL_INTERVAL" envDefault:"1s"`  // Refill cadence.
	StaleAfter     time.Duration `env:"RATE_LIMIT_STALE_AFTER" envDefault:"1h"`      // Idle buckets older than this are dropped.
	CleanupEvery   time.Duration `env:"RATE_LIMIT_CLEANUP_INTERVAL" envDefault:"5m"` // Sweep cadence of the memory store.
}

// Enabled reports whether limiting is configured.
func (c Config) Enabled() bool {
	return c.Capacity > 0
}

func (c Config) validate() error {
	if c.Capacity <= 0 {
		return fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidConfig, c.Capacity)
	}
	if c.RefillRate <= 0 {
		return fmt.Errorf("%w: refill rate must be positive, got %d", ErrInvalidConfig, c.RefillRate)
	}
	if c.RefillInterval <= 0 {
		return fmt.Errorf("%w: refill interval must be positive, got %v", ErrInvalidConfig, c.RefillInterval)
	}
	return nil
}
