package translation

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/clientip"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/httpserver"
	"github.com/dmitrymomot/polyglot/pkg/ratelimiter"
)

// DefaultMaxBatchSize caps the number of identifiers in one batch request.
const DefaultMaxBatchSize = 500

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithUniverse replaces the identifier set requests are validated against.
func WithUniverse(u catalog.Universe) Option {
	return func(s *Service) {
		if u != nil {
			s.universe = u
		}
	}
}

// WithCache exposes cache statistics in the languages endpoint.
func WithCache(c *dictionary.Cache) Option {
	return func(s *Service) {
		s.cache = c
	}
}

// WithReadinessChecks adds dependency checks to the readiness probe.
func WithReadinessChecks(checks ...httpserver.Check) Option {
	return func(s *Service) {
		s.checks = append(s.checks, checks...)
	}
}

// WithReadinessTimeout bounds the total time spent in readiness checks.
func WithReadinessTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.readinessTimeout = d
		}
	}
}

// WithMaxBatchSize sets the largest accepted batch.
func WithMaxBatchSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxBatch = n
		}
	}
}

// WithClientIP sets how client addresses are resolved. The default trusts
// no forwarding headers.
func WithClientIP(e *clientip.Extractor) Option {
	return func(s *Service) {
		if e != nil {
			s.clientIPs = e
		}
	}
}

// WithRateLimiter limits /v1 requests per client address.
func WithRateLimiter(l *ratelimiter.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}
