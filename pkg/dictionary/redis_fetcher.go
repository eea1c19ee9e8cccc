package dictionary

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/logger"
)

// DefaultRedisKeyPrefix namespaces raw dictionaries stored in Redis.
const DefaultRedisKeyPrefix = "polyglot:dict"

// DefaultRedisTTL is how long a raw dictionary stays in Redis.
const DefaultRedisTTL = 24 * time.Hour

// RedisClient is the subset of redis.Cmdable used by RedisFetcher.
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
}

// RedisFetcher keeps raw dictionary content in Redis in front of another
// Fetcher, so several processes share one download. Redis failures are logged
// and bypassed; only the wrapped fetcher's errors reach the caller.
type RedisFetcher struct {
	next   Fetcher
	client RedisClient
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// RedisOption configures a RedisFetcher.
type RedisOption func(*RedisFetcher)

// WithRedisKeyPrefix sets the key namespace.
func WithRedisKeyPrefix(prefix string) RedisOption {
	return func(f *RedisFetcher) {
		if prefix != "" {
			f.prefix = prefix
		}
	}
}

// WithRedisTTL sets the expiration of stored entries. Zero means no expiration.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(f *RedisFetcher) {
		if ttl >= 0 {
			f.ttl = ttl
		}
	}
}

// WithRedisLogger sets the logger for bypassed Redis failures.
func WithRedisLogger(l *slog.Logger) RedisOption {
	return func(f *RedisFetcher) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewRedisFetcher wraps next with a Redis read-through layer.
func NewRedisFetcher(next Fetcher, client RedisClient, opts ...RedisOption) (*RedisFetcher, error) {
	if next == nil {
		return nil, ErrNilFetcher
	}
	if client == nil {
		return nil, ErrNilRedisClient
	}

	f := &RedisFetcher{
		next:   next,
		client: client,
		prefix: DefaultRedisKeyPrefix,
		ttl:    DefaultRedisTTL,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f, nil
}

// Key returns the Redis key of a dictionary: <prefix>:<version>:<lang>.
func (f *RedisFetcher) Key(lang catalog.Language, version catalog.Version) string {
	return f.prefix + ":" + version.Name + ":" + string(lang)
}

// Fetch implements Fetcher.
func (f *RedisFetcher) Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
	if err := validateTarget(lang, version); err != nil {
		return nil, err
	}

	key := f.Key(lang, version)

	raw, err := f.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		return raw, nil
	case errors.Is(err, redis.Nil):
	default:
		f.logger.WarnContext(ctx, "redis read failed, fetching upstream",
			logger.Source(key),
			logger.Error(err),
		)
	}

	raw, err = f.next.Fetch(ctx, lang, version)
	if err != nil {
		return nil, err
	}

	if err := f.client.Set(ctx, key, raw, f.ttl).Err(); err != nil {
		f.logger.WarnContext(ctx, "redis write failed",
			logger.Source(key),
			logger.Error(err),
		)
	}
	return raw, nil
}
