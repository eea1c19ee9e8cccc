package dictionary

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/polyglot/pkg/async"
	"github.com/dmitrymomot/polyglot/pkg/cache"
	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/logger"
)

type cacheKey struct {
	lang    catalog.Language
	version catalog.Version
}

// Stats is a point-in-time view of cache activity.
type Stats struct {
	Populated int   // keys with a stored dictionary, empty ones included
	Fetches   int64 // fetch attempts
	Failures  int64 // fetch attempts that failed
}

// Cache stores one Dictionary per (language, version) pair and populates each
// pair at most once. A failed fetch is stored as an empty Dictionary and is not
// retried until the pair is invalidated.
type Cache struct {
	fetcher Fetcher
	parser  Parser
	logger  *slog.Logger
	store   *cache.Once[cacheKey, Dictionary]

	fetches  atomic.Int64
	failures atomic.Int64
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used to report fetch failures.
func WithLogger(l *slog.Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCache creates a Cache. A nil parser means NewLangParser with defaults.
func NewCache(fetcher Fetcher, parser Parser, opts ...CacheOption) (*Cache, error) {
	if fetcher == nil {
		return nil, ErrNilFetcher
	}
	if parser == nil {
		parser = NewLangParser()
	}

	c := &Cache{
		fetcher: fetcher,
		parser:  parser,
		logger:  logger.Discard(),
		store:   cache.NewOnce[cacheKey, Dictionary](),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Get returns the dictionary for lang and version, fetching and parsing it on
// first use. Concurrent callers for the same pair share a single fetch. Get
// never fails: an unavailable dictionary is returned as an empty one.
//
// The fetch does not inherit ctx cancellation, so a caller that gives up early
// does not leave an empty dictionary behind for everyone else.
func (c *Cache) Get(ctx context.Context, lang catalog.Language, version catalog.Version) Dictionary {
	key := cacheKey{lang: lang, version: version}
	return c.store.Get(key, func() Dictionary {
		return c.populate(context.WithoutCancel(ctx), lang, version)
	})
}

// Peek returns a stored dictionary without fetching.
func (c *Cache) Peek(lang catalog.Language, version catalog.Version) (Dictionary, bool) {
	return c.store.Peek(cacheKey{lang: lang, version: version})
}

// Invalidate drops the stored dictionary so the next Get fetches again.
// It reports whether anything was stored.
func (c *Cache) Invalidate(lang catalog.Language, version catalog.Version) bool {
	return c.store.Forget(cacheKey{lang: lang, version: version})
}

// Prefetch populates several languages of one version concurrently and waits
// for all of them or for ctx to be done.
func (c *Cache) Prefetch(ctx context.Context, langs []catalog.Language, version catalog.Version) error {
	futures := make([]*async.Future[int], 0, len(langs))
	for _, lang := range langs {
		futures = append(futures, async.Run(ctx, lang, func(ctx context.Context, lang catalog.Language) (int, error) {
			return c.Get(ctx, lang, version).Len(), nil
		}))
	}
	_, err := async.WaitAll(ctx, futures...)
	return err
}

// Stats returns current counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Populated: c.store.Len(),
		Fetches:   c.fetches.Load(),
		Failures:  c.failures.Load(),
	}
}

func (c *Cache) populate(ctx context.Context, lang catalog.Language, version catalog.Version) Dictionary {
	start := time.Now()
	c.fetches.Add(1)

	raw, err := c.fetcher.Fetch(ctx, lang, version)
	if err != nil {
		c.failures.Add(1)
		c.logger.WarnContext(ctx, "dictionary unavailable, using empty dictionary",
			logger.Language(lang),
			logger.Version(version),
			logger.Error(err),
		)
		return Dictionary{}
	}

	dict := c.parser.Parse(raw)
	c.logger.DebugContext(ctx, "dictionary loaded",
		logger.Language(lang),
		logger.Version(version),
		logger.Count(dict.Len()),
		logger.Duration(time.Since(start)),
	)
	return dict
}
