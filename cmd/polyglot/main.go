// Command polyglot serves Minecraft identifier translations over HTTP.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/clientip"
	"github.com/dmitrymomot/polyglot/pkg/config"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/httpserver"
	"github.com/dmitrymomot/polyglot/pkg/logger"
	"github.com/dmitrymomot/polyglot/pkg/pg"
	"github.com/dmitrymomot/polyglot/pkg/ratelimiter"
	"github.com/dmitrymomot/polyglot/pkg/redis"
	"github.com/dmitrymomot/polyglot/pkg/requestid"
	"github.com/dmitrymomot/polyglot/pkg/translate"
	"github.com/dmitrymomot/polyglot/svc/translation"
)

const serviceName = "polyglot"

func main() {
	var cfg AppConfig
	config.MustLoad(&cfg)

	log := newLogger(cfg)
	logger.SetAsDefault(log)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("polyglot stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg AppConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		lvl, err := logger.ParseLevel(cfg.LogLevel)
		if err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}
	return logger.New(opts...)
}

func run(ctx context.Context, cfg AppConfig, log *slog.Logger) error {
	langs, err := cfg.languages()
	if err != nil {
		return err
	}
	defaultLang, err := catalog.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		return err
	}
	version, err := catalog.ParseVersion(cfg.Version)
	if err != nil {
		return err
	}

	var (
		closers []func()
		checks  []httpserver.Check
	)

	fetcher, err := cfg.upstreamFetcher(ctx)
	if err != nil {
		return err
	}

	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		closers = append(closers, func() { _ = client.Close() })
		checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})

		fetcher, err = dictionary.NewRedisFetcher(fetcher, client,
			dictionary.WithRedisKeyPrefix(cfg.Redis.KeyPrefix),
			dictionary.WithRedisTTL(cfg.Redis.DictionaryTTL),
			dictionary.WithRedisLogger(log),
		)
		if err != nil {
			return err
		}
	}

	overrides := translate.Overrides{}

	if cfg.PG.Enabled() {
		pool, err := pg.Connect(ctx, cfg.PG)
		if err != nil {
			return err
		}
		closers = append(closers, pool.Close)
		checks = append(checks, httpserver.Check{Name: "postgres", Fn: pg.Healthcheck(pool)})

		if cfg.PG.AutoMigrate {
			if err := pg.Migrate(ctx, pool, translate.Migrations, translate.MigrationsDir, cfg.PG, log); err != nil {
				return err
			}
		}

		store, err := translate.NewPostgresOverrides(pool)
		if err != nil {
			return err
		}
		stored, err := store.Load(ctx)
		if err != nil {
			return err
		}
		overrides.Merge(stored)
	}

	if cfg.OverridesFile != "" {
		fromFile, err := loadOverridesFile(cfg.OverridesFile)
		if err != nil {
			return err
		}
		overrides.Merge(fromFile)
	}

	cache, err := dictionary.NewCache(fetcher, dictionary.NewLangParser(), dictionary.WithLogger(log))
	if err != nil {
		return err
	}

	opts := []translate.Option{
		translate.WithLanguages(langs...),
		translate.WithDefaultLanguage(defaultLang),
		translate.WithVersion(version),
		translate.WithDynamicLoading(cfg.DynamicLoading),
		translate.WithLogger(log),
	}
	resolver, err := translate.New(ctx, cache, append(opts, overrides.Options()...)...)
	if err != nil {
		return err
	}

	svcOpts := []translation.Option{
		translation.WithLogger(log),
		translation.WithCache(cache),
		translation.WithReadinessChecks(checks...),
		translation.WithClientIP(clientip.New(cfg.TrustedIPHeaders...)),
	}
	if cfg.RateLimit.Enabled() {
		store := ratelimiter.NewMemoryStore(cfg.RateLimit)
		closers = append(closers, store.Close)
		limiter, err := ratelimiter.New(store, cfg.RateLimit)
		if err != nil {
			return err
		}
		svcOpts = append(svcOpts, translation.WithRateLimiter(limiter))
	}

	svc, err := translation.New(resolver, svcOpts...)
	if err != nil {
		return err
	}

	srvOpts := []httpserver.Option{httpserver.WithLogger(log)}
	for _, c := range closers {
		srvOpts = append(srvOpts, httpserver.WithOnShutdown(c))
	}
	srv := httpserver.NewFromConfig(cfg.HTTP, srvOpts...)

	return srv.Run(ctx, svc.Router())
}

func loadOverridesFile(path string) (translate.Overrides, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return translate.LoadYAMLOverrides(f)
}
