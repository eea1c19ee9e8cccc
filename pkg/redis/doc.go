// Package redis connects to the Redis server used as a shared store for raw
// dictionaries.
//
// Config is populated from REDIS_* environment variables. An empty REDIS_URL
// means Redis is not used and dictionaries are fetched by every instance on
// its own.
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	fetcher, err := dictionary.NewRedisFetcher(upstream, client,
//		dictionary.WithRedisTTL(cfg.DictionaryTTL),
//	)
//
// Healthcheck adapts the client to the readiness probe of the HTTP server.
package redis
