// Package ratelimiter implements a token bucket limiter with an in-memory
// store and HTTP middleware.
//
//	cfg := ratelimiter.Config{Capacity: 60, RefillRate: 1, RefillInterval: time.Second}
//	store := ratelimiter.NewMemoryStore(cfg)
//	defer store.Close()
//
//	limiter, err := ratelimiter.New(store, cfg)
//	if err != nil {
//		return err
//	}
//	r.Use(ratelimiter.Middleware(limiter, keyFunc, nil))
//
// Every response carries X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset; denied responses also carry Retry-After.
package ratelimiter
