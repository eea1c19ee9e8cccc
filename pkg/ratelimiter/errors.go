package ratelimiter

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid rate limit configuration")
	ErrInvalidTokenCount = errors.New("invalid token count")
	ErrNilStore          = errors.New("rate limiter requires a store")
)
