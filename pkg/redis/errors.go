package redis

import "errors"

// Errors returned while connecting to the shared dictionary cache.
var (
	ErrMissingURL = errors.New("dictionary cache: redis url is not set")
	ErrInvalidURL = errors.New("dictionary cache: invalid redis url")
	ErrNotReady   = errors.New("dictionary cache: redis not reachable before deadline")
	ErrUnhealthy  = errors.New("dictionary cache: redis ping failed")
)
