package dictionary

import "errors"

var (
	// ErrFetch wraps every failure to obtain raw dictionary content.
	ErrFetch = errors.New("failed to fetch dictionary")

	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrDictionaryNotFound = errors.New("dictionary not found")
	ErrBodyTooLarge       = errors.New("dictionary body exceeds size limit")
	ErrInvalidLanguage    = errors.New("invalid dictionary language")
	ErrInvalidVersion     = errors.New("invalid dictionary version")

	ErrNilFetcher     = errors.New("fetcher is nil")
	ErrNilRedisClient = errors.New("redis client is nil")
	ErrMissingBucket  = errors.New("s3 bucket and region are required")
)
