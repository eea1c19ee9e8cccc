package translate

import "errors"

var (
	ErrNoLanguages             = errors.New("at least one language must be bound")
	ErrDefaultLanguageNotBound = errors.New("default language is not bound")
	ErrNilCache                = errors.New("dictionary cache is nil")

	ErrInvalidOverrides = errors.New("invalid translation overrides")
	ErrNilQuerier       = errors.New("database querier is nil")
	ErrOverrideQuery    = errors.New("translation override query failed")
)
