package translate

import (
	"log/slog"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Option configures a Resolver.
type Option func(*resolverConfig)

type resolverConfig struct {
	languages   []catalog.Language
	providers   map[catalog.Language]Provider
	overrides   map[catalog.Language]Provider
	defaultLang catalog.Language
	version     catalog.Version
	dynamic     bool
	logger      *slog.Logger
}

// WithLanguages binds languages to providers backed by the dictionary cache.
func WithLanguages(langs ...catalog.Language) Option {
	return func(c *resolverConfig) {
		c.languages = append(c.languages, langs...)
	}
}

// WithProvider binds lang to a custom provider instead of the dictionary cache.
func WithProvider(lang catalog.Language, p Provider) Option {
	return func(c *resolverConfig) {
		if p != nil {
			c.providers[lang] = p
		}
	}
}

// WithOverrides puts p in front of the cache-backed provider of lang,
// including providers created by dynamic loading.
func WithOverrides(lang catalog.Language, p Provider) Option {
	return func(c *resolverConfig) {
		if p != nil {
			c.overrides[lang] = p
		}
	}
}

// WithDefaultLanguage sets the language used when a request names none and
// the fallback for unbound languages. Defaults to catalog.DefaultLanguage.
func WithDefaultLanguage(lang catalog.Language) Option {
	return func(c *resolverConfig) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithVersion sets the game version of cache-backed providers.
// Defaults to catalog.DefaultVersion.
func WithVersion(v catalog.Version) Option {
	return func(c *resolverConfig) {
		if !v.IsZero() {
			c.version = v
		}
	}
}

// WithDynamicLoading lets Translate bind languages on first request instead
// of falling back to the default language.
func WithDynamicLoading(enabled bool) Option {
	return func(c *resolverConfig) {
		c.dynamic = enabled
	}
}

// WithLogger sets the resolver logger. A discard logger is used by default.
func WithLogger(l *slog.Logger) Option {
	return func(c *resolverConfig) {
		if l != nil {
			c.logger = l
		}
	}
}
