package translate

import (
	"context"
	"maps"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
)

// Provider resolves an identifier to a display name for one language.
type Provider interface {
	Translate(ctx context.Context, id catalog.Material) (string, bool)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context, id catalog.Material) (string, bool)

func (f ProviderFunc) Translate(ctx context.Context, id catalog.Material) (string, bool) {
	return f(ctx, id)
}

// CacheProvider serves translations from a dictionary taken from the cache
// when the provider is created. Later invalidations of the cache entry do not
// affect an existing provider.
type CacheProvider struct {
	lang    catalog.Language
	version catalog.Version
	dict    dictionary.Dictionary
}

// NewCacheProvider loads the dictionary for lang and version, blocking until
// the cache entry is populated.
func NewCacheProvider(ctx context.Context, c *dictionary.Cache, lang catalog.Language, version catalog.Version) *CacheProvider {
	return &CacheProvider{
		lang:    lang,
		version: version,
		dict:    c.Get(ctx, lang, version),
	}
}

// Translate implements Provider.
func (p *CacheProvider) Translate(_ context.Context, id catalog.Material) (string, bool) {
	return p.dict.Lookup(id)
}

// Language returns the language the provider was created for.
func (p *CacheProvider) Language() catalog.Language { return p.lang }

// Version returns the game version the provider was created for.
func (p *CacheProvider) Version() catalog.Version { return p.version }

// Len returns the number of translations the provider holds.
func (p *CacheProvider) Len() int { return p.dict.Len() }

// StaticProvider serves translations from a fixed in-memory map.
type StaticProvider struct {
	entries map[catalog.Material]string
}

// NewStaticProvider copies entries into a StaticProvider.
func NewStaticProvider(entries map[catalog.Material]string) *StaticProvider {
	return &StaticProvider{entries: maps.Clone(entries)}
}

// Translate implements Provider.
func (p *StaticProvider) Translate(_ context.Context, id catalog.Material) (string, bool) {
	name, ok := p.entries[id]
	return name, ok
}

// Len returns the number of translations the provider holds.
func (p *StaticProvider) Len() int { return len(p.entries) }

// ChainProvider asks each provider in order and returns the first match.
type ChainProvider struct {
	providers []Provider
}

// NewChainProvider creates a ChainProvider. Nil providers are skipped.
func NewChainProvider(providers ...Provider) *ChainProvider {
	c := &ChainProvider{providers: make([]Provider, 0, len(providers))}
	for _, p := range providers {
		if p != nil {
			c.providers = append(c.providers, p)
		}
	}
	return c
}

// Translate implements Provider.
func (c *ChainProvider) Translate(ctx context.Context, id catalog.Material) (string, bool) {
	for _, p := range c.providers {
		if name, ok := p.Translate(ctx, id); ok {
			return name, true
		}
	}
	return "", false
}
