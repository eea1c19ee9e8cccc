package translate

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
	"github.com/dmitrymomot/polyglot/pkg/dictionary"
	"github.com/dmitrymomot/polyglot/pkg/logger"
)

type binding struct {
	once     sync.Once
	load     func() Provider
	provider Provider
}

func (b *binding) get() Provider {
	b.once.Do(func() {
		b.provider = b.load()
		b.load = nil
	})
	return b.provider
}

func boundTo(p Provider) *binding {
	b := &binding{provider: p}
	b.once.Do(func() {})
	return b
}

// Resolver translates identifiers through per-language providers.
//
// Requests for an unbound language fall back to the default language. With
// dynamic loading enabled, Translate binds the language instead: it creates a
// cache-backed provider and keeps it for later requests. That registration
// is the only state Translate changes.
type Resolver struct {
	cache       *dictionary.Cache
	overrides   map[catalog.Language]Provider
	defaultLang catalog.Language
	version     catalog.Version
	dynamic     bool
	logger      *slog.Logger

	mu       sync.RWMutex
	bindings map[catalog.Language]*binding
	fallback *binding
}

// New builds a Resolver. Languages bound with WithLanguages are fetched
// concurrently before New returns.
func New(ctx context.Context, c *dictionary.Cache, opts ...Option) (*Resolver, error) {
	if c == nil {
		return nil, ErrNilCache
	}

	cfg := &resolverConfig{
		providers:   make(map[catalog.Language]Provider),
		overrides:   make(map[catalog.Language]Provider),
		defaultLang: catalog.DefaultLanguage,
		version:     catalog.DefaultVersion,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var cached []catalog.Language
	for _, lang := range cfg.languages {
		if !lang.Valid() {
			return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownLanguage, lang)
		}
		if _, custom := cfg.providers[lang]; !custom && !slices.Contains(cached, lang) {
			cached = append(cached, lang)
		}
	}
	for lang := range cfg.providers {
		if !lang.Valid() {
			return nil, fmt.Errorf("%w: %q", catalog.ErrUnknownLanguage, lang)
		}
	}
	if len(cached)+len(cfg.providers) == 0 {
		return nil, ErrNoLanguages
	}
	if _, custom := cfg.providers[cfg.defaultLang]; !custom && !slices.Contains(cached, cfg.defaultLang) {
		return nil, fmt.Errorf("%w: %q", ErrDefaultLanguageNotBound, cfg.defaultLang)
	}

	r := &Resolver{
		cache:       c,
		overrides:   cfg.overrides,
		defaultLang: cfg.defaultLang,
		version:     cfg.version,
		dynamic:     cfg.dynamic,
		logger:      cfg.logger,
		bindings:    make(map[catalog.Language]*binding, len(cached)+len(cfg.providers)),
	}

	start := time.Now()
	if err := c.Prefetch(ctx, cached, r.version); err != nil {
		return nil, err
	}
	for _, lang := range cached {
		r.bindings[lang] = boundTo(r.cacheProvider(ctx, lang))
	}
	for lang, p := range cfg.providers {
		r.bindings[lang] = boundTo(p)
	}
	r.fallback = r.bindings[r.defaultLang]

	r.logger.InfoContext(ctx, "translation resolver ready",
		slog.Any("languages", r.Languages()),
		logger.Language(r.defaultLang),
		logger.Version(r.version),
		slog.Bool("dynamic_loading", r.dynamic),
		logger.Duration(time.Since(start)),
	)
	return r, nil
}

// Translate resolves id in lang. An empty lang means the default language.
//
// Translate never fails. When no provider has a mapping the result echoes id
// with IsTranslated set to false.
func (r *Resolver) Translate(ctx context.Context, id catalog.Material, lang catalog.Language) Result {
	if lang == "" {
		lang = r.defaultLang
	}

	name, ok := r.provider(ctx, lang).Translate(ctx, id)
	if !ok {
		name = string(id)
	}

	return Result{
		OriginalName:   string(id),
		TranslatedName: name,
		Language:       lang,
		IsTranslated:   ok,
	}
}

// TranslateDefault resolves id in the default language.
func (r *Resolver) TranslateDefault(ctx context.Context, id catalog.Material) Result {
	return r.Translate(ctx, id, r.defaultLang)
}

// Bind registers a cache-backed provider for lang unless one is bound
// already, and waits for its dictionary. It works regardless of the dynamic
// loading setting.
func (r *Resolver) Bind(ctx context.Context, lang catalog.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", catalog.ErrUnknownLanguage, lang)
	}
	r.bind(ctx, lang)
	return nil
}

// IsBound reports whether lang has its own provider.
func (r *Resolver) IsBound(lang catalog.Language) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.bindings[lang]
	return ok
}

// Languages returns the bound languages in sorted order.
func (r *Resolver) Languages() []catalog.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Sorted(maps.Keys(r.bindings))
}

// DefaultLanguage returns the default language.
func (r *Resolver) DefaultLanguage() catalog.Language { return r.defaultLang }

// Version returns the game version of cache-backed providers.
func (r *Resolver) Version() catalog.Version { return r.version }

// DynamicLoading reports whether unbound languages are bound on request.
func (r *Resolver) DynamicLoading() bool { return r.dynamic }

func (r *Resolver) provider(ctx context.Context, lang catalog.Language) Provider {
	r.mu.RLock()
	b, ok := r.bindings[lang]
	r.mu.RUnlock()
	if ok {
		return b.get()
	}

	if r.dynamic && lang.Valid() {
		return r.bind(ctx, lang)
	}
	return r.fallback.get()
}

// bind registers lang exactly once. The dictionary is loaded outside the
// lock so other languages keep resolving while it is fetched.
func (r *Resolver) bind(ctx context.Context, lang catalog.Language) Provider {
	r.mu.Lock()
	b, ok := r.bindings[lang]
	if !ok {
		b = &binding{load: func() Provider { return r.cacheProvider(ctx, lang) }}
		r.bindings[lang] = b
	}
	r.mu.Unlock()

	if !ok {
		r.logger.InfoContext(ctx, "language bound on request",
			logger.Language(lang),
			logger.Version(r.version),
		)
	}
	return b.get()
}

func (r *Resolver) cacheProvider(ctx context.Context, lang catalog.Language) Provider {
	p := NewCacheProvider(ctx, r.cache, lang, r.version)
	if o, ok := r.overrides[lang]; ok {
		return NewChainProvider(o, p)
	}
	return p
}
