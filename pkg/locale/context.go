package locale

import (
	"context"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

type contextKey struct{}

// WithLanguage stores the negotiated language in ctx.
func WithLanguage(ctx context.Context, lang catalog.Language) context.Context {
	return context.WithValue(ctx, contextKey{}, lang)
}

// FromContext returns the negotiated language, if any.
func FromContext(ctx context.Context) (catalog.Language, bool) {
	lang, ok := ctx.Value(contextKey{}).(catalog.Language)
	return lang, ok && lang != ""
}
