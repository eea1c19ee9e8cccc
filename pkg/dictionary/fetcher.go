package dictionary

import (
	"context"
	"errors"
	"path"
	"strings"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Fetcher retrieves the raw content of one dictionary. Implementations report
// every failure wrapped with ErrFetch.
type Fetcher interface {
	Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
	return f(ctx, lang, version)
}

// AssetPath returns the location of a dictionary inside an asset tree:
// <version>/assets/minecraft/lang/<lang>.json. The language is lower-cased and
// the version label is used verbatim.
func AssetPath(lang catalog.Language, version catalog.Version) string {
	return path.Join(version.Name, "assets", "minecraft", "lang", strings.ToLower(string(lang))+".json")
}

func validateTarget(lang catalog.Language, version catalog.Version) error {
	if lang == "" || strings.ContainsAny(string(lang), "/\\.") {
		return errors.Join(ErrFetch, ErrInvalidLanguage)
	}
	if version.IsZero() || strings.Contains(version.Name, "..") || strings.ContainsAny(version.Name, "/\\") {
		return errors.Join(ErrFetch, ErrInvalidVersion)
	}
	return nil
}
