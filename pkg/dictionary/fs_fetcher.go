package dictionary

import (
	"context"
	"errors"
	"io/fs"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// FSFetcher reads dictionaries from a local copy of the asset tree, laid out
// exactly like the remote one. Use os.DirFS for a directory or an embed.FS
// for dictionaries compiled into the binary.
type FSFetcher struct {
	fsys fs.FS
}

// NewFSFetcher creates an FSFetcher rooted at fsys.
func NewFSFetcher(fsys fs.FS) *FSFetcher {
	return &FSFetcher{fsys: fsys}
}

// Fetch implements Fetcher.
func (f *FSFetcher) Fetch(ctx context.Context, lang catalog.Language, version catalog.Version) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrFetch, err)
	}
	if err := validateTarget(lang, version); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(f.fsys, AssetPath(lang, version))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Join(ErrFetch, ErrDictionaryNotFound, err)
		}
		return nil, errors.Join(ErrFetch, err)
	}
	return data, nil
}
