// Package dictionary fetches, parses and caches game lang files.
//
// A Fetcher returns the raw content of one dictionary for a language and a
// game version. HTTPFetcher reads the public asset mirror, FSFetcher reads a
// local copy of the same tree, S3Fetcher reads it from a bucket and
// RedisFetcher shares downloads between processes in front of any of them.
//
// LangParser extracts block and item names from the raw content, keeping only
// identifiers known to a catalog.Universe.
//
// Cache combines the two and keeps one Dictionary per (language, version) pair
// for the life of the process:
//
//	c, err := dictionary.NewCache(dictionary.NewHTTPFetcher(), nil,
//		dictionary.WithLogger(log),
//	)
//	if err != nil {
//		return err
//	}
//	dict := c.Get(ctx, catalog.RuRU, catalog.DefaultVersion)
//	name, ok := dict.Lookup("DIAMOND")
//
// Each pair is fetched at most once. A failed fetch is logged and cached as an
// empty Dictionary; call Invalidate to fetch it again.
package dictionary
