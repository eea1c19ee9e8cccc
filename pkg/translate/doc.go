// Package translate resolves item and block identifiers to display names in
// many languages.
//
// A Resolver holds one Provider per bound language. Cache-backed providers
// read a dictionary.Cache snapshot; custom providers such as StaticProvider or
// a ChainProvider with hand-written overrides can replace them per language.
//
//	cache, _ := dictionary.NewCache(dictionary.NewHTTPFetcher(), nil)
//	r, err := translate.New(ctx, cache,
//		translate.WithLanguages(catalog.EnUS, catalog.RuRU),
//		translate.WithDefaultLanguage(catalog.EnUS),
//		translate.WithDynamicLoading(true),
//	)
//	if err != nil {
//		return err
//	}
//	res := r.Translate(ctx, "DIAMOND", catalog.RuRU)
//
// Translate never fails. A missing translation echoes the identifier with
// IsTranslated false. Unbound languages use the default language, unless
// dynamic loading is on, in which case the language is bound on first use.
//
// Overrides can be loaded from YAML with LoadYAMLOverrides or from Postgres
// with PostgresOverrides, whose schema ships in Migrations.
package translate
