// Package catalog holds the closed-world data tables the translation packages
// are keyed by: game locales (Language), asset revisions (Version) and the
// item/block identifiers (Material) a dictionary may resolve.
//
// All tables are static. Adding a locale, a revision or an identifier is a
// data change in this package, never a runtime operation.
//
// # Usage
//
//	lang, err := catalog.ParseLanguage("RU_RU") // catalog.RuRU
//	ver, err := catalog.ParseVersion("1.20.4")
//	id, err := catalog.ParseMaterial(catalog.DefaultUniverse(), "diamond_sword")
//
// Lookups are case-insensitive for languages and identifiers. Version labels
// are matched exactly first because a few snapshot labels are upper-case in
// the remote asset tree and must be addressed verbatim.
package catalog
