package translate

import "github.com/dmitrymomot/polyglot/pkg/catalog"

// Result is the outcome of a single translation request.
// When IsTranslated is false, TranslatedName holds the identifier itself.
type Result struct {
	OriginalName   string           `json:"original_name"`
	TranslatedName string           `json:"translated_name"`
	Language       catalog.Language `json:"language"`
	IsTranslated   bool             `json:"is_translated"`
}
