package locale

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// maxAcceptLanguageLength bounds the header parsed per request.
const maxAcceptLanguageLength = 4096

// Negotiator matches Accept-Language headers against game language codes.
// It is immutable and safe for concurrent use.
type Negotiator struct {
	langs   []catalog.Language
	matcher language.Matcher
}

// NewNegotiator builds a Negotiator for langs. Codes without a BCP 47
// equivalent, such as joke languages, can only be selected explicitly.
func NewNegotiator(langs ...catalog.Language) *Negotiator {
	n := &Negotiator{}
	tags := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		tag, ok := Tag(l)
		if !ok {
			continue
		}
		n.langs = append(n.langs, l)
		tags = append(tags, tag)
	}
	if len(tags) > 0 {
		n.matcher = language.NewMatcher(tags)
	}
	return n
}

// Tag converts a game code ("pt_br") to a BCP 47 tag ("pt-BR").
func Tag(l catalog.Language) (language.Tag, bool) {
	tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
	if err != nil || tag == language.Und {
		return language.Und, false
	}
	return tag, true
}

// Match returns the best supported language for an Accept-Language header.
func (n *Negotiator) Match(header string) (catalog.Language, bool) {
	if n.matcher == nil || header == "" {
		return "", false
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return "", false
	}

	_, idx, conf := n.matcher.Match(tags...)
	if conf == language.No || idx < 0 || idx >= len(n.langs) {
		return "", false
	}
	return n.langs[idx], true
}

// Languages returns the languages the negotiator can select.
func (n *Negotiator) Languages() []catalog.Language {
	out := make([]catalog.Language, len(n.langs))
	copy(out, n.langs)
	return out
}
