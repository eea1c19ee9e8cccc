package dictionary

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Parser turns raw dictionary content into a Dictionary. Implementations must
// not fail: content they cannot understand is simply left out.
type Parser interface {
	Parse(raw []byte) Dictionary
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(raw []byte) Dictionary

func (f ParserFunc) Parse(raw []byte) Dictionary {
	return f(raw)
}

// DefaultCategories are the key prefixes that name items and blocks.
var DefaultCategories = []string{"block", "item"}

// LangParser extracts item and block names from game lang files. It scans for
// quoted key/value pairs rather than decoding JSON, so truncated or loosely
// formatted files still yield whatever pairs they contain.
//
// A key has the shape <category>.<namespace>.<name>[.<suffix>...]. The
// category must be allowed, the namespace is ignored and the upper-cased name
// must belong to the Universe. When several keys resolve to the same
// identifier the first one in the file wins.
type LangParser struct {
	universe   catalog.Universe
	categories []string
	pattern    *regexp.Regexp
}

// ParserOption configures a LangParser.
type ParserOption func(*LangParser)

// WithUniverse sets the identifier universe. Defaults to catalog.DefaultUniverse.
func WithUniverse(u catalog.Universe) ParserOption {
	return func(p *LangParser) {
		if u != nil {
			p.universe = u
		}
	}
}

// WithCategories replaces the category allow-list. Empty lists are ignored.
func WithCategories(categories ...string) ParserOption {
	return func(p *LangParser) {
		clean := make([]string, 0, len(categories))
		for _, c := range categories {
			if c = strings.TrimSpace(c); c != "" {
				clean = append(clean, c)
			}
		}
		if len(clean) > 0 {
			p.categories = clean
		}
	}
}

// NewLangParser creates a LangParser.
func NewLangParser(opts ...ParserOption) *LangParser {
	p := &LangParser{
		universe:   catalog.DefaultUniverse(),
		categories: DefaultCategories,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.pattern = compileKeyPattern(p.categories)
	return p
}

func compileKeyPattern(categories []string) *regexp.Regexp {
	quoted := make([]string, len(categories))
	for i, c := range categories {
		quoted[i] = regexp.QuoteMeta(c)
	}
	// "<category>.<rest>" : "<value with optional escapes>"
	return regexp.MustCompile(`"((?:` + strings.Join(quoted, "|") + `)\.[^"\\]+)"\s*:\s*"((?:[^"\\]|\\.)+)"`)
}

// Parse implements Parser.
func (p *LangParser) Parse(raw []byte) Dictionary {
	if len(raw) == 0 {
		return Dictionary{}
	}

	entries := make(map[catalog.Material]string)
	for _, m := range p.pattern.FindAllSubmatch(raw, -1) {
		segments := strings.Split(string(m[1]), ".")
		if len(segments) < 3 {
			continue
		}
		id := catalog.Normalize(segments[2])
		if id == "" || !p.universe.Contains(id) {
			continue
		}
		if _, seen := entries[id]; seen {
			continue
		}
		entries[id] = unescape(m[2])
	}

	return Dictionary{entries: entries}
}

// unescape decodes JSON string escapes. Values with broken escapes are kept
// as written.
func unescape(v []byte) string {
	if !strings.ContainsRune(string(v), '\\') {
		return string(v)
	}
	quoted := make([]byte, 0, len(v)+2)
	quoted = append(quoted, '"')
	quoted = append(quoted, v...)
	quoted = append(quoted, '"')

	var s string
	if err := json.Unmarshal(quoted, &s); err != nil {
		return string(v)
	}
	return s
}
