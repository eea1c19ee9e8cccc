package translate

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Overrides holds hand-written translations per language.
type Overrides map[catalog.Language]map[catalog.Material]string

// Set records one override, normalizing the identifier.
func (o Overrides) Set(lang catalog.Language, id, name string) {
	m, ok := o[lang]
	if !ok {
		m = make(map[catalog.Material]string)
		o[lang] = m
	}
	m[catalog.Normalize(id)] = name
}

// Providers turns the overrides into one StaticProvider per language.
func (o Overrides) Providers() map[catalog.Language]*StaticProvider {
	out := make(map[catalog.Language]*StaticProvider, len(o))
	for lang, entries := range o {
		out[lang] = NewStaticProvider(entries)
	}
	return out
}

// Options returns a WithOverrides option for every language.
func (o Overrides) Options() []Option {
	opts := make([]Option, 0, len(o))
	for lang, p := range o.Providers() {
		opts = append(opts, WithOverrides(lang, p))
	}
	return opts
}

// Merge copies other into o. Entries in other win.
func (o Overrides) Merge(other Overrides) {
	for lang, entries := range other {
		for id, name := range entries {
			o.Set(lang, string(id), name)
		}
	}
}

// LoadYAMLOverrides reads overrides shaped as language -> identifier -> name:
//
//	ru_ru:
//	  diamond: Алмазик
//	  stone: Камушек
//
// Language codes must be known. Identifiers are upper-cased but not checked
// against a universe, so names for modded items are accepted.
func LoadYAMLOverrides(r io.Reader) (Overrides, error) {
	var raw map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Overrides{}, nil
		}
		return nil, errors.Join(ErrInvalidOverrides, err)
	}

	out := make(Overrides, len(raw))
	for code, entries := range raw {
		lang, err := catalog.ParseLanguage(code)
		if err != nil {
			return nil, errors.Join(ErrInvalidOverrides, err)
		}
		for id, name := range entries {
			if strings.TrimSpace(id) == "" || name == "" {
				return nil, fmt.Errorf("%w: empty entry for language %q", ErrInvalidOverrides, code)
			}
			out.Set(lang, strings.TrimSpace(id), name)
		}
	}
	return out, nil
}
