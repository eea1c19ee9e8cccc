package dictionary

import (
	"iter"
	"maps"
	"slices"

	"github.com/dmitrymomot/polyglot/pkg/catalog"
)

// Dictionary maps identifiers to display names for one language and version.
// It is immutable; the zero value is an empty dictionary.
type Dictionary struct {
	entries map[catalog.Material]string
}

// New copies entries into a Dictionary.
func New(entries map[catalog.Material]string) Dictionary {
	if len(entries) == 0 {
		return Dictionary{}
	}
	return Dictionary{entries: maps.Clone(entries)}
}

// Lookup returns the display name for id.
func (d Dictionary) Lookup(id catalog.Material) (string, bool) {
	name, ok := d.entries[id]
	return name, ok
}

// Len returns the number of entries.
func (d Dictionary) Len() int {
	return len(d.entries)
}

// IsEmpty reports whether the dictionary has no entries.
func (d Dictionary) IsEmpty() bool {
	return len(d.entries) == 0
}

// All iterates over entries in no particular order.
func (d Dictionary) All() iter.Seq2[catalog.Material, string] {
	return maps.All(d.entries)
}

// Materials returns the identifiers in sorted order.
func (d Dictionary) Materials() []catalog.Material {
	return slices.Sorted(maps.Keys(d.entries))
}
