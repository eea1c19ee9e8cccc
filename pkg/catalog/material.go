package catalog

import (
	"bufio"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Material is an upper-case item or block identifier such as "DIAMOND".
type Material string

func (m Material) String() string {
	return string(m)
}

// ErrUnknownMaterial is returned when an identifier is not part of a Universe.
var ErrUnknownMaterial = errors.New("unknown material")

// Universe is the closed set of identifiers a dictionary may contain.
type Universe interface {
	Contains(m Material) bool
}

// MaterialSet is a Universe backed by a map. It is read-only after construction.
type MaterialSet struct {
	items map[Material]struct{}
}

// NewUniverse builds a Universe from raw names. Names are normalised the same
// way dictionary keys are, so "diamond" and "DIAMOND" are equivalent.
func NewUniverse(names ...string) *MaterialSet {
	s := &MaterialSet{items: make(map[Material]struct{}, len(names))}
	for _, n := range names {
		if m := Normalize(n); m != "" {
			s.items[m] = struct{}{}
		}
	}
	return s
}

// Contains reports whether m belongs to the set.
func (s *MaterialSet) Contains(m Material) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[m]
	return ok
}

// Len returns the number of identifiers in the set.
func (s *MaterialSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Materials returns the identifiers sorted alphabetically.
func (s *MaterialSet) Materials() []Material {
	if s == nil {
		return nil
	}
	out := make([]Material, 0, len(s.items))
	for m := range s.items {
		out = append(out, m)
	}
	slices.Sort(out)
	return out
}

//go:embed materials.txt
var materialsData string

var (
	defaultUniverse     *MaterialSet
	defaultUniverseOnce sync.Once
)

// DefaultUniverse returns the embedded identifier table. It covers the common
// items and blocks; callers holding a full server registry should build their
// own set with NewUniverse.
func DefaultUniverse() *MaterialSet {
	defaultUniverseOnce.Do(func() {
		var names []string
		sc := bufio.NewScanner(strings.NewReader(materialsData))
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			names = append(names, line)
		}
		defaultUniverse = NewUniverse(names...)
	})
	return defaultUniverse
}

// upper is not safe for concurrent use, hence the pool.
var upperPool = sync.Pool{
	New: func() any { return cases.Upper(language.Und) },
}

// Normalize trims and upper-cases a raw identifier.
func Normalize(raw string) Material {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	c := upperPool.Get().(cases.Caser)
	defer upperPool.Put(c)
	return Material(c.String(raw))
}

// ParseMaterial normalises raw and checks it against u.
func ParseMaterial(u Universe, raw string) (Material, error) {
	m := Normalize(raw)
	if m == "" || u == nil || !u.Contains(m) {
		return "", fmt.Errorf("%w: %q", ErrUnknownMaterial, raw)
	}
	return m, nil
}
