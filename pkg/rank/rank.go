// Package rank provides the ordered set of taxonomic ranks used during
// tree decoration. A Schema is immutable once created and is passed
// explicitly to every component that needs rank-length arrays.
package rank

import (
	"strings"
)

// Sep separates rank code from the name, as in 'g__Bacillus'.
const Sep = "__"

// Schema is an ordered list of one-letter rank codes, from the root-most
// rank (index 0) to the deepest one.
type Schema struct {
	codes []string
	index map[byte]int
}

// New creates a Schema from the ordered one-letter rank codes.
func New(codes []string) (*Schema, error) {
	if len(codes) == 0 {
		return nil, SchemaError(codes, "no rank codes")
	}
	res := &Schema{
		codes: make([]string, len(codes)),
		index: make(map[byte]int, len(codes)),
	}
	for i, v := range codes {
		v = strings.TrimSpace(v)
		if len(v) != 1 {
			return nil, SchemaError(codes, "rank code must be one letter")
		}
		if _, ok := res.index[v[0]]; ok {
			return nil, SchemaError(codes, "duplicate rank code")
		}
		res.codes[i] = v
		res.index[v[0]] = i
	}
	return res, nil
}

// Default returns the domain-to-species Schema 'd p c o f g s'.
func Default() *Schema {
	res, _ := New([]string{"d", "p", "c", "o", "f", "g", "s"})
	return res
}

// Len returns the number of ranks.
func (s *Schema) Len() int {
	return len(s.codes)
}

// Codes returns a copy of the rank codes.
func (s *Schema) Codes() []string {
	res := make([]string, len(s.codes))
	copy(res, s.codes)
	return res
}

// Code returns the rank code at index i.
func (s *Schema) Code(i int) string {
	return s.codes[i]
}

// Index returns the position of a rank code.
func (s *Schema) Index(code byte) (int, bool) {
	i, ok := s.index[code]
	return i, ok
}

// RankOf returns the rank index implied by the first character of a
// rank-prefixed name.
func (s *Schema) RankOf(name string) (int, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, false
	}
	return s.Index(name[0])
}

// Placeholder returns an empty rank-prefixed name, for example 'g__'.
func (s *Schema) Placeholder(i int) string {
	return s.codes[i] + Sep
}

// Placeholders returns a rank-length slice of empty rank-prefixed names.
func (s *Schema) Placeholders() []string {
	res := make([]string, len(s.codes))
	for i := range s.codes {
		res[i] = s.Placeholder(i)
	}
	return res
}

// Prefixed attaches the rank prefix to a name. Empty names become
// placeholders.
func (s *Schema) Prefixed(i int, name string) string {
	return s.codes[i] + Sep + name
}

// HasPrefix checks if a name starts with a one-letter rank prefix.
func HasPrefix(name string) bool {
	return len(name) >= 3 && name[1:3] == Sep
}

// IsPlaceholder checks if a name is a rank prefix without content.
func IsPlaceholder(name string) bool {
	idx := strings.Index(name, Sep)
	return idx >= 0 && name[idx+len(Sep):] == ""
}

// Bare removes the rank prefix from a name, if it is present.
func Bare(name string) string {
	if HasPrefix(name) {
		return name[3:]
	}
	return name
}
