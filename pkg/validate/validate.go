// Package validate finds problems in taxonomy files before they are used
// for decoration. Flat checks look at every line separately, hierarchy
// checks look for taxa that appear under more than one parent.
package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
)

// Names of flat error categories.
const (
	IncorrectPrefixes = "Incorrect prefixes"
	IncorrectLevels   = "Incorrect number of levels"
	GapsInTaxonomy    = "Gaps in taxonomy"
)

// Category keeps ids of lines with the same kind of problem.
type Category struct {
	Name string
	IDs  []string
}

// FlatErrors checks prefixes, number of ranks and gaps of every line.
// Categories without problems are omitted, the rest are sorted by name.
// A line without a tab separator is an error.
func FlatErrors(s *rank.Schema, lines []string) ([]Category, error) {
	found := make(map[string][]string)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		id, names, err := consmap.SplitLine(line)
		if err != nil {
			return nil, err
		}
		if !checkPrefixes(s, names) {
			found[IncorrectPrefixes] = append(found[IncorrectPrefixes], id)
		}
		if len(names) != s.Len() {
			found[IncorrectLevels] = append(found[IncorrectLevels], id)
		}
		if !checkGap(names) {
			found[GapsInTaxonomy] = append(found[GapsInTaxonomy], id)
		}
	}

	res := make([]Category, 0, len(found))
	for k, v := range found {
		res = append(res, Category{Name: k, IDs: v})
	}
	slices.SortFunc(res, func(a, b Category) int {
		return strings.Compare(a.Name, b.Name)
	})
	return res, nil
}

func checkPrefixes(s *rank.Schema, names []string) bool {
	for i, v := range names {
		if i >= s.Len() {
			break
		}
		code, _, ok := strings.Cut(v, rank.Sep)
		if !ok || code != s.Code(i) {
			return false
		}
	}
	return true
}

// checkGap is false when a name follows an empty rank.
func checkGap(names []string) bool {
	var gap bool
	for _, v := range names {
		bare := v
		if idx := strings.LastIndex(v, rank.Sep); idx >= 0 {
			bare = v[idx+len(rank.Sep):]
		}
		if bare == "" {
			gap = true
			continue
		}
		if gap {
			return false
		}
	}
	return true
}

// Parent is a parent of a taxon with an id of a line where the taxon
// appears under it.
type Parent struct {
	Name string
	Tip  string
}

// Conflict is a taxon found under more than one parent.
type Conflict struct {
	Taxon   string
	Rank    string
	Parents []Parent
}

type taxonKey struct {
	name string
	rank int
}

// HierarchyErrors finds taxa with several parents. Rows must be cleaned
// without rank prefixes injection, absent names are ignored as taxa.
func HierarchyErrors(s *rank.Schema, m *consmap.Map) []Conflict {
	trie := taxtrie.New(s, m.Lineages(), taxtrie.OptTips(m.IDs()))

	var keys []taxonKey
	parents := make(map[taxonKey][]Parent)
	for _, v := range trie.Nodes() {
		if v.Name == "" {
			continue
		}
		k := taxonKey{name: v.Name, rank: v.Rank}
		if _, ok := parents[k]; !ok {
			keys = append(keys, k)
		}
		parentName := v.Parent.Name
		if slices.ContainsFunc(parents[k], func(p Parent) bool {
			return p.Name == parentName
		}) {
			continue
		}
		parents[k] = append(parents[k], Parent{Name: parentName, Tip: v.FirstTip()})
	}

	var res []Conflict
	for _, k := range keys {
		if len(parents[k]) < 2 {
			continue
		}
		res = append(res, Conflict{
			Taxon:   k.name,
			Rank:    s.Code(k.rank),
			Parents: parents[k],
		})
	}
	return res
}

// Report renders found problems. At most limit ids are shown per
// category, followed by '...' if there are more of them.
func Report(cats []Category, conflicts []Conflict, limit int) []string {
	var res []string
	for _, v := range cats {
		ids := v.IDs
		var ellipsis string
		if len(ids) > limit {
			ids = ids[:limit]
			ellipsis = "..."
		}
		res = append(res, v.Name, "\t"+strings.Join(ids, ",")+ellipsis)
	}

	if len(conflicts) > 0 {
		res = append(res, "Multiple parents")
	}
	for _, v := range conflicts {
		res = append(res, "\t"+v.Taxon)
		for _, p := range v.Parents {
			res = append(res, fmt.Sprintf("\t\t%s, %s", p.Name, p.Tip))
		}
	}
	return res
}
