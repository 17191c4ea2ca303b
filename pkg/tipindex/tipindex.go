// Package tipindex maps named clades of a decorated tree to the sets of
// tips they cover. Such an index is used to find the same clades in a
// larger tree that contains the backbone tips.
package tipindex

import (
	"slices"
	"strings"

	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
)

// Clade is a named internal node with its sorted tip names.
type Clade struct {
	Name string   `json:"name"`
	Tips []string `json:"tips"`
}

// Key returns the canonical representation of a tip set.
func (c Clade) Key() string {
	return strings.Join(c.Tips, ",")
}

// Clades returns covered tips of every named internal node in pre-order.
// Support values are removed from names, nodes labeled only by support
// are unnamed.
func Clades(root *phylo.Node) []Clade {
	covered := make(map[*phylo.Node][]string)
	for _, v := range root.PostOrder() {
		if v.IsTip() {
			covered[v] = []string{v.Name}
			continue
		}
		var tips []string
		for _, c := range v.Children {
			tips = append(tips, covered[c]...)
		}
		covered[v] = tips
	}

	var res []Clade
	for _, v := range root.NonTips() {
		name := cladeName(v.Name)
		if name == "" {
			continue
		}
		tips := slices.Clone(covered[v])
		slices.Sort(tips)
		res = append(res, Clade{Name: name, Tips: tips})
	}
	return res
}

func cladeName(label string) string {
	name := decor.StripSupport(label)
	if decor.IsSupport(name) {
		return ""
	}
	return name
}

// Index maps tip set keys to clade names. Two clades with the same tip
// set are an error. Clades never returns unnamed clades, but Index also
// accepts clades built elsewhere, so an empty name is an error too.
func Index(clades []Clade) (map[string]string, error) {
	res := make(map[string]string, len(clades))
	for _, v := range clades {
		if v.Name == "" {
			return nil, UnnamedError(v.Key())
		}
		key := v.Key()
		if prev, ok := res[key]; ok {
			return nil, NonUniqueError(prev, v.Name)
		}
		res[key] = v.Name
	}
	return res, nil
}
