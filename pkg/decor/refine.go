package decor

import (
	"log/slog"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
)

// tagRe matches a polyphyletic tag or a counter at the end of a name.
var tagRe = regexp.MustCompile(`^(.*[^_])_([A-Z]+|[0-9]+)$`)

// CorrectDecorated removes names of internal nodes whose decorated
// lineage disagrees with the lineage of their deepest name in the trie.
// Names are compared rank by rank, placeholders match anything, and
// polyphyletic tags or counters are ignored. Names absent from the trie
// are kept. It returns the number of nodes that lost their names.
func CorrectDecorated(s *rank.Schema, root *phylo.Node, trie *taxtrie.Trie) int {
	lineages := make(map[*phylo.Node][]string)
	for _, v := range root.PreOrder() {
		var lin []string
		if p := v.Parent(); p != nil {
			lin = slices.Clone(lineages[p])
		}
		if !v.IsTip() {
			lin = append(lin, v.BackfillNames...)
		}
		lineages[v] = lin
	}

	var res int
	for _, v := range root.NonTips() {
		if v.IsRoot() || len(v.BackfillNames) == 0 {
			continue
		}
		obs := lineages[v]
		last := obs[len(obs)-1]
		r, ok := s.RankOf(last)
		if !ok || !rank.HasPrefix(last) {
			continue
		}
		exp, err := trie.Walk(last, r+1)
		if err != nil {
			continue
		}
		if lineagesAgree(s, obs, exp, r+1-len(exp)) {
			continue
		}
		slog.Info("Removing names that disagree with consensus map",
			"names", v.Name,
			"observed", strings.Join(obs, NameSep),
			"expected", strings.Join(exp, NameSep),
			"tips", v.TipStop-v.TipStart+1,
		)
		v.BackfillNames = nil
		v.Name = ""
		res++
	}
	return res
}

// lineagesAgree compares observed names with expected ones, where
// exp[i] has rank offset+i.
func lineagesAgree(s *rank.Schema, obs, exp []string, offset int) bool {
	for _, o := range obs {
		r, ok := s.RankOf(o)
		if !ok || rank.IsPlaceholder(o) {
			continue
		}
		i := r - offset
		if i < 0 || i >= len(exp) || rank.IsPlaceholder(exp[i]) {
			continue
		}
		if untagged(o) != untagged(exp[i]) {
			return false
		}
	}
	return true
}

func untagged(name string) string {
	if m := tagRe.FindStringSubmatch(name); m != nil {
		return m[1]
	}
	return name
}

// RecoverPolyphyletic replaces a name with its polyphyletic variant when
// the tree has such a variant ('g__Bacillus' and 'g__Bacillus_A') and it
// is carried by one of the nearest named relatives of the node. The
// closest relative by branch length wins, ties go to the smaller name.
// It returns the number of replaced names.
func RecoverPolyphyletic(root *phylo.Node) int {
	nodes := namedNodes(root)

	variants := make(map[string]string)
	hasVariant := make(map[string]bool)
	for _, v := range nodes {
		for _, name := range v.BackfillNames {
			if m := polyRe.FindStringSubmatch(name); m != nil {
				variants[name] = m[1]
				hasVariant[m[1]] = true
			}
		}
	}

	updates := make(map[*phylo.Node][]string)
	var res int
	for _, v := range nodes {
		var names []string
		for i, name := range v.BackfillNames {
			if !hasVariant[name] {
				continue
			}
			best, bestDist := "", math.Inf(1)
			for _, rel := range namedRelatives(v) {
				for _, relName := range rel.BackfillNames {
					if variants[relName] != name {
						continue
					}
					d := pathLength(v, rel)
					if d < bestDist || (d == bestDist && relName < best) {
						best, bestDist = relName, d
					}
				}
			}
			if best == "" {
				continue
			}
			if names == nil {
				names = slices.Clone(v.BackfillNames)
			}
			slog.Debug("Recovering polyphyletic name", "name", name, "variant", best)
			names[i] = best
			res++
		}
		if names != nil {
			updates[v] = names
		}
	}

	for v, names := range updates {
		v.BackfillNames = names
		v.Name = strings.Join(names, NameSep)
	}
	return res
}

func namedNodes(root *phylo.Node) []*phylo.Node {
	var res []*phylo.Node
	for _, v := range root.NonTips() {
		if len(v.BackfillNames) > 0 {
			res = append(res, v)
		}
	}
	return res
}

// namedRelatives returns the nearest named internal nodes under the
// nearest named ancestor of n, or under the root, outside of the clade
// of n.
func namedRelatives(n *phylo.Node) []*phylo.Node {
	if n.IsRoot() {
		return nil
	}
	anc := n.Root()
	for _, a := range n.Ancestors() {
		if len(a.BackfillNames) > 0 {
			anc = a
			break
		}
	}

	var res []*phylo.Node
	var walk func(*phylo.Node)
	walk = func(v *phylo.Node) {
		for _, c := range v.Children {
			switch {
			case c == n || c.IsTip():
			case len(c.BackfillNames) > 0:
				res = append(res, c)
			default:
				walk(c)
			}
		}
	}
	walk(anc)
	return res
}

// pathLength is the sum of branch lengths between two nodes. A missing
// length counts as 1.
func pathLength(a, b *phylo.Node) float64 {
	up := make(map[*phylo.Node]float64)
	var d float64
	for cur := a; cur != nil; cur = cur.Parent() {
		up[cur] = d
		d += branchLength(cur)
	}
	d = 0
	for cur := b; cur != nil; cur = cur.Parent() {
		if da, ok := up[cur]; ok {
			return da + d
		}
		d += branchLength(cur)
	}
	return d
}

func branchLength(n *phylo.Node) float64 {
	if n.Length == nil {
		return 1
	}
	return *n.Length
}
