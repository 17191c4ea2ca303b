package decor

import (
	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// BackfillFromSecondary extends names of tip parents with the ranks a
// secondary taxonomy knows below the deepest name decorated above the
// tip. Tips already placed at the deepest rank and tips absent from the
// secondary map are skipped. A parent only receives ranks deeper than its
// own last name. It must run after Backfill and returns the number of
// added names.
func BackfillFromSecondary(
	s *rank.Schema,
	root *phylo.Node,
	sec *consmap.Map,
) int {
	var res int
	for _, tip := range root.Tips() {
		names, ok := sec.Get(tip.Name)
		if !ok || tip.IsRoot() {
			continue
		}

		most, ok := deepestAbove(s, tip)
		if !ok || most == s.Len()-1 {
			continue
		}

		p := tip.Parent()
		from := most
		if n := len(p.BackfillNames); n > 0 {
			if r, ok := s.RankOf(p.BackfillNames[n-1]); ok {
				from = max(from, r)
			}
		}
		for r := from + 1; r < min(len(names), s.Len()); r++ {
			if names[r] == "" || rank.IsPlaceholder(names[r]) {
				continue
			}
			p.BackfillNames = append(p.BackfillNames, names[r])
			res++
		}
	}
	return res
}

// deepestAbove returns the rank of the deepest name on the ancestors of a
// tip, -1 if there are no names. It is false for an unknown rank.
func deepestAbove(s *rank.Schema, tip *phylo.Node) (int, bool) {
	for _, a := range tip.Ancestors() {
		if n := len(a.BackfillNames); n > 0 {
			return s.RankOf(a.BackfillNames[n-1])
		}
	}
	return -1, true
}

// PromoteToMultifurcation moves names of nodes onto unnamed parents when
// the only sibling of the node covers fragment placements only. This way
// a name spans placements attached next to the clade. Nodes are visited
// in post-order, so a name can move several levels up. It returns the
// number of moved names.
func PromoteToMultifurcation(
	s *rank.Schema,
	root *phylo.Node,
	fragments map[string]struct{},
) int {
	onlyFragments := make(map[*phylo.Node]bool)
	nodes := root.PostOrder()
	for _, v := range nodes {
		if v.IsTip() {
			_, ok := fragments[v.Name]
			onlyFragments[v] = ok
			continue
		}
		all := true
		for _, c := range v.Children {
			if !onlyFragments[c] {
				all = false
				break
			}
		}
		onlyFragments[v] = all
	}

	var res int
	for _, v := range nodes {
		if v.IsTip() || v.IsRoot() || len(v.BackfillNames) == 0 {
			continue
		}
		if _, ok := s.RankOf(v.BackfillNames[0]); !ok {
			continue
		}
		p := v.Parent()
		if len(p.BackfillNames) > 0 || len(p.Children) != 2 {
			continue
		}
		sib := p.Children[0]
		if sib == v {
			sib = p.Children[1]
		}
		if !onlyFragments[sib] {
			continue
		}
		p.BackfillNames, v.BackfillNames = v.BackfillNames, nil
		p.Name, v.Name = v.Name, ""
		res++
	}
	return res
}
