package decor

import (
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// majority is the coverage a name needs to be a candidate at a rank.
const majority = 0.5

// SetRankSafe marks ranks where exactly one name covers at least half of
// its tree-wide tips. Tips are never safe.
func SetRankSafe(s *rank.Schema, root *phylo.Node) {
	n := s.Len()
	for _, v := range root.PreOrder() {
		v.RankSafe = make([]bool, n)
		if v.IsTip() {
			continue
		}
		for r, names := range v.Coverage {
			var count int
			for _, cov := range names {
				if cov >= majority {
					count++
				}
			}
			v.RankSafe[r] = count == 1
		}
	}
}

// PickNames places the best covered name at every safe rank of an
// internal node, starting from the root-most rank. The first unsafe rank
// after a placed name ends the placement for the node. Tips get empty
// RankNames.
func PickNames(s *rank.Schema, root *phylo.Node) {
	n := s.Len()
	for _, v := range root.PreOrder() {
		v.RankNames = make([]string, n)
		if v.IsTip() {
			continue
		}
		var count int
		for r, safe := range v.RankSafe {
			if !safe {
				if count > 0 {
					break
				}
				continue
			}
			v.RankNames[r] = bestCovered(v.Coverage[r])
			count++
		}
	}
}

// bestCovered returns the name with maximal coverage, the lexically
// smallest one on ties.
func bestCovered(names map[string]float64) string {
	var res string
	best := -1.0
	for name, cov := range names {
		if cov > best || (cov == best && name < res) {
			res = name
			best = cov
		}
	}
	return res
}
