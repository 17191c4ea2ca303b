package decor

import (
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// DecorateCounts sets NumTips, NumTipsRank and TaxaCount on every node
// bottom-up. Only informative tips are counted.
func DecorateCounts(s *rank.Schema, root *phylo.Node) {
	n := s.Len()
	for _, v := range root.PostOrder() {
		v.NumTipsRank = make([]int, n)
		v.TaxaCount = newCounts(n)

		if v.IsTip() {
			v.NumTips = 0
			if isInformative(v.Consensus) {
				v.NumTips = 1
			}
			for r, name := range v.Consensus {
				if name == "" {
					continue
				}
				v.NumTipsRank[r] = 1
				v.TaxaCount[r][name] = 1
			}
			continue
		}

		v.NumTips = 0
		for _, c := range v.Children {
			v.NumTips += c.NumTips
			for r := range n {
				v.NumTipsRank[r] += c.NumTipsRank[r]
				for name, cnt := range c.TaxaCount[r] {
					v.TaxaCount[r][name] += cnt
				}
			}
		}
	}
}

// DecorateFreqs sets Coverage and Precision on internal nodes. Coverage
// is the share of all tips with a name that are inside the subtree,
// precision is the share of informative subtree tips that carry the name.
// Names seen in fewer than minCount subtree tips are ignored. Requires
// DecorateCounts.
func DecorateFreqs(
	s *rank.Schema,
	root *phylo.Node,
	totals []map[string]int,
	minCount int,
) {
	n := s.Len()
	for _, v := range root.PreOrder() {
		if v.IsTip() {
			v.Coverage = nil
			v.Precision = nil
			continue
		}

		v.Coverage = make([]map[string]float64, n)
		v.Precision = make([]map[string]float64, n)
		for r := range n {
			v.Coverage[r] = make(map[string]float64)
			v.Precision[r] = make(map[string]float64)
			for name, cnt := range v.TaxaCount[r] {
				total := totals[r][name]
				if cnt < minCount || total == 0 || v.NumTips == 0 {
					continue
				}
				v.Coverage[r][name] = float64(cnt) / float64(total)
				v.Precision[r][name] = float64(cnt) / float64(v.NumTips)
			}
		}
	}
}
