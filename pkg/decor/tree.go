package decor

import (
	"strconv"
	"strings"

	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// BuildTree prepares a parsed tree for decoration. Tips receive their
// cleaned classifications from the map and left-to-right tip indices.
// Internal nodes receive tip ranges, all-absent classifications, and
// bootstrap values from numeric labels. Tips missing from the map are
// uninformative.
func BuildTree(s *rank.Schema, root *phylo.Node, m *consmap.Map) {
	n := s.Len()
	for i, v := range root.PreOrder() {
		v.ID = i
		v.Rank = -1
	}

	for i, tip := range root.Tips() {
		tip.Name = strings.ReplaceAll(tip.Name, "'", "")
		tip.TipStart = i
		tip.TipStop = i
		tip.Consensus = make([]string, n)
		names, ok := m.Get(tip.Name)
		if !ok {
			continue
		}
		for r := range n {
			if r >= len(names) || rank.IsPlaceholder(names[r]) {
				continue
			}
			tip.Consensus[r] = names[r]
		}
	}

	for _, v := range root.PostOrder() {
		if v.IsTip() {
			continue
		}
		v.TipStart = v.Children[0].TipStart
		v.TipStop = v.Children[len(v.Children)-1].TipStop
		v.Consensus = make([]string, n)
		v.Bootstrap = nil
		if v.Name == "" {
			continue
		}
		if b, err := strconv.ParseFloat(v.Name, 64); err == nil {
			v.Bootstrap = &b
			v.Name = ""
		}
	}
}

// CollectCounts returns the number of tips per rank per name over the
// whole tree.
func CollectCounts(s *rank.Schema, root *phylo.Node) []map[string]int {
	res := newCounts(s.Len())
	for _, tip := range root.Tips() {
		for r, name := range tip.Consensus {
			if name == "" {
				continue
			}
			res[r][name]++
		}
	}
	return res
}

func newCounts(n int) []map[string]int {
	res := make([]map[string]int, n)
	for i := range res {
		res[i] = make(map[string]int)
	}
	return res
}

func isInformative(consensus []string) bool {
	for _, v := range consensus {
		if v != "" {
			return true
		}
	}
	return false
}
