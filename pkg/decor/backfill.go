package decor

import (
	"log/slog"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
)

// Backfill sets BackfillNames of every internal node. A named node gets
// its own name, preceded by the names of missing ranks between the node
// and its nearest named ancestor. Missing ranks are taken from the trie.
// A node without named ancestors gets all ranks above it from the trie,
// except leading gaps. An ancestor that is not above the node by rank
// clears the list.
func Backfill(root *phylo.Node, trie *taxtrie.Trie) error {
	for _, v := range root.NonTips() {
		if v.Name == "" || v.Rank < 0 {
			v.BackfillNames = nil
			continue
		}
		v.BackfillNames = []string{v.Name}
		if v.Rank == 0 {
			continue
		}

		anc := nearestNamedAncestor(v)
		if anc == nil {
			names, err := trie.Walk(v.Name, v.Rank+1)
			if err != nil {
				return err
			}
			v.BackfillNames = trimPlaceholders(names)
			continue
		}

		distance := v.Rank - anc.Rank
		switch {
		case distance < 1:
			slog.Warn("Ancestor rank is not above node rank",
				"node", v.Name,
				"node_rank", v.Rank,
				"node_rank_safe", v.RankSafe,
				"node_rank_names", v.RankNames,
				"ancestor", anc.Name,
				"ancestor_rank", anc.Rank,
				"ancestor_rank_safe", anc.RankSafe,
				"ancestor_rank_names", anc.RankNames,
			)
			v.BackfillNames = nil
		case distance == 1:
			continue
		default:
			names, err := trie.Walk(v.Name, distance)
			if err != nil {
				return err
			}
			v.BackfillNames = names
		}
	}
	return nil
}

// trimPlaceholders drops placeholders before the first real name.
func trimPlaceholders(names []string) []string {
	for i, v := range names {
		if !rank.IsPlaceholder(v) {
			return names[i:]
		}
	}
	return nil
}

func nearestNamedAncestor(n *phylo.Node) *phylo.Node {
	for _, v := range n.Ancestors() {
		if v.Name != "" && v.Rank >= 0 {
			return v
		}
	}
	return nil
}
