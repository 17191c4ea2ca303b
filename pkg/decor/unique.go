package decor

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

type occurrence struct {
	node *phylo.Node
	idx  int
}

// Uniquify appends a counter to repeated names so every name occurs once
// in the tree. The occurrence spanning most tips keeps the bare name,
// others get '<name><glue><count>' in the order of decreasing span, ties
// resolved by node ID. Counters that give a name already present in the
// tree are skipped. Placeholders like 'g__' stay as they are. Display
// names are rebuilt from BackfillNames.
func Uniquify(root *phylo.Node, glue string) {
	byName := make(map[string][]occurrence)
	used := make(map[string]struct{})
	var order []string
	for _, v := range root.NonTips() {
		if v.Name == "" {
			continue
		}
		for i, name := range v.BackfillNames {
			if _, ok := byName[name]; !ok {
				order = append(order, name)
			}
			byName[name] = append(byName[name], occurrence{node: v, idx: i})
			used[name] = struct{}{}
		}
	}

	for _, name := range order {
		occs := byName[name]
		if len(occs) < 2 || rank.IsPlaceholder(name) {
			continue
		}
		slices.SortStableFunc(occs, func(a, b occurrence) int {
			spanA := a.node.TipStop - a.node.TipStart
			spanB := b.node.TipStop - b.node.TipStart
			if c := cmp.Compare(spanB, spanA); c != 0 {
				return c
			}
			return cmp.Compare(a.node.ID, b.node.ID)
		})
		var count int
		for _, o := range occs[1:] {
			var newName string
			for {
				count++
				newName = name + glue + strconv.Itoa(count)
				if _, ok := used[newName]; !ok {
					break
				}
			}
			used[newName] = struct{}{}
			o.node.BackfillNames[o.idx] = newName
		}
	}

	for _, v := range root.NonTips() {
		v.Name = strings.Join(v.BackfillNames, NameSep)
	}
}
