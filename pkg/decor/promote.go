package decor

import (
	"regexp"
	"slices"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
)

// NameSep joins several names in a display label.
const NameSep = "; "

// polyRe matches names with a polyphyletic tag, like 'Bacillus_A'.
var polyRe = regexp.MustCompile(`^(.*[^_])_[A-Z]+$`)

// PolyphyleticUnique returns sorted distinct names. When there are exactly
// two of them and one is the polyphyletic-tagged variant of the other,
// only the tagged variant is returned, so 'Bacillus' and 'Bacillus_A'
// collapse to 'Bacillus_A'.
func PolyphyleticUnique(names []string) []string {
	res := slices.Clone(names)
	slices.Sort(res)
	res = slices.Compact(res)
	if len(res) != 2 {
		return res
	}

	short, long := res[0], res[1]
	if len(short) > len(long) {
		short, long = long, short
	}
	m := polyRe.FindStringSubmatch(long)
	if m != nil && m[1] == short {
		return []string{long}
	}
	return res
}

// Promote moves names shared by all nearest named descendants of a node
// onto the node itself. Nodes are processed from the root down, so a
// name can travel several levels up. Afterwards display names are set
// from BackfillNames.
func Promote(root *phylo.Node) {
	for _, v := range root.NonTips() {
		desc := namedDescendants(v)
		if len(desc) == 0 {
			continue
		}

		first := make([]string, len(desc))
		for {
			for i, d := range desc {
				first[i] = d.BackfillNames[0]
			}
			uniq := PolyphyleticUnique(first)
			if len(uniq) != 1 {
				break
			}

			v.BackfillNames = append(v.BackfillNames, uniq[0])
			var done bool
			for _, d := range desc {
				d.BackfillNames = d.BackfillNames[1:]
				if len(d.BackfillNames) <= 1 {
					done = true
				}
			}
			if done {
				break
			}
		}
	}

	for _, v := range root.NonTips() {
		v.Name = strings.Join(v.BackfillNames, NameSep)
	}
}

// namedDescendants returns the nearest internal descendants with
// non-empty BackfillNames.
func namedDescendants(n *phylo.Node) []*phylo.Node {
	var res []*phylo.Node
	queue := internalChildren(n)
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if len(cur.BackfillNames) == 0 {
			queue = append(queue, internalChildren(cur)...)
			continue
		}
		res = append(res, cur)
	}
	return res
}

func internalChildren(n *phylo.Node) []*phylo.Node {
	var res []*phylo.Node
	for _, c := range n.Children {
		if !c.IsTip() {
			res = append(res, c)
		}
	}
	return res
}
