package decor

import (
	"slices"
	"strconv"
	"strings"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// TipLineage is a rank-ordered classification of a tip taken from the
// names of its ancestors.
type TipLineage struct {
	ID    string
	Names []string
}

// FormatLine renders the lineage as 'id<TAB>name1; name2; ...'.
func FormatLine(l TipLineage) string {
	return l.ID + "\t" + strings.Join(l.Names, NameSep)
}

// ConsensusStrings collects lineages of all tips from the rank-prefixed
// names of their ancestors. Ancestors are read from the root down, so a
// deeper name replaces a shallower one at the same rank. Ranks without
// names are filled with placeholders, or left empty when appendPrefix is
// false. A name without a known rank prefix is an error.
func ConsensusStrings(
	s *rank.Schema,
	root *phylo.Node,
	appendPrefix bool,
) ([]TipLineage, error) {
	var res []TipLineage
	for _, tip := range root.Tips() {
		names := make([]string, s.Len())
		if appendPrefix {
			names = s.Placeholders()
		}

		var labels []string
		anc := tip.Ancestors()
		slices.Reverse(anc)
		for _, v := range anc {
			for _, name := range labelNames(v.Name) {
				labels = append(labels, name)
				r, ok := s.RankOf(name)
				if !ok || !rank.HasPrefix(name) {
					return nil, UnknownRankError(name, tip.Name, labels)
				}
				names[r] = name
			}
		}
		res = append(res, TipLineage{ID: tip.Name, Names: names})
	}
	return res, nil
}

// UnknownRanks returns an error for every name of internal nodes that
// has no known rank prefix. It allows reporting all such names at once,
// while ConsensusStrings stops at the first one.
func UnknownRanks(s *rank.Schema, root *phylo.Node) []error {
	var res []error
	for _, v := range root.NonTips() {
		for _, name := range labelNames(v.Name) {
			if _, ok := s.RankOf(name); ok && rank.HasPrefix(name) {
				continue
			}
			var lineage []string
			anc := append([]*phylo.Node{v}, v.Ancestors()...)
			slices.Reverse(anc)
			for _, a := range anc {
				lineage = append(lineage, labelNames(a.Name)...)
			}
			res = append(res, UnknownRankError(name, v.Tips()[0].Name, lineage))
		}
	}
	return res
}

// ValidatePaths returns tips whose ancestor names do not have strictly
// decreasing ranks from the tip to the root. Names with unknown rank
// prefixes make the path invalid as well.
func ValidatePaths(s *rank.Schema, root *phylo.Node) []*phylo.Node {
	var res []*phylo.Node
	for _, tip := range root.Tips() {
		if !validPath(s, tip) {
			res = append(res, tip)
		}
	}
	return res
}

func validPath(s *rank.Schema, tip *phylo.Node) bool {
	prev := s.Len()
	for _, v := range tip.Ancestors() {
		names := labelNames(v.Name)
		slices.Reverse(names)
		for _, name := range names {
			r, ok := s.RankOf(name)
			if !ok || r >= prev {
				return false
			}
			prev = r
		}
	}
	return true
}

// SaveBootstraps puts support values back into display names of internal
// nodes as 'support:name', or as a bare support for unnamed nodes.
func SaveBootstraps(root *phylo.Node) {
	for _, v := range root.NonTips() {
		if v.Bootstrap == nil {
			continue
		}
		b := strconv.FormatFloat(*v.Bootstrap, 'f', -1, 64)
		if v.Name == "" {
			v.Name = b
			continue
		}
		v.Name = b + ":" + v.Name
	}
}

// labelNames splits a display label into names, dropping a support value.
func labelNames(label string) []string {
	label = StripSupport(label)
	if label == "" || IsSupport(label) {
		return nil
	}
	var res []string
	for _, v := range strings.Split(label, ";") {
		v = strings.TrimSpace(v)
		if v != "" {
			res = append(res, v)
		}
	}
	return res
}

// StripSupport removes a leading 'support:' part from a label.
func StripSupport(label string) string {
	label = strings.TrimSpace(label)
	before, after, ok := strings.Cut(label, ":")
	if ok && IsSupport(before) {
		return strings.TrimSpace(after)
	}
	return label
}

// IsSupport is true for labels that are numbers.
func IsSupport(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
