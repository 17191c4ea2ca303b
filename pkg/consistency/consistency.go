// Package consistency measures how well every taxon of the input
// classification agrees with the topology of a decorated tree.
//
// For a taxon T at a rank, the consistency of a node is
//
//	count(T in node) / (count(T in tree) + incongruent tips in node)
//
// where incongruent tips have a different name at the same rank. The
// consistency of T is the best value over all nodes. For unrooted trees
// the complement of every node is checked as well.
package consistency

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
)

// Row is the consistency of one taxon.
type Row struct {
	Rank        string  `json:"rank"`
	Taxon       string  `json:"taxon"`
	Count       int     `json:"count"`
	Consistency float64 `json:"consistency"`
}

// Calculate returns the consistency of every taxon from totals, sorted by
// rank and then by name. The tree must carry NumTipsRank and TaxaCount.
func Calculate(
	s *rank.Schema,
	root *phylo.Node,
	totals []map[string]int,
	rooted bool,
) []Row {
	n := s.Len()
	informative := root.NumTipsRank

	best := make([]map[string]float64, n)
	for r := range n {
		best[r] = make(map[string]float64)
		for name := range totals[r] {
			best[r][name] = 0
		}
	}

	for _, v := range root.PreOrder() {
		for r := range n {
			for name, total := range totals[r] {
				inNode := v.TaxaCount[r][name]
				incongruent := v.NumTipsRank[r] - inNode
				c := ratio(inNode, total+incongruent)
				if c > best[r][name] {
					best[r][name] = c
				}
				if rooted {
					continue
				}

				outside := total - inNode
				incongruent = informative[r] - v.NumTipsRank[r] - outside
				c = ratio(outside, total+incongruent)
				if c > best[r][name] {
					best[r][name] = c
				}
			}
		}
	}

	var res []Row
	for r := range n {
		for name, c := range best[r] {
			res = append(res, Row{
				Rank:        s.Code(r),
				Taxon:       name,
				Count:       totals[r][name],
				Consistency: c,
			})
		}
	}
	rankIdx := func(code string) int {
		i, _ := s.Index(code[0])
		return i
	}
	slices.SortFunc(res, func(a, b Row) int {
		if c := cmp.Compare(rankIdx(a.Rank), rankIdx(b.Rank)); c != 0 {
			return c
		}
		return cmp.Compare(a.Taxon, b.Taxon)
	})
	return res
}

func ratio(a, b int) float64 {
	if b <= 0 {
		return 0
	}
	return float64(a) / float64(b)
}

// Write outputs rows as a tab-separated table with a header.
func Write(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintln(w, "Taxon\tCount\tConsistency"); err != nil {
		return err
	}
	for _, v := range rows {
		_, err := fmt.Fprintf(w, "%s\t%d\t%.3f\n", v.Taxon, v.Count, v.Consistency)
		if err != nil {
			return err
		}
	}
	return nil
}
