package consmap

import (
	"fmt"
	"strings"

	"github.com/gnames/gnt2t/pkg/rank"
)

// RankStats summarizes one rank of a consensus map.
type RankStats struct {
	Rank         string `json:"rank"`
	Classified   int    `json:"classified"`
	Unclassified int    `json:"unclassified"`
	Names        int    `json:"names"`
}

// Stats counts classified tips and distinct names at every rank. A tip is
// classified at a rank when it has a name there that is not a
// placeholder. Names are compared case-insensitively.
func Stats(s *rank.Schema, m *Map) []RankStats {
	res := make([]RankStats, s.Len())
	names := make([]map[string]struct{}, s.Len())
	for i := range res {
		res[i].Rank = s.Code(i)
		names[i] = make(map[string]struct{})
	}

	for _, row := range m.Rows() {
		for i := range res {
			var name string
			if i < len(row.Names) {
				name = row.Names[i]
			}
			if name == "" || rank.IsPlaceholder(name) {
				res[i].Unclassified++
				continue
			}
			res[i].Classified++
			names[i][strings.ToLower(name)] = struct{}{}
		}
	}

	for i := range res {
		res[i].Names = len(names[i])
	}
	return res
}

// FormatStats renders stats as tab-separated lines with a header.
func FormatStats(stats []RankStats) []string {
	res := []string{"Rank\tClassified\tUnclassified\tNames"}
	for _, v := range stats {
		res = append(res, fmt.Sprintf("%s\t%d\t%d\t%d",
			v.Rank, v.Classified, v.Unclassified, v.Names))
	}
	return res
}
