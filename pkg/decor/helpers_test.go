package decor_test

import (
	"testing"

	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/stretchr/testify/require"
)

// nd builds a node with children.
func nd(name string, children ...*phylo.Node) *phylo.Node {
	res := phylo.New(name)
	for _, c := range children {
		res.AddChild(c)
	}
	return res
}

func sevenRanks(t *testing.T) *rank.Schema {
	s, err := rank.New([]string{"k", "p", "c", "o", "f", "g", "s"})
	require.Nil(t, err)
	return s
}

func newMap(rows map[string][]string) *consmap.Map {
	res := consmap.NewMap()
	for id, names := range rows {
		res.Add(id, names)
	}
	return res
}

// lettersTree is ((a,b)c,(d,(e,f)g)h,(i,j)k)l
func lettersTree() *phylo.Node {
	return nd("l",
		nd("c", nd("a"), nd("b")),
		nd("h", nd("d"), nd("g", nd("e"), nd("f"))),
		nd("k", nd("i"), nd("j")),
	)
}

// totalsFrom converts rank-indexed counts into a rank-length slice.
func totalsFrom(n int, counts map[int]map[string]int) []map[string]int {
	res := make([]map[string]int, n)
	for i := range res {
		res[i] = make(map[string]int)
		for k, v := range counts[i] {
			res[i][k] = v
		}
	}
	return res
}

func empty(n int) []string {
	return make([]string, n)
}

func withAt(n int, vals map[int]string) []string {
	res := make([]string, n)
	for k, v := range vals {
		res[k] = v
	}
	return res
}
