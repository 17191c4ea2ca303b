package decor_test

import (
	"testing"

	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/stretchr/testify/assert"
)

func prepare(
	s *rank.Schema,
	root *phylo.Node,
	rows map[string][]string,
	totals []map[string]int,
) {
	decor.BuildTree(s, root, newMap(rows))
	decor.DecorateCounts(s, root)
	decor.DecorateFreqs(s, root, totals, 1)
	decor.SetRankSafe(s, root)
}

func TestSetRankSafe(t *testing.T) {
	s := sevenRanks(t)
	root := lettersTree()
	rows := map[string][]string{
		"a": {"1", "2", "3", "4", "5", "6", "7"},
		"b": {"1", "2", "3", "b", "5", "6", "8"},
		"d": {"1", "2", "3", "4", "5", "6", "8"},
		"e": {"1", "2", "3", "b", "a", "6", "7"},
		"i": {"1", "2", "3", "4", "a", "6", "7"},
		"j": {"1", "2", "3", "b", "a", "6", "8"},
	}
	totals := totalsFrom(7, map[int]map[string]int{
		0: {"1": 10, "foo": 5},
		1: {"2": 20},
		2: {"3": 10},
		3: {"4": 4, "b": 5},
		4: {"5": 7, "a": 5},
		5: {"6": 6},
		6: {"7": 3, "8": 3},
	})
	prepare(s, root, rows, totals)

	assert.Equal(t,
		[]bool{true, false, true, false, true, true, false}, root.RankSafe)
	for _, tip := range root.Tips() {
		assert.Equal(t, make([]bool, 7), tip.RankSafe)
	}
}

func TestPickNames(t *testing.T) {
	s := sevenRanks(t)
	root := lettersTree()
	rows := map[string][]string{
		"a": {"1", "2", "3", "4", "5", "6", "7"},
		"b": {"1", "2", "3", "b", "5", "6", "8"},
		"d": {"1", "2", "3", "4", "5", "6", "7"},
		"e": {"1", "2", "3", "b", "a", "foo", "7"},
		"i": {"1", "2", "3", "4", "a", "foo", "8"},
		"j": {"1", "2", "3", "b", "a", "foo", "8"},
	}
	totals := totalsFrom(7, map[int]map[string]int{
		0: {"1": 10, "foo": 5},
		1: {"2": 10},
		2: {"3": 10},
		3: {"4": 4, "b": 5},
		4: {"5": 7, "a": 5},
		5: {"6": 3, "foo": 3},
		6: {"7": 3, "8": 4},
	})
	prepare(s, root, rows, totals)
	decor.PickNames(s, root)

	tests := []struct {
		msg  string
		node *phylo.Node
		exp  []string
	}{
		{"root", root, withAt(7, map[int]string{0: "1", 1: "2", 2: "3"})},
		{"c", root.Children[0], withAt(7, map[int]string{5: "6"})},
		{"h", root.Children[1], withAt(7, map[int]string{6: "7"})},
		{"k", root.Children[2], withAt(7, map[int]string{5: "foo", 6: "8"})},
		{"g", root.Children[1].Children[1], empty(7)},
	}
	for _, v := range tests {
		assert.Equal(t, v.exp, v.node.RankNames, v.msg)
	}
}

func TestPickNamesTwoRanks(t *testing.T) {
	s, err := rank.New([]string{"a", "b"})
	assert.Nil(t, err)
	ab := nd("", nd("a"), nd("b"))
	root := nd("", ab, nd("c"))
	m := newMap(map[string][]string{
		"a": {"X", "1"},
		"b": {"X", "1"},
		"c": {"X", "2"},
	})
	decor.BuildTree(s, root, m)
	totals := decor.CollectCounts(s, root)
	decor.DecorateCounts(s, root)
	decor.DecorateFreqs(s, root, totals, 1)
	decor.SetRankSafe(s, root)
	decor.PickNames(s, root)

	assert.Equal(t, []bool{true, false}, root.RankSafe)
	assert.Equal(t, []string{"X", ""}, root.RankNames)
	assert.Equal(t, []string{"X", "1"}, ab.RankNames)

	decor.Fold(s, root, decor.F1)
	assert.Equal(t, []string{"X", ""}, root.RankNames)
	assert.Equal(t, []string{"", "1"}, ab.RankNames)
}
