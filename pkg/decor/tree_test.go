package decor_test

import (
	"testing"

	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	s := sevenRanks(t)
	root := nd("",
		nd("95", nd("'a'"), nd("b")),
		nd("x", nd("c")),
	)
	m := newMap(map[string][]string{
		"a": {"k__A", "p__", "", "", "", "", ""},
		"c": {"k__A", "p__B", "", "", "", "", ""},
	})
	decor.BuildTree(s, root, m)

	tips := root.Tips()
	require.Len(t, tips, 3)
	assert.Equal(t, "a", tips[0].Name)

	for i, tip := range tips {
		assert.Equal(t, i, tip.TipStart)
		assert.Equal(t, i, tip.TipStop)
		assert.Len(t, tip.Consensus, s.Len())
	}
	assert.Equal(t, withAt(7, map[int]string{0: "k__A"}), tips[0].Consensus,
		"placeholders become absent names")
	assert.Equal(t, empty(7), tips[1].Consensus, "missing tip is uninformative")

	assert.Equal(t, 0, root.TipStart)
	assert.Equal(t, 2, root.TipStop)

	boot := root.Children[0]
	assert.Equal(t, "", boot.Name)
	require.NotNil(t, boot.Bootstrap)
	assert.Equal(t, 95.0, *boot.Bootstrap)
	assert.Equal(t, 0, boot.TipStart)
	assert.Equal(t, 1, boot.TipStop)

	named := root.Children[1]
	assert.Equal(t, "x", named.Name)
	assert.Nil(t, named.Bootstrap)

	for i, v := range root.PreOrder() {
		assert.Equal(t, i, v.ID)
		assert.Equal(t, -1, v.Rank)
	}
}

func TestDecorateCounts(t *testing.T) {
	s := sevenRanks(t)
	root := nd("l",
		nd("h",
			nd("c", nd("a"), nd("b")),
			nd("g", nd("d"), nd("e"), nd("f")),
		),
		nd("k", nd("i"), nd("j")),
	)
	full := []string{"1", "2", "3", "4", "5", "6", "8"}
	m := newMap(map[string][]string{
		"a": {"1", "2", "3", "4", "5", "6", "7"},
		"b": withAt(7, map[int]string{3: "5"}),
		"d": full,
		"e": empty(7),
		"f": full,
		"i": full,
		"j": full,
	})
	decor.BuildTree(s, root, m)
	decor.DecorateCounts(s, root)

	t.Run("informative tips", func(t *testing.T) {
		assert.Equal(t, 6, root.NumTips)
		assert.Equal(t, 4, root.Children[0].NumTips)
		assert.Equal(t, 2, root.Children[1].NumTips)
		assert.Equal(t, 2, root.Children[0].Children[0].NumTips)
		assert.Equal(t, 2, root.Children[0].Children[1].NumTips)
	})

	t.Run("tips per rank", func(t *testing.T) {
		assert.Equal(t, []int{5, 5, 5, 6, 5, 5, 5}, root.NumTipsRank)
	})

	t.Run("taxa counts", func(t *testing.T) {
		assert.Equal(t, map[string]int{"4": 5, "5": 1}, root.TaxaCount[3])
		assert.Equal(t, map[string]int{"7": 1, "8": 4}, root.TaxaCount[6])
	})

	t.Run("global counts", func(t *testing.T) {
		totals := decor.CollectCounts(s, root)
		assert.Len(t, totals, s.Len())
		assert.Equal(t, root.TaxaCount, totals)
	})
}

func TestDecorateFreqs(t *testing.T) {
	s := sevenRanks(t)
	root := lettersTree()
	m := newMap(map[string][]string{
		"a": {"1", "2", "3", "4", "5", "6", "7"},
		"b": {"1", "2", "3", "4", "5", "6", "8"},
		"d": {"1", "2", "3", "4", "5", "6", "8"},
		"e": {"1", "2", "3", "4", "a", "6", "7"},
		"i": {"1", "2", "3", "4", "a", "", "7"},
		"j": {"1", "2", "3", "4", "a", "", "8"},
	})
	totals := totalsFrom(7, map[int]map[string]int{
		0: {"1": 10, "foo": 5},
		1: {"2": 6},
		2: {"3": 12},
		3: {"4": 6, "bar": 5},
		4: {"5": 6, "a": 3},
		5: {"6": 6},
		6: {"7": 3, "8": 3},
	})
	decor.BuildTree(s, root, m)
	decor.DecorateCounts(s, root)
	decor.DecorateFreqs(s, root, totals, 1)

	exp := []map[string]float64{
		{"1": 0.6},
		{"2": 1.0},
		{"3": 0.5},
		{"4": 1.0},
		{"5": 0.5, "a": 1.0},
		{"6": 4.0 / 6},
		{"7": 1.0, "8": 1.0},
	}
	require.Len(t, root.Coverage, 7)
	for i := range exp {
		assert.InDeltaMapValues(t, exp[i], root.Coverage[i], 1e-9, "rank %d", i)
	}
	assert.InDelta(t, 0.5, root.Precision[4]["a"], 1e-9)

	t.Run("min count drops rare names", func(t *testing.T) {
		decor.DecorateFreqs(s, root, totals, 4)
		assert.NotContains(t, root.Coverage[4], "a")
		assert.NotContains(t, root.Precision[4], "a")
		assert.Contains(t, root.Coverage[0], "1")
	})

	t.Run("tips have no frequencies", func(t *testing.T) {
		for _, tip := range root.Tips() {
			assert.Nil(t, tip.Coverage)
			assert.Nil(t, tip.Precision)
		}
	})
}
