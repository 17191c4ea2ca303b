package decor_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// consensusTrie is (((s1,s2)g1,(s3,s4)g2,(s5,s6)g3)f1)o1 at ranks o..s.
func consensusTrie(s *rank.Schema) *taxtrie.Trie {
	lin := func(g, sp string) []string {
		return []string{"", "", "", "o1", "f1", g, sp}
	}
	return taxtrie.New(s, [][]string{
		lin("g1", "s1"), lin("g1", "s2"),
		lin("g2", "s3"), lin("g2", "s4"),
		lin("g3", "s5"), lin("g3", "s6"),
	})
}

type gappedTree struct {
	root               *phylo.Node
	c0, c0c0, c0c1     *phylo.Node
	s1, s2, s3, s5     *phylo.Node
}

// newGappedTree is ((((1)s1,(2)s2),((3)s3,(4)s5)))o1 with preliminary
// names and ranks set.
func newGappedTree() gappedTree {
	var res gappedTree
	species := func(name, tip string) *phylo.Node {
		n := nd(name, nd(tip))
		n.Rank = 6
		return n
	}
	res.s1 = species("s1", "1")
	res.s2 = species("s2", "2")
	res.s3 = species("s3", "3")
	res.s5 = species("s5", "4")
	res.c0c0 = nd("", res.s1, res.s2)
	res.c0c1 = nd("", res.s3, res.s5)
	res.c0 = nd("", res.c0c0, res.c0c1)
	res.root = nd("o1", res.c0)
	res.root.Rank = 3
	return res
}

func TestBackfill(t *testing.T) {
	s := sevenRanks(t)
	tr := newGappedTree()

	err := decor.Backfill(tr.root, consensusTrie(s))
	require.Nil(t, err)

	tests := []struct {
		msg  string
		node *phylo.Node
		exp  []string
	}{
		{"root", tr.root, []string{"o1"}},
		{"c0", tr.c0, nil},
		{"c0c0", tr.c0c0, nil},
		{"c0c1", tr.c0c1, nil},
		{"s1", tr.s1, []string{"f1", "g1", "s1"}},
		{"s2", tr.s2, []string{"f1", "g1", "s2"}},
		{"s3", tr.s3, []string{"f1", "g2", "s3"}},
		{"s5", tr.s5, []string{"f1", "g3", "s5"}},
	}
	for _, v := range tests {
		assert.Equal(t, v.exp, v.node.BackfillNames, v.msg)
	}
}

func TestBackfillEdgeCases(t *testing.T) {
	s := sevenRanks(t)

	t.Run("trie gap gives placeholder", func(t *testing.T) {
		trie := taxtrie.New(s, [][]string{
			{"k__A", "p__B", "", "", "f__F", "g__G", ""},
		})
		g := nd("g__G", nd("x"), nd("y"))
		g.Rank = 5
		root := nd("p__B", g, nd("z"))
		root.Rank = 1

		err := decor.Backfill(root, trie)
		require.Nil(t, err)
		assert.Equal(t, []string{"c__", "o__", "f__F", "g__G"}, g.BackfillNames)
	})

	t.Run("ancestor at the same rank clears names", func(t *testing.T) {
		trie := taxtrie.New(s, [][]string{
			{"k__A", "p__B", "c__C", "o__O", "f__F", "g__G", ""},
		})
		g := nd("g__G", nd("x"), nd("y"))
		g.Rank = 5
		root := nd("g__H", g, nd("z"))
		root.Rank = 5

		err := decor.Backfill(root, trie)
		require.Nil(t, err)
		assert.Empty(t, g.BackfillNames)
		assert.Equal(t, []string{"g__H"}, root.BackfillNames)
	})

	t.Run("no named ancestor", func(t *testing.T) {
		trie := taxtrie.New(s, [][]string{
			{"k__A", "p__B", "c__C", "o__O", "f__F", "g__G", ""},
		})
		g := nd("g__G", nd("x"), nd("y"))
		g.Rank = 5
		root := nd("", g, nd("z"))

		err := decor.Backfill(root, trie)
		require.Nil(t, err)
		assert.Equal(t,
			[]string{"k__A", "p__B", "c__C", "o__O", "f__F", "g__G"},
			g.BackfillNames)
		assert.Empty(t, root.BackfillNames)
	})

	t.Run("named root gets ranks above it", func(t *testing.T) {
		trie := taxtrie.New(s, [][]string{
			{"", "", "c__C", "", "f__F", "g__G", ""},
		})
		g := nd("g__G", nd("x"), nd("y"))
		g.Rank = 5
		root := nd("f__F", g, nd("z"))
		root.Rank = 4

		err := decor.Backfill(root, trie)
		require.Nil(t, err)
		assert.Equal(t, []string{"c__C", "o__", "f__F"}, root.BackfillNames,
			"leading gaps are dropped, inner gaps are kept")
		assert.Equal(t, []string{"g__G"}, g.BackfillNames)
	})

	t.Run("name missing from trie", func(t *testing.T) {
		trie := taxtrie.New(s, [][]string{
			{"k__A", "p__B", "c__C", "o__O", "f__F", "g__G", ""},
		})
		g := nd("g__Missing", nd("x"), nd("y"))
		g.Rank = 5
		root := nd("k__A", g, nd("z"))
		root.Rank = 0

		err := decor.Backfill(root, trie)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.ErrorIs(t, gnErr.Err, taxtrie.ErrLookup)
	})
}

func TestPromote(t *testing.T) {
	s := sevenRanks(t)
	tr := newGappedTree()
	require.Nil(t, decor.Backfill(tr.root, consensusTrie(s)))

	decor.Promote(tr.root)

	tests := []struct {
		msg  string
		node *phylo.Node
		name string
	}{
		{"root", tr.root, "o1; f1"},
		{"c0", tr.c0, ""},
		{"c0c0", tr.c0c0, "g1"},
		{"c0c1", tr.c0c1, ""},
		{"s1", tr.s1, "s1"},
		{"s2", tr.s2, "s2"},
		{"s3", tr.s3, "g2; s3"},
		{"s5", tr.s5, "g3; s5"},
	}
	for _, v := range tests {
		assert.Equal(t, v.name, v.node.Name, v.msg)
	}
}

func TestPolyphyleticUnique(t *testing.T) {
	tests := []struct {
		msg   string
		names []string
		exp   []string
	}{
		{"single", []string{"A", "A"}, []string{"A"}},
		{"tagged variant wins", []string{"Genus", "Genus_A"}, []string{"Genus_A"}},
		{"prefixed", []string{"g__Bacillus_A", "g__Bacillus", "g__Bacillus"},
			[]string{"g__Bacillus_A"}},
		{"different", []string{"B", "A"}, []string{"A", "B"}},
		{"two tags", []string{"Genus_A", "Genus_B"}, []string{"Genus_A", "Genus_B"}},
		{"not a tag", []string{"Genus", "Genusx_A"}, []string{"Genus", "Genusx_A"}},
		{"lowercase suffix", []string{"Genus", "Genus_a"}, []string{"Genus", "Genus_a"}},
		{"three", []string{"Genus", "Genus_A", "Other"},
			[]string{"Genus", "Genus_A", "Other"}},
		{"empty", nil, []string{}},
	}
	for _, v := range tests {
		res := decor.PolyphyleticUnique(v.names)
		assert.ElementsMatch(t, v.exp, res, v.msg)
	}
}
