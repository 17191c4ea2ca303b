package taxtrie_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lineages = [][]string{
	{"a", "b", "c", "d", "e", "f", "g"},
	{"a", "b", "c", "", "", "x", "y"},
	{"h", "i", "j", "k", "l", "m", "n"},
	{"h", "i", "j", "k", "l", "m", "q"},
	{"h", "i", "j", "k", "l", "m", "n"},
}

func TestNew(t *testing.T) {
	tr := taxtrie.New(rank.Default(), lineages)
	root := tr.Root()
	assert.Equal(t, -1, root.Rank)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "a", root.Children[0].Name)
	assert.Equal(t, "h", root.Children[1].Name)

	c, ok := tr.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, 2, c.Rank)
	require.Len(t, c.Children, 2)
	assert.Equal(t, "d", c.Children[0].Name)
	assert.Equal(t, "", c.Children[1].Name, "gap is kept as unnamed node")

	m, ok := tr.Lookup("m")
	require.True(t, ok)
	require.Len(t, m.Children, 2, "shared prefixes are reused")

	_, ok = tr.Lookup("")
	assert.False(t, ok)
	assert.Len(t, tr.Nodes(), 19)
}

func TestWalk(t *testing.T) {
	tr := taxtrie.New(rank.Default(), lineages)
	tests := []struct {
		name   string
		levels int
		exp    []string
	}{
		{"n", 3, []string{"l", "m", "n"}},
		{"a", 3, []string{"a"}},
		{"x", 4, []string{"c", "o__", "f__", "x"}},
		{"y", 1, []string{"y"}},
	}

	for _, v := range tests {
		res, err := tr.Walk(v.name, v.levels)
		require.NoError(t, err, v.name)
		assert.Equal(t, v.exp, res, v.name)
	}

	_, err := tr.Walk("zz", 2)
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.ErrorIs(t, gnErr.Err, taxtrie.ErrLookup)
}

func TestPlaceholders(t *testing.T) {
	lins := [][]string{
		{"d__B", "p__F", "c__", "o__X"},
	}
	s, err := rank.New([]string{"d", "p", "c", "o"})
	require.NoError(t, err)

	tr := taxtrie.New(s, lins)
	_, ok := tr.Lookup("c__")
	assert.False(t, ok)
	res, err := tr.Walk("o__X", 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"p__F", "c__", "o__X"}, res)

	tr = taxtrie.New(s, lins, taxtrie.OptKeepPlaceholders(true))
	_, ok = tr.Lookup("c__")
	assert.True(t, ok)
}

func TestTips(t *testing.T) {
	ids := []string{"1", "2", "3", "4", "5"}
	tr := taxtrie.New(rank.Default(), lineages, taxtrie.OptTips(ids))

	n, ok := tr.Lookup("n")
	require.True(t, ok)
	assert.Equal(t, []string{"3", "5"}, n.Tips)

	h, ok := tr.Lookup("h")
	require.True(t, ok)
	assert.Equal(t, "3", h.FirstTip())

	c, ok := tr.Lookup("c")
	require.True(t, ok)
	assert.Equal(t, "1", c.FirstTip())
}
