package tipindex_test

import (
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/tipindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nd(name string, children ...*phylo.Node) *phylo.Node {
	res := phylo.New(name)
	for _, c := range children {
		res.AddChild(c)
	}
	return res
}

func TestClades(t *testing.T) {
	// ((a,b)c,(d,e)f,(g,h))root with a support-only label
	root := nd("root",
		nd("c", nd("b"), nd("a")),
		nd("95:f", nd("d"), nd("e")),
		nd("0.9", nd("g"), nd("h")),
	)
	res := tipindex.Clades(root)
	exp := []tipindex.Clade{
		{Name: "root", Tips: []string{"a", "b", "d", "e", "g", "h"}},
		{Name: "c", Tips: []string{"a", "b"}},
		{Name: "f", Tips: []string{"d", "e"}},
	}
	assert.Equal(t, exp, res)

	idx, err := tipindex.Index(res)
	require.Nil(t, err)
	assert.Equal(t, "c", idx["a,b"])
	assert.Equal(t, "f", idx["d,e"])
	assert.Len(t, idx, 3)
}

func TestIndexErrors(t *testing.T) {
	t.Run("same tips", func(t *testing.T) {
		root := nd("", nd("outer", nd("inner", nd("a"), nd("b"))), nd("c"))
		_, err := tipindex.Index(tipindex.Clades(root))
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.ErrorIs(t, gnErr.Err, tipindex.ErrNonUnique)
	})

	t.Run("no name in clades built by hand", func(t *testing.T) {
		clades := []tipindex.Clade{{Tips: []string{"a"}}}
		_, err := tipindex.Index(clades)
		gnErr, ok := err.(*gn.Error)
		require.True(t, ok)
		assert.ErrorIs(t, gnErr.Err, tipindex.ErrUnnamed)
	})
}
