package ionewick_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/internal/ionewick"
	"github.com/gnames/gnt2t/pkg/errcode"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	root, err := ionewick.Parse(strings.NewReader(
		"((a:1,b:2.5)95:0.5,(c,d)g__G:1,e)root;",
	))
	require.Nil(t, err)

	assert.Equal(t, "root", root.Name)
	assert.Nil(t, root.Length)
	require.Len(t, root.Children, 3)

	ab := root.Children[0]
	assert.Equal(t, "95", ab.Name)
	require.NotNil(t, ab.Length)
	assert.InDelta(t, 0.5, *ab.Length, 1e-9)
	assert.Equal(t, root, ab.Parent())

	var names []string
	for _, v := range root.Tips() {
		names = append(names, v.Name)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)
	assert.InDelta(t, 2.5, *ab.Children[1].Length, 1e-9)
	assert.Equal(t, "g__G", root.Children[1].Name)
	assert.Nil(t, root.Children[1].Children[0].Length)
}

func TestFormat(t *testing.T) {
	l1, l2 := 1.0, 0.25
	a := phylo.New("a")
	a.Length = &l1
	n := phylo.New("95:g__G1")
	n.Length = &l2
	n.AddChild(a)
	n.AddChild(phylo.New("s__Homo sapiens"))
	root := phylo.New("")
	root.AddChild(n)
	root.AddChild(phylo.New("it's"))

	assert.Equal(t,
		"((a:1,'s__Homo sapiens')'95:g__G1':0.25,'it''s');",
		ionewick.Format(root))
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"g__Bacillus", "g__Bacillus"},
		{"95", "95"},
		{"", ""},
		{"f__A; g__B", "'f__A; g__B'"},
		{"a,b", "'a,b'"},
		{"it's", "'it''s'"},
	}
	for _, v := range tests {
		assert.Equal(t, v.out, ionewick.Quote(v.in), v.in)
	}
}

func TestReadWrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.nwk")
	out := filepath.Join(dir, "out.nwk")
	src := "((a:1,b:2)90:0.5,(c:1,d:1)g__G:1);"
	require.Nil(t, os.WriteFile(in, []byte(src+"\n"), 0644))

	root, err := ionewick.Read(in)
	require.Nil(t, err)
	require.Nil(t, ionewick.Write(out, root))

	data, err := os.ReadFile(out)
	require.Nil(t, err)
	assert.Equal(t, src+"\n", string(data))

	_, err = ionewick.Read(filepath.Join(dir, "none.nwk"))
	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.NewickParseError, gnErr.Code)
}

func TestParseQuoted(t *testing.T) {
	src := "((a,'s__Homo sapiens')'95:g__G1':0.25,'it''s');"
	root, err := ionewick.Parse(strings.NewReader(src))
	require.Nil(t, err)

	require.Len(t, root.Children, 2)
	assert.Equal(t, "95:g__G1", root.Children[0].Name)
	assert.Equal(t, "s__Homo sapiens", root.Children[0].Children[1].Name)
	assert.Equal(t, "it's", root.Children[1].Name)
	assert.Equal(t, src, ionewick.Format(root))
}
