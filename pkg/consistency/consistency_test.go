package consistency_test

import (
	"bytes"
	"testing"

	"github.com/gnames/gnt2t/pkg/consistency"
	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	lachno = "f__Lachnospiraceae"
	bact   = "g__Bacteroides"
	lachna = "g__Lachnospira"
	pectin = "s__Bacteroides pectinophilus"
	acidi  = "s__Bacteroides acidifaciens"
)

func nd(name string, children ...*phylo.Node) *phylo.Node {
	res := phylo.New(name)
	for _, c := range children {
		res.AddChild(c)
	}
	return res
}

func prepare(
	t *testing.T,
	root *phylo.Node,
	rows map[string][]string,
) (*rank.Schema, []map[string]int) {
	s, err := rank.New([]string{"f", "g", "s"})
	require.Nil(t, err)
	m := consmap.NewMap()
	for k, v := range rows {
		m.Add(k, v)
	}
	decor.BuildTree(s, root, m)
	totals := decor.CollectCounts(s, root)
	decor.DecorateCounts(s, root)
	return s, totals
}

func byTaxon(rows []consistency.Row) map[string]float64 {
	res := make(map[string]float64)
	for _, v := range rows {
		res[v.Taxon] = v.Consistency
	}
	return res
}

func TestCalculateMissing(t *testing.T) {
	root := nd("",
		nd("", nd("", nd("a"), nd("b")), nd("", nd("c"), nd("d"))),
		nd("", nd("", nd("e"), nd("f")), nd("", nd("g"), nd("h"))),
	)
	s, totals := prepare(t, root, map[string][]string{
		"a": {lachno, bact, ""},
		"b": {lachno, bact, ""},
		"c": {lachno, bact, pectin},
		"d": {lachno, bact, pectin},
		"e": {"", "", ""},
		"f": {lachno, lachna, ""},
		"g": {"", "", ""},
		"h": {lachno, lachna, pectin},
	})

	for _, rooted := range []bool{true, false} {
		res := byTaxon(consistency.Calculate(s, root, totals, rooted))
		for _, name := range []string{lachno, bact, lachna, pectin} {
			assert.InDelta(t, 1.0, res[name], 1e-6, "%s rooted=%v", name, rooted)
		}
	}
}

func TestCalculateUnrooted(t *testing.T) {
	root := nd("",
		nd("", nd("a"), nd("b")),
		nd("", nd("c"), nd("", nd("d"), nd("e"))),
	)
	s, totals := prepare(t, root, map[string][]string{
		"a": {lachno, bact, pectin},
		"b": {lachno, bact, pectin},
		"c": {lachno, bact, pectin},
		"d": {lachno, bact, acidi},
		"e": {lachno, bact, acidi},
	})

	tests := []struct {
		msg    string
		rooted bool
		taxon  string
		exp    float64
	}{
		{"family rooted", true, lachno, 1.0},
		{"genus rooted", true, bact, 1.0},
		{"pectinophilus rooted", true, pectin, 2.0 / 3},
		{"acidifaciens rooted", true, acidi, 1.0},
		{"family unrooted", false, lachno, 1.0},
		{"genus unrooted", false, bact, 1.0},
		{"pectinophilus unrooted", false, pectin, 1.0},
		{"acidifaciens unrooted", false, acidi, 1.0},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			res := byTaxon(consistency.Calculate(s, root, totals, v.rooted))
			assert.InDelta(t, v.exp, res[v.taxon], 1e-6)
		})
	}
}

func TestWrite(t *testing.T) {
	root := nd("", nd("", nd("a"), nd("b")), nd("c"))
	s, totals := prepare(t, root, map[string][]string{
		"a": {lachno, bact, ""},
		"b": {lachno, bact, ""},
		"c": {lachno, lachna, ""},
	})
	rows := consistency.Calculate(s, root, totals, true)
	require.Len(t, rows, 3)
	assert.Equal(t, "f", rows[0].Rank)
	assert.Equal(t, bact, rows[1].Taxon, "sorted by rank, then name")
	assert.Equal(t, lachna, rows[2].Taxon)

	var buf bytes.Buffer
	err := consistency.Write(&buf, rows)
	require.Nil(t, err)
	exp := "Taxon\tCount\tConsistency\n" +
		lachno + "\t3\t1.000\n" +
		bact + "\t2\t1.000\n" +
		lachna + "\t1\t1.000\n"
	assert.Equal(t, exp, buf.String())
}
