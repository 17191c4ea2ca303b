// Package archive defines how decoration runs are stored and converts
// decoration results into archive records.
package archive

import (
	"context"
	"database/sql"
	"slices"
	"strings"

	"github.com/gnames/gnt2t/pkg/consistency"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/schema"
	"github.com/gnames/gnuuid"
)

// Archiver saves decoration runs to persistent storage.
// Implementations are in internal/iostore.
type Archiver interface {
	// Save stores all records of a run in one transaction. Tables are
	// created when they do not exist yet.
	Save(ctx context.Context, a *schema.Archive) error

	// Close releases the storage connection.
	Close() error
}

// RunInfo describes the inputs and settings of a run.
type RunInfo struct {
	ID        string
	StartedAt string
	Version   string
	TreePath  string
	MapPath   string
	Ranks     []string
	ScoreName string
	MinCount  int
}

// Build converts a decorated tree and its result into archive records.
// Node names are stored without support values.
func Build(
	info RunInfo,
	root *phylo.Node,
	res *decor.Result,
	rows []consistency.Row,
) *schema.Archive {
	run := schema.Run{
		ID:            info.ID,
		StartedAt:     info.StartedAt,
		Version:       info.Version,
		TreePath:      info.TreePath,
		MapPath:       info.MapPath,
		Ranks:         strings.Join(info.Ranks, ","),
		ScoreName:     info.ScoreName,
		MinCount:      info.MinCount,
		Score:         res.Score,
		TipsNum:       len(res.Lineages),
		NamedNodesNum: res.NamedNodes,
		BadTipsNum:    len(res.BadTips),
	}
	a := &schema.Archive{Run: run}

	for _, v := range root.NonTips() {
		name := decor.StripSupport(v.Name)
		if decor.IsSupport(name) {
			name = ""
		}
		if name == "" {
			continue
		}
		node := schema.NodeName{
			RunID:    info.ID,
			NodeID:   v.ID,
			Name:     name,
			NameID:   gnuuid.New(name).String(),
			Rank:     nameRank(info.Ranks, name),
			TipStart: v.TipStart,
			TipStop:  v.TipStop,
		}
		if v.Bootstrap != nil {
			node.Bootstrap = sql.NullFloat64{Float64: *v.Bootstrap, Valid: true}
		}
		a.Nodes = append(a.Nodes, node)
	}

	bad := make(map[string]struct{}, len(res.BadTips))
	for _, v := range res.BadTips {
		bad[v] = struct{}{}
	}
	for _, v := range res.Lineages {
		_, isBad := bad[v.ID]
		a.Lineages = append(a.Lineages, schema.TipLineage{
			RunID:   info.ID,
			TipID:   v.ID,
			Lineage: strings.Join(v.Names, decor.NameSep),
			Valid:   !isBad,
		})
	}

	for _, v := range rows {
		a.Consistency = append(a.Consistency, schema.TaxonConsistency{
			RunID:       info.ID,
			Rank:        v.Rank,
			Taxon:       v.Taxon,
			TaxonID:     gnuuid.New(v.Taxon).String(),
			Count:       v.Count,
			Consistency: v.Consistency,
		})
	}
	return a
}

// nameRank returns the index of the rank of the deepest name of a label,
// or -1 when its prefix is not one of the ranks.
func nameRank(ranks []string, label string) int {
	names := strings.Split(label, ";")
	last := strings.TrimSpace(names[len(names)-1])
	if !rank.HasPrefix(last) {
		return -1
	}
	return slices.Index(ranks, last[:1])
}
