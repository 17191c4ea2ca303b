// Package decor assigns taxonomic names to internal nodes of a
// phylogenetic tree from classifications of its tips.
//
// Decoration is a fixed sequence of passes over the tree. Every pass
// reads fields written by the previous ones and mutates the tree in place:
//
//  1. BuildTree: tip ranges, tip classifications, bootstrap values.
//  2. DecorateCounts, DecorateFreqs: per-name coverage and precision.
//  3. SetRankSafe, PickNames: provisional names at majority ranks.
//  4. Fold: every (rank, name) is kept by one node only.
//  5. SetPreliminaryNames: deepest name becomes the display name.
//  6. Backfill: missing ranks are taken from the taxonomy trie.
//  7. Promote: names shared by all named descendants move up.
//  8. Uniquify: repeated names get numeric suffixes.
//  9. ConsensusStrings, ValidatePaths, SaveBootstraps.
//
// Decorator runs all passes in this order. Optional passes run between
// them: BackfillFromSecondary after Backfill, RecoverPolyphyletic and
// CorrectDecorated before Uniquify, PromoteToMultifurcation and
// CorrectSpeciesBinomials after it.
package decor

import (
	"log/slog"

	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/taxtrie"
)

// Decorator runs the decoration pipeline with a fixed rank schema.
type Decorator struct {
	schema           *rank.Schema
	minCount         int
	score            ScoreFunc
	glue             string
	retainBootstraps bool
	correctBinomials bool
	appendPrefix     bool

	correctDecorated    bool
	recoverPolyphyletic bool
	secondary           *consmap.Map
	fragments           map[string]struct{}
}

// Option configures a Decorator.
type Option func(*Decorator)

// OptMinCount sets the minimal number of tips with a name inside a subtree
// for the name to be considered there.
func OptMinCount(i int) Option {
	return func(d *Decorator) {
		if i > 0 {
			d.minCount = i
		}
	}
}

// OptScore sets the precision and recall combiner.
func OptScore(f ScoreFunc) Option {
	return func(d *Decorator) {
		if f != nil {
			d.score = f
		}
	}
}

// OptSuffixGlue sets the string between a repeated name and its counter.
func OptSuffixGlue(s string) Option {
	return func(d *Decorator) {
		if s != "" {
			d.glue = s
		}
	}
}

// OptRetainBootstraps keeps support values in display names.
func OptRetainBootstraps(b bool) Option {
	return func(d *Decorator) {
		d.retainBootstraps = b
	}
}

// OptCorrectBinomials fixes species names under polyphyletic genera.
func OptCorrectBinomials(b bool) Option {
	return func(d *Decorator) {
		d.correctBinomials = b
	}
}

// OptAppendPrefix fills unnamed ranks of tip lineages with placeholders.
func OptAppendPrefix(b bool) Option {
	return func(d *Decorator) {
		d.appendPrefix = b
	}
}

// OptCorrectDecorated removes names whose decorated lineage disagrees with
// the consensus map.
func OptCorrectDecorated(b bool) Option {
	return func(d *Decorator) {
		d.correctDecorated = b
	}
}

// OptRecoverPolyphyletic takes polyphyletic variants of names from the
// nearest named relatives.
func OptRecoverPolyphyletic(b bool) Option {
	return func(d *Decorator) {
		d.recoverPolyphyletic = b
	}
}

// OptSecondary sets a secondary taxonomy that adds ranks below the
// decorated names of its tips.
func OptSecondary(m *consmap.Map) Option {
	return func(d *Decorator) {
		d.secondary = m
	}
}

// OptFragments sets ids of fragment placements. Names move to parents of
// clades whose only sibling holds fragments.
func OptFragments(ids []string) Option {
	return func(d *Decorator) {
		if len(ids) == 0 {
			d.fragments = nil
			return
		}
		d.fragments = make(map[string]struct{}, len(ids))
		for _, v := range ids {
			d.fragments[v] = struct{}{}
		}
	}
}

// New creates a Decorator. Defaults: minimal count 3, F1 score, '_' glue,
// bootstraps retained, placeholders in lineages.
func New(s *rank.Schema, opts ...Option) *Decorator {
	res := &Decorator{
		schema:           s,
		minCount:         3,
		score:            F1,
		glue:             "_",
		retainBootstraps: true,
		appendPrefix:     true,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Result summarizes a decoration run.
type Result struct {
	// Lineages are classifications of tips taken from the decorated tree.
	Lineages []TipLineage

	// BadTips are ids of tips with inconsistent ranks along their paths.
	BadTips []string

	// Score is the tip-weighted mean score of placed names.
	Score float64

	// Totals are tree-wide tip counts per rank per name.
	Totals []map[string]int

	// NamedNodes is the number of internal nodes with display names.
	NamedNodes int
}

// Decorate names internal nodes of the tree using the classifications of
// tips from the map. The tree is changed in place.
func (d *Decorator) Decorate(root *phylo.Node, m *consmap.Map) (*Result, error) {
	s := d.schema
	res := &Result{}

	slog.Debug("Annotating tree", "tips", len(root.Tips()))
	BuildTree(s, root, m)
	res.Totals = CollectCounts(s, root)
	DecorateCounts(s, root)
	DecorateFreqs(s, root, res.Totals, d.minCount)

	slog.Debug("Picking names")
	SetRankSafe(s, root)
	PickNames(s, root)
	Fold(s, root, d.score)
	res.Score = ScoreTree(root)
	slog.Info("Names are placed", "score", res.Score)
	SetPreliminaryNames(root)

	slog.Debug("Filling rank gaps")
	trie := taxtrie.New(s, m.Lineages())
	if err := Backfill(root, trie); err != nil {
		return nil, err
	}
	if d.secondary != nil {
		n := BackfillFromSecondary(s, root, d.secondary)
		slog.Info("Names added from secondary taxonomy", "count", n)
	}
	Promote(root)
	if d.recoverPolyphyletic {
		n := RecoverPolyphyletic(root)
		slog.Info("Polyphyletic names recovered", "count", n)
	}
	if d.correctDecorated {
		n := CorrectDecorated(s, root, trie)
		slog.Info("Names removed by lineage check", "count", n)
	}
	Uniquify(root, d.glue)
	if d.fragments != nil {
		n := PromoteToMultifurcation(s, root, d.fragments)
		slog.Info("Names moved over fragment placements", "count", n)
	}

	if d.correctBinomials {
		if err := CorrectSpeciesBinomials(root); err != nil {
			return nil, err
		}
	}

	var err error
	res.Lineages, err = ConsensusStrings(s, root, d.appendPrefix)
	if err != nil {
		return nil, err
	}

	for _, v := range ValidatePaths(s, root) {
		res.BadTips = append(res.BadTips, v.Name)
	}
	if len(res.BadTips) > 0 {
		slog.Warn("Tips with inconsistent rank paths", "count", len(res.BadTips))
	}

	for _, v := range root.NonTips() {
		if v.Name != "" {
			res.NamedNodes++
		}
	}

	if d.retainBootstraps {
		SaveBootstraps(root)
	}
	return res, nil
}
