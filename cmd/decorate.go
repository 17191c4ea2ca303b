/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnt2t/internal/ioconsmap"
	"github.com/gnames/gnt2t/internal/iofs"
	"github.com/gnames/gnt2t/internal/ionewick"
	"github.com/gnames/gnt2t/internal/iostore"
	gnt2t "github.com/gnames/gnt2t/pkg"
	"github.com/gnames/gnt2t/pkg/archive"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/gnames/gnt2t/pkg/consistency"
	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/phylo"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// ConsensusSuffix is appended to the output tree path to get the path of
// consensus strings.
const ConsensusSuffix = "-consensus-strings"

func getDecorateCmd() *cobra.Command {
	decorateCmd := &cobra.Command{
		Use:   "decorate",
		Short: "Decorate a tree with names from a consensus map",
		Long: `Decorate internal nodes of a phylogenetic tree with taxonomic names.

The consensus map contains one tip per line:
  tip_id<TAB>d__Bacteria; p__Firmicutes; ...; s__

Names are placed on nodes that maximize the combination of precision and
recall for the tips carrying them. The decorated tree is written to the
output path, consensus strings taken from it are written next to it with
the '-consensus-strings' suffix.

A secondary consensus map (--secondary) adds ranks below the decorated
names of its tips. Tip ids from --fragments mark fragment placements,
names move up to cover them when they sit next to a named clade.

Examples:
  gnt2t decorate -t tree.nwk -m taxonomy.tsv -o decorated.nwk
  gnt2t decorate -t tree.nwk -m taxonomy.tsv -o out.nwk --archive sqlite -v
  gnt2t decorate -t tree.nwk -m gtdb.tsv -o out.nwk --secondary ncbi.tsv`,
		RunE: runDecorate,
	}

	f := decorateCmd.Flags()
	f.StringP("tree", "t", "", "input tree in Newick format")
	f.StringP("map", "m", "", "consensus map of tip classifications")
	f.StringP("output", "o", "", "path of the decorated tree")
	f.BoolP("verbose", "v", false, "print progress and logs to STDERR")
	addRanksFlag(decorateCmd)
	f.Int("min-count", 0, "minimal number of tips with a name in a subtree")
	f.String("score", "", "precision/recall combiner: f1, f0.5, f2")
	f.Bool("append-rank", false, "add rank prefixes to names of the map")
	f.Bool("no-bootstraps", false, "drop support values from decorated labels")
	f.Bool("correct-binomials", false,
		"fix species names whose genus differs from the decorated genus")
	f.Bool("check-parsed", false, "remove names that cannot be parsed")
	f.Bool("correct-decorated", false,
		"remove names whose lineage disagrees with the consensus map")
	f.Bool("recover-polyphyletic", false,
		"use polyphyletic variants of names found on relatives")
	f.String("secondary", "", "secondary consensus map for deeper ranks")
	f.String("fragments", "", "file with ids of fragment placements")
	f.String("archive", "", "archive the run: none, sqlite, postgres")
	f.String("archive-path", "", "path to SQLite archive file")
	f.Bool("strict-paths", false, "fail if some tips have inconsistent rank paths")

	return decorateCmd
}

// decorateOptions converts changed flags of the command to config options.
func decorateOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	f := cmd.Flags()
	if f.Changed("min-count") {
		i, _ := f.GetInt("min-count")
		res = append(res, config.OptDecorateMinCount(i))
	}
	if f.Changed("score") {
		s, _ := f.GetString("score")
		res = append(res, config.OptDecorateScore(s))
	}
	if f.Changed("append-rank") {
		b, _ := f.GetBool("append-rank")
		res = append(res, config.OptLoaderAppendRank(b))
	}
	if f.Changed("no-bootstraps") {
		b, _ := f.GetBool("no-bootstraps")
		res = append(res, config.OptDecorateRetainBootstraps(!b))
	}
	if f.Changed("correct-binomials") {
		b, _ := f.GetBool("correct-binomials")
		res = append(res, config.OptDecorateCorrectBinomials(b))
	}
	if f.Changed("correct-decorated") {
		b, _ := f.GetBool("correct-decorated")
		res = append(res, config.OptDecorateCorrectDecorated(b))
	}
	if f.Changed("recover-polyphyletic") {
		b, _ := f.GetBool("recover-polyphyletic")
		res = append(res, config.OptDecorateRecoverPolyphyletic(b))
	}
	if f.Changed("check-parsed") {
		b, _ := f.GetBool("check-parsed")
		res = append(res, config.OptLoaderCheckParsed(b))
	}
	if f.Changed("archive") {
		s, _ := f.GetString("archive")
		res = append(res, config.OptOutputArchive(s))
	}
	if f.Changed("archive-path") {
		s, _ := f.GetString("archive-path")
		res = append(res, config.OptOutputArchivePath(s))
	}
	return res
}

func runDecorate(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "tree", "map", "output"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if err := verboseFlag(cmd); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ranksFlag(cmd)
	cfg.Update(decorateOptions(cmd))

	treePath, _ := cmd.Flags().GetString("tree")
	mapPath, _ := cmd.Flags().GetString("map")
	outPath, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")
	strict, _ := cmd.Flags().GetBool("strict-paths")
	secPath, _ := cmd.Flags().GetString("secondary")
	fragPath, _ := cmd.Flags().GetString("fragments")

	ctx := context.Background()
	start := time.Now()
	runID := uuid.NewString()
	slog.Info("Starting decoration", "run", runID, "tree", treePath, "map", mapPath)

	loader := ioconsmap.New(cfg, ioconsmap.OptProgress(verbose))
	s, m, err := loader.Load(ctx, mapPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	extra, err := extraInputs(ctx, s, secPath, fragPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	root, err := ionewick.Read(treePath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res, err := decorate(s, root, m, extra...)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = ionewick.Write(outPath, root); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	lines := make([]string, len(res.Lineages))
	for i, v := range res.Lineages {
		lines[i] = decor.FormatLine(v)
	}
	if err = iofs.WriteLines(outPath+ConsensusSuffix, lines); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg.Output.Archive != "none" {
		info := archive.RunInfo{
			ID:        runID,
			StartedAt: start.UTC().Format(time.RFC3339),
			Version:   gnt2t.Version,
			TreePath:  treePath,
			MapPath:   mapPath,
			Ranks:     s.Codes(),
			ScoreName: cfg.Decorate.Score,
			MinCount:  cfg.Decorate.MinCount,
		}
		if err = saveArchive(ctx, s, info, root, res); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	gn.Info(
		"Decorated <em>%s</em> nodes for <em>%s</em> tips in %s, score %0.4f",
		humanize.Comma(int64(res.NamedNodes)),
		humanize.Comma(int64(len(res.Lineages))),
		gnfmt.TimeString(time.Since(start).Seconds()),
		res.Score,
	)
	slog.Info("Decoration is finished",
		"run", runID,
		"output", outPath,
		"duration", gnfmt.TimeString(time.Since(start).Seconds()),
	)

	if len(res.BadTips) > 0 {
		gn.Warn("<em>%d</em> tips have inconsistent rank paths, first is '%s'",
			len(res.BadTips), res.BadTips[0])
		if strict {
			err = InconsistentPathsError(len(res.BadTips))
			gn.PrintErrorMessage(err)
			return err
		}
	}
	return nil
}

// extraInputs loads the secondary consensus map and fragment ids when
// their paths are given.
func extraInputs(
	ctx context.Context,
	s *rank.Schema,
	secPath, fragPath string,
) ([]decor.Option, error) {
	var res []decor.Option
	if secPath != "" {
		s2, sec, err := ioconsmap.New(cfg).Load(ctx, secPath)
		if err != nil {
			return nil, err
		}
		if !slices.Equal(s.Codes(), s2.Codes()) {
			return nil, rank.SchemaError(s2.Codes(),
				"secondary map ranks differ from "+strings.Join(s.Codes(), ","))
		}
		res = append(res, decor.OptSecondary(sec))
	}
	if fragPath != "" {
		lines, err := ioconsmap.ReadLines(fragPath)
		if err != nil {
			return nil, err
		}
		ids := make([]string, len(lines))
		for i, v := range lines {
			id, _, _ := strings.Cut(v, "\t")
			ids[i] = strings.TrimSpace(id)
		}
		res = append(res, decor.OptFragments(ids))
	}
	return res, nil
}

func decorate(
	s *rank.Schema,
	root *phylo.Node,
	m *consmap.Map,
	extra ...decor.Option,
) (*decor.Result, error) {
	score, err := decor.ScoreByName(cfg.Decorate.Score)
	if err != nil {
		return nil, err
	}
	opts := []decor.Option{
		decor.OptMinCount(cfg.Decorate.MinCount),
		decor.OptScore(score),
		decor.OptSuffixGlue(cfg.Decorate.SuffixGlue),
		decor.OptRetainBootstraps(cfg.Decorate.RetainBootstraps),
		decor.OptCorrectBinomials(cfg.Decorate.CorrectBinomials),
		decor.OptCorrectDecorated(cfg.Decorate.CorrectDecorated),
		decor.OptRecoverPolyphyletic(cfg.Decorate.RecoverPolyphyletic),
	}
	d := decor.New(s, append(opts, extra...)...)
	return d.Decorate(root, m)
}

func saveArchive(
	ctx context.Context,
	s *rank.Schema,
	info archive.RunInfo,
	root *phylo.Node,
	res *decor.Result,
) error {
	rows := consistency.Calculate(s, root, res.Totals, true)
	arc, err := iostore.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer arc.Close()
	return arc.Save(ctx, archive.Build(info, root, res, rows))
}
