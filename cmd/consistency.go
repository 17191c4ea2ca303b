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
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnt2t/internal/ioconsmap"
	"github.com/gnames/gnt2t/internal/ionewick"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/gnames/gnt2t/pkg/consistency"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/spf13/cobra"
)

func getConsistencyCmd() *cobra.Command {
	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Measure agreement of taxa with the tree topology",
		Long: `Calculate the consistency index of every taxon of a consensus map.

A taxon is fully consistent when some node of the tree covers all tips
with the taxon and no tips with other names at the same rank. For
unrooted trees the complement of every node is checked as well.

Output is a tab-separated table (Taxon, Count, Consistency) or JSON.

Examples:
  gnt2t consistency -t tree.nwk -m taxonomy.tsv
  gnt2t consistency -t tree.nwk -m taxonomy.tsv --unrooted -f json -o c.json`,
		RunE: runConsistency,
	}

	f := consistencyCmd.Flags()
	f.StringP("tree", "t", "", "tree in Newick format")
	f.StringP("map", "m", "", "consensus map of tip classifications")
	f.StringP("output", "o", "", "output file, STDOUT if empty")
	f.StringP("format", "f", "tsv", "output format: tsv, json")
	f.Bool("unrooted", false, "treat the tree as unrooted")
	addRanksFlag(consistencyCmd)

	return consistencyCmd
}

func runConsistency(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "tree", "map"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ranksFlag(cmd)
	treePath, _ := cmd.Flags().GetString("tree")
	mapPath, _ := cmd.Flags().GetString("map")
	outPath, _ := cmd.Flags().GetString("output")
	format, _ := cmd.Flags().GetString("format")
	unrooted, _ := cmd.Flags().GetBool("unrooted")

	if format != "tsv" && format != "json" {
		err := UnknownFormatError(format)
		gn.PrintErrorMessage(err)
		return err
	}

	// Consistency is measured on names as they are in the map.
	ccfg := *cfg
	ccfg.Update([]config.Option{config.OptLoaderAppendRank(false)})
	loader := ioconsmap.New(&ccfg, ioconsmap.OptRequirePrefix(false))
	s, m, err := loader.Load(context.Background(), mapPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	root, err := ionewick.Read(treePath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	decor.BuildTree(s, root, m)
	totals := decor.CollectCounts(s, root)
	decor.DecorateCounts(s, root)
	rows := consistency.Calculate(s, root, totals, !unrooted)

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			err = WriteOutputError(outPath, err)
			gn.PrintErrorMessage(err)
			return err
		}
		defer f.Close()
		w = f
	}

	if format == "json" {
		enc := gnfmt.GNjson{Pretty: true}
		var bs []byte
		if bs, err = enc.Encode(rows); err == nil {
			_, err = w.Write(append(bs, '\n'))
		}
	} else {
		err = consistency.Write(w, rows)
	}
	if err != nil {
		err = WriteOutputError(outPath, err)
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
