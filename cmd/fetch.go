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
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/internal/iofs"
	"github.com/gnames/gnt2t/internal/ionewick"
	"github.com/gnames/gnt2t/pkg/decor"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/spf13/cobra"
)

func getFetchCmd() *cobra.Command {
	fetchCmd := &cobra.Command{
		Use:   "fetch",
		Short: "Pull consensus strings from a decorated tree",
		Long: `Pull consensus strings from an already decorated tree.

Every tip gets the names of its ancestors ordered by rank. Names must have
rank prefixes ('g__Escherichia'). Nodes with unknown prefixes are reported
all at once. Without --output the strings are printed to STDOUT.

Examples:
  gnt2t fetch -t decorated.nwk
  gnt2t fetch -t decorated.nwk -o lineages.tsv --ranks k,p,c,o,f,g,s`,
		RunE: runFetch,
	}

	f := fetchCmd.Flags()
	f.StringP("tree", "t", "", "decorated tree in Newick format")
	f.StringP("output", "o", "", "output file, STDOUT if empty")
	f.Bool("no-prefix", false, "leave missing ranks empty instead of bare prefixes")
	addRanksFlag(fetchCmd)

	return fetchCmd
}

func runFetch(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "tree"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ranksFlag(cmd)
	treePath, _ := cmd.Flags().GetString("tree")
	outPath, _ := cmd.Flags().GetString("output")
	noPrefix, _ := cmd.Flags().GetBool("no-prefix")

	s, err := rank.New(cfg.Decorate.Ranks)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	root, err := ionewick.Read(treePath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if errs := decor.UnknownRanks(s, root); len(errs) > 0 {
		for _, v := range errs {
			gn.PrintErrorMessage(v)
		}
		return errs[0]
	}

	lineages, err := decor.ConsensusStrings(s, root, !noPrefix)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	lines := make([]string, len(lineages))
	for i, v := range lineages {
		lines[i] = decor.FormatLine(v)
	}

	if bad := decor.ValidatePaths(s, root); len(bad) > 0 {
		gn.Warn("<em>%d</em> tips have inconsistent rank paths", len(bad))
	}

	if outPath == "" {
		for _, v := range lines {
			fmt.Fprintln(os.Stdout, v)
		}
		return nil
	}
	if err = iofs.WriteLines(outPath, lines); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Consensus strings are saved to <em>%s</em>", outPath)
	return nil
}
