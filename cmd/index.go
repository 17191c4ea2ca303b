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
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnt2t/internal/ionewick"
	"github.com/gnames/gnt2t/pkg/tipindex"
	"github.com/spf13/cobra"
)

func getIndexCmd() *cobra.Command {
	indexCmd := &cobra.Command{
		Use:   "index",
		Short: "Map named clades to the tips they cover",
		Long: `Create an index of named clades of a decorated tree.

Every named internal node is listed with the sorted names of the tips it
covers. Two named clades with the same set of tips are an error. The index
is printed as JSON.

Examples:
  gnt2t index -t decorated.nwk
  gnt2t index -t decorated.nwk -o clades.json`,
		RunE: runIndex,
	}

	f := indexCmd.Flags()
	f.StringP("tree", "t", "", "decorated tree in Newick format")
	f.StringP("output", "o", "", "output file, STDOUT if empty")

	return indexCmd
}

func runIndex(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "tree"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	treePath, _ := cmd.Flags().GetString("tree")
	outPath, _ := cmd.Flags().GetString("output")

	root, err := ionewick.Read(treePath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	clades := tipindex.Clades(root)
	if _, err = tipindex.Index(clades); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	enc := gnfmt.GNjson{Pretty: true}
	bs, err := enc.Encode(clades)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	bs = append(bs, '\n')

	if outPath == "" {
		_, err = os.Stdout.Write(bs)
	} else {
		err = os.WriteFile(outPath, bs, 0644)
	}
	if err != nil {
		err = WriteOutputError(outPath, err)
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
