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
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/internal/ioconsmap"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/gnames/gnt2t/pkg/consmap"
	"github.com/gnames/gnt2t/pkg/rank"
	"github.com/gnames/gnt2t/pkg/validate"
	"github.com/spf13/cobra"
)

func getValidateCmd() *cobra.Command {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a consensus map for problems",
		Long: `Check a consensus map for problems before decoration.

Flat checks find lines with wrong rank prefixes, a wrong number of ranks,
or gaps (an empty rank above a filled one). Hierarchy checks find taxa
that appear under more than one parent. Both kinds run by default.

With --stats the numbers of classified tips and distinct names per rank
are printed before the checks.

Examples:
  gnt2t validate -m taxonomy.tsv
  gnt2t validate -m taxonomy.tsv --hierarchy --limit 5
  gnt2t validate -m taxonomy.tsv --stats`,
		RunE: runValidate,
	}

	f := validateCmd.Flags()
	f.StringP("map", "m", "", "consensus map of tip classifications")
	f.Int("limit", 10, "maximal number of ids shown per problem")
	f.Bool("flat", false, "run only flat checks")
	f.Bool("hierarchy", false, "run only hierarchy checks")
	f.Bool("stats", false, "print classified tips and names per rank")
	addRanksFlag(validateCmd)

	return validateCmd
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if err := requireFlags(cmd, "map"); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	ranksFlag(cmd)
	mapPath, _ := cmd.Flags().GetString("map")
	limit, _ := cmd.Flags().GetInt("limit")
	flat, _ := cmd.Flags().GetBool("flat")
	hierarchy, _ := cmd.Flags().GetBool("hierarchy")
	stats, _ := cmd.Flags().GetBool("stats")
	if !flat && !hierarchy {
		flat, hierarchy = true, true
	}
	limit = max(limit, 1)

	lines, err := ioconsmap.ReadLines(mapPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	s, err := rank.New(cfg.Decorate.Ranks)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cats []validate.Category
	if flat {
		if cats, err = validate.FlatErrors(s, lines); err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	var conflicts []validate.Conflict
	if hierarchy || stats {
		// Taxa are compared by names as they are in the map, and rows
		// with a wrong number of ranks are skipped.
		hcfg := *cfg
		hcfg.Update([]config.Option{
			config.OptLoaderAppendRank(false),
			config.OptLoaderStrictRanks(false),
			config.OptLoaderCheckMinInform(false),
		})
		loader := ioconsmap.New(&hcfg, ioconsmap.OptRequirePrefix(false))
		hs, m, err := loader.Parse(context.Background(), lines)
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
		if stats {
			for _, v := range consmap.FormatStats(consmap.Stats(hs, m)) {
				fmt.Fprintln(os.Stdout, v)
			}
		}
		if hierarchy {
			conflicts = validate.HierarchyErrors(hs, m)
		}
	}

	if len(cats) == 0 && len(conflicts) == 0 {
		gn.Info("No problems found in <em>%s</em>", mapPath)
		return nil
	}
	for _, v := range validate.Report(cats, conflicts, limit) {
		fmt.Fprintln(os.Stdout, v)
	}
	return nil
}
