package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/gnt2t/internal/iologger"
	gnt2t "github.com/gnames/gnt2t/pkg"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", gnt2t.Version, gnt2t.Build)
		os.Exit(0)
	}
}

// requireFlags returns an error for the first empty required flag.
func requireFlags(cmd *cobra.Command, names ...string) error {
	for _, v := range names {
		s, _ := cmd.Flags().GetString(v)
		if s == "" {
			_ = cmd.Usage()
			return MissingInputError(v)
		}
	}
	return nil
}

// verboseFlag sends logs to STDERR in a human-readable form.
func verboseFlag(cmd *cobra.Command) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return nil
	}
	cfg.Update([]config.Option{
		config.OptLogDestination("stderr"),
		config.OptLogFormat("tint"),
	})
	return iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log)
}

// ranksFlag replaces configured rank codes if the flag is given.
func ranksFlag(cmd *cobra.Command) {
	if !cmd.Flags().Changed("ranks") {
		return
	}
	ranks, _ := cmd.Flags().GetStringSlice("ranks")
	cfg.Update([]config.Option{config.OptDecorateRanks(ranks)})
}

func addRanksFlag(cmd *cobra.Command) {
	cmd.Flags().StringSlice("ranks", nil,
		"comma-separated rank codes from the top rank down (default from config)")
}
