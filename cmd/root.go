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
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/gnames/gnt2t/internal/iofs"
	"github.com/gnames/gnt2t/internal/iologger"
	gnt2t "github.com/gnames/gnt2t/pkg"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd creates the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", gnt2t.Version, gnt2t.Build),
		Use:     "gnt2t",
		Short:   "Decorates phylogenetic trees with taxonomic names",
		Long: `gnt2t places taxonomic names from a consensus map onto internal
nodes of a phylogenetic tree. Every tip of the tree has a classification
string in the map, names are assigned to the nodes that cover most of the
tips carrying them, gaps in ranks are filled from the taxonomy, and
consensus strings are pulled back from the decorated tree.

Commands:
  decorate     decorate a tree with names from a consensus map
  fetch        pull consensus strings from a decorated tree
  validate     check a consensus map for problems
  consistency  measure agreement of taxa with the tree topology
  index        map named clades to the tips they cover

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNT2T_*)
  3. Config file (~/.config/gnt2t/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (decorate.min_count → GNT2T_DECORATE_MIN_COUNT).

  Examples:
    GNT2T_DECORATE_RANKS           Rank codes, like "d,p,c,o,f,g,s"
    GNT2T_DECORATE_MIN_COUNT       Minimal count of a name in a subtree
    GNT2T_LOADER_CHECK_PARSED      Remove names gnparser cannot parse
    GNT2T_OUTPUT_ARCHIVE           Archive backend (none/sqlite/postgres)
    GNT2T_DATABASE_HOST            PostgreSQL host
    GNT2T_LOG_LEVEL                Log level (debug/info/warn/error)`,
		PersistentPreRunE: bootstrap,
		Run: func(cmd *cobra.Command, _ []string) {
			versionFlag(cmd)
			_ = cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnt2t version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for gnt2t")

	rootCmd.AddCommand(
		getDecorateCmd(),
		getFetchCmd(),
		getValidateCmd(),
		getConsistencyCmd(),
		getIndexCmd(),
	)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging with defaults until the config file is read.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", config.ConfigFilePath(homeDir))
	return nil
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	iologger.Close()
	if err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	return &res, nil
}

// initEnvVars binds environment variables explicitly, so the allowed ones
// are easy to see. They match the fields of config.ToOptions().
func initEnvVars(v *viper.Viper) {
	v.SetEnvPrefix("GNT2T")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Decoration
	_ = v.BindEnv("decorate.ranks", "GNT2T_DECORATE_RANKS")
	_ = v.BindEnv("decorate.min_count", "GNT2T_DECORATE_MIN_COUNT")
	_ = v.BindEnv("decorate.score", "GNT2T_DECORATE_SCORE")
	_ = v.BindEnv("decorate.suffix_glue", "GNT2T_DECORATE_SUFFIX_GLUE")
	_ = v.BindEnv("decorate.retain_bootstraps", "GNT2T_DECORATE_RETAIN_BOOTSTRAPS")
	_ = v.BindEnv("decorate.correct_binomials", "GNT2T_DECORATE_CORRECT_BINOMIALS")
	_ = v.BindEnv("decorate.correct_decorated", "GNT2T_DECORATE_CORRECT_DECORATED")
	_ = v.BindEnv("decorate.recover_polyphyletic", "GNT2T_DECORATE_RECOVER_POLYPHYLETIC")

	// Consensus map loading
	_ = v.BindEnv("loader.append_rank", "GNT2T_LOADER_APPEND_RANK")
	_ = v.BindEnv("loader.check_bad", "GNT2T_LOADER_CHECK_BAD")
	_ = v.BindEnv("loader.check_min_inform", "GNT2T_LOADER_CHECK_MIN_INFORM")
	_ = v.BindEnv("loader.strict_ranks", "GNT2T_LOADER_STRICT_RANKS")
	_ = v.BindEnv("loader.check_parsed", "GNT2T_LOADER_CHECK_PARSED")
	_ = v.BindEnv("loader.detect_ranks", "GNT2T_LOADER_DETECT_RANKS")

	// Archive
	_ = v.BindEnv("output.archive", "GNT2T_OUTPUT_ARCHIVE")
	_ = v.BindEnv("output.archive_path", "GNT2T_OUTPUT_ARCHIVE_PATH")

	// Database configuration
	_ = v.BindEnv("database.host", "GNT2T_DATABASE_HOST")
	_ = v.BindEnv("database.port", "GNT2T_DATABASE_PORT")
	_ = v.BindEnv("database.user", "GNT2T_DATABASE_USER")
	_ = v.BindEnv("database.password", "GNT2T_DATABASE_PASSWORD")
	_ = v.BindEnv("database.database", "GNT2T_DATABASE_DATABASE")
	_ = v.BindEnv("database.ssl_mode", "GNT2T_DATABASE_SSL_MODE")
	_ = v.BindEnv("database.batch_size", "GNT2T_DATABASE_BATCH_SIZE")

	// Log configuration
	_ = v.BindEnv("log.level", "GNT2T_LOG_LEVEL")
	_ = v.BindEnv("log.format", "GNT2T_LOG_FORMAT")
	_ = v.BindEnv("log.destination", "GNT2T_LOG_DESTINATION")

	// General configuration
	_ = v.BindEnv("jobs_number", "GNT2T_JOBS_NUMBER")

	v.AutomaticEnv()
}
