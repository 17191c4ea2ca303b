// Package config provides configuration management for gnt2t.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Decorate: ranks, min_count, score, suffix_glue, retain_bootstraps,
//     correct_binomials, correct_decorated, recover_polyphyletic
//   - Loader: append_rank, check_bad, check_min_inform, strict_ranks,
//     check_parsed, detect_ranks
//   - Output: archive, archive_path
//   - Database: host, port, user, password, database, ssl_mode, batch_size
//   - Log: level, format, destination
//   - General: jobs_number
//
// Runtime-only fields (CLI flags only):
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use GNT2T_ prefix with underscores for nesting:
//
//	GNT2T_DECORATE_MIN_COUNT=3
//	GNT2T_LOADER_CHECK_BAD=false
//	GNT2T_LOG_LEVEL=info
//	GNT2T_JOBS_NUMBER=8
package config

import (
	"runtime"
)

// Config represents the complete gnt2t configuration.
type Config struct {
	// Decorate contains settings of the tree decoration pipeline.
	Decorate DecorateConfig `mapstructure:"decorate" yaml:"decorate"`

	// Loader contains cleaning rules for consensus map files.
	Loader LoaderConfig `mapstructure:"loader" yaml:"loader"`

	// Output determines where decoration results are archived.
	Output OutputConfig `mapstructure:"output" yaml:"output"`

	// Database contains PostgreSQL connection settings for the postgres
	// archive.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used to check names
	// while loading consensus maps.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config, cache and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DecorateConfig contains settings of the decoration pipeline.
type DecorateConfig struct {
	// Ranks is the ordered list of one-letter rank codes, from the root-most
	// rank to the deepest one.
	Ranks []string `mapstructure:"ranks" yaml:"ranks"`

	// MinCount is the minimal number of tips that must carry a name inside
	// a subtree for that name to be considered for the subtree.
	MinCount int `mapstructure:"min_count" yaml:"min_count"`

	// Score selects the precision/recall combiner used to resolve
	// ownership of names. Valid values: "f1", "f0.5", "f2".
	Score string `mapstructure:"score" yaml:"score"`

	// SuffixGlue joins a duplicated name with its disambiguation counter.
	SuffixGlue string `mapstructure:"suffix_glue" yaml:"suffix_glue"`

	// RetainBootstraps re-embeds support values into decorated labels.
	RetainBootstraps bool `mapstructure:"retain_bootstraps" yaml:"retain_bootstraps"`

	// CorrectBinomials rewrites species names whose genus part disagrees
	// with a polyphyletic genus label above them.
	CorrectBinomials bool `mapstructure:"correct_binomials" yaml:"correct_binomials"`

	// CorrectDecorated removes names of nodes whose lineage disagrees with
	// the lineage of the same name in the consensus map.
	CorrectDecorated bool `mapstructure:"correct_decorated" yaml:"correct_decorated"`

	// RecoverPolyphyletic replaces a name with its polyphyletic variant
	// ('g__Bacillus' to 'g__Bacillus_A') when the variant is found on
	// the nearest named relatives.
	RecoverPolyphyletic bool `mapstructure:"recover_polyphyletic" yaml:"recover_polyphyletic"`
}

// LoaderConfig contains cleaning rules for consensus map rows.
type LoaderConfig struct {
	// AppendRank adds rank prefixes ('g__') to names and replaces missing
	// names with bare prefixes.
	AppendRank bool `mapstructure:"append_rank" yaml:"append_rank"`

	// CheckBad removes names that contain uninformative words like
	// 'uncultured' or 'environmental sample'.
	CheckBad bool `mapstructure:"check_bad" yaml:"check_bad"`

	// CheckMinInform drops rows that have no name below the top rank.
	CheckMinInform bool `mapstructure:"check_min_inform" yaml:"check_min_inform"`

	// StrictRanks makes a row with a wrong number of ranks a hard error.
	// Otherwise such rows are treated as uninformative.
	StrictRanks bool `mapstructure:"strict_ranks" yaml:"strict_ranks"`

	// CheckParsed removes names that cannot be parsed as scientific names.
	CheckParsed bool `mapstructure:"check_parsed" yaml:"check_parsed"`

	// DetectRanks takes the rank order from prefixes of the first row.
	DetectRanks bool `mapstructure:"detect_ranks" yaml:"detect_ranks"`
}

// OutputConfig determines where results are archived.
type OutputConfig struct {
	// Archive selects a backend for archiving decoration results.
	// Valid values: "none", "sqlite", "postgres".
	Archive string `mapstructure:"archive" yaml:"archive"`

	// ArchivePath is a path to the SQLite archive file. If empty, the
	// archive is created in the cache directory.
	ArchivePath string `mapstructure:"archive_path" yaml:"archive_path"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// BatchSize is the number of rows inserted per statement.
	BatchSize int `mapstructure:"batch_size" yaml:"batch_size"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Decorate: DecorateConfig{
			Ranks:            DefaultRanks(),
			MinCount:         3,
			Score:            "f1",
			SuffixGlue:       "_",
			RetainBootstraps: true,
		},
		Loader: LoaderConfig{
			AppendRank:     false,
			CheckBad:       true,
			CheckMinInform: true,
			StrictRanks:    true,
		},
		Output: OutputConfig{
			Archive: "none",
		},
		Database: DatabaseConfig{
			Host:      "localhost",
			Port:      5432,
			User:      "postgres",
			Password:  "postgres",
			Database:  "gnt2t",
			SSLMode:   "disable",
			BatchSize: 10_000,
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}

// DefaultRanks returns rank codes from domain to species.
func DefaultRanks() []string {
	return []string{"d", "p", "c", "o", "f", "g", "s"}
}
