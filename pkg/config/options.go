package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptDecorateRanks sets the ordered list of one-letter rank codes.
func OptDecorateRanks(ss []string) Option {
	ranks := make([]string, 0, len(ss))
	for _, v := range ss {
		ranks = append(ranks, strings.TrimSpace(v))
	}
	return func(c *Config) {
		if isValidRanks("Decorate Ranks", ranks) {
			c.Decorate.Ranks = ranks
		}
	}
}

// OptDecorateMinCount sets the minimal number of tips a name needs inside
// a subtree to be considered there.
func OptDecorateMinCount(i int) Option {
	return func(c *Config) {
		if isValidInt("Decorate MinCount", i) {
			c.Decorate.MinCount = i
		}
	}
}

// OptDecorateScore sets the combiner of precision and recall.
// Valid values: "f1", "f0.5", "f2".
func OptDecorateScore(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Decorate.Score", s) {
			c.Decorate.Score = s
		}
	}
}

// OptDecorateSuffixGlue sets the string between a duplicated name and its
// counter.
func OptDecorateSuffixGlue(s string) Option {
	return func(c *Config) {
		if isValidString("Decorate SuffixGlue", s) {
			c.Decorate.SuffixGlue = s
		}
	}
}

// OptDecorateRetainBootstraps keeps support values in decorated labels.
func OptDecorateRetainBootstraps(b bool) Option {
	return func(c *Config) {
		c.Decorate.RetainBootstraps = b
	}
}

// OptDecorateCorrectBinomials enables species binomial correction.
func OptDecorateCorrectBinomials(b bool) Option {
	return func(c *Config) {
		c.Decorate.CorrectBinomials = b
	}
}

// OptDecorateCorrectDecorated enables removal of names that disagree with
// the consensus map lineages.
func OptDecorateCorrectDecorated(b bool) Option {
	return func(c *Config) {
		c.Decorate.CorrectDecorated = b
	}
}

// OptDecorateRecoverPolyphyletic enables recovery of polyphyletic names
// from relatives.
func OptDecorateRecoverPolyphyletic(b bool) Option {
	return func(c *Config) {
		c.Decorate.RecoverPolyphyletic = b
	}
}

// OptLoaderAppendRank enables rank prefixes injection.
func OptLoaderAppendRank(b bool) Option {
	return func(c *Config) {
		c.Loader.AppendRank = b
	}
}

// OptLoaderCheckBad enables removal of uninformative names.
func OptLoaderCheckBad(b bool) Option {
	return func(c *Config) {
		c.Loader.CheckBad = b
	}
}

// OptLoaderCheckMinInform enables removal of rows without names below
// the top rank.
func OptLoaderCheckMinInform(b bool) Option {
	return func(c *Config) {
		c.Loader.CheckMinInform = b
	}
}

// OptLoaderStrictRanks makes rows with a wrong number of ranks fatal.
func OptLoaderStrictRanks(b bool) Option {
	return func(c *Config) {
		c.Loader.StrictRanks = b
	}
}

// OptLoaderCheckParsed enables scientific name checks by gnparser.
func OptLoaderCheckParsed(b bool) Option {
	return func(c *Config) {
		c.Loader.CheckParsed = b
	}
}

// OptLoaderDetectRanks takes rank order from the first consensus row.
func OptLoaderDetectRanks(b bool) Option {
	return func(c *Config) {
		c.Loader.DetectRanks = b
	}
}

// OptOutputArchive sets the archive backend.
// Valid values: "none", "sqlite", "postgres".
func OptOutputArchive(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Output.Archive", s) {
			c.Output.Archive = s
		}
	}
}

// OptOutputArchivePath sets the path to the SQLite archive file.
func OptOutputArchivePath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output ArchivePath", s) {
			c.Output.ArchivePath = s
		}
	}
}

// OptDatabaseHost sets the PostgreSQL server hostname or IP address.
func OptDatabaseHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Host", s) {
			c.Database.Host = s
		}
	}
}

// OptDatabasePort sets the PostgreSQL server port number.
func OptDatabasePort(i int) Option {
	return func(c *Config) {
		if isValidInt("Database Port", i) {
			c.Database.Port = i
		}
	}
}

// OptDatabaseUser sets the PostgreSQL database username.
func OptDatabaseUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database User", s) {
			c.Database.User = s
		}
	}
}

// OptDatabasePassword sets the PostgreSQL database password.
func OptDatabasePassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Password", s) {
			c.Database.Password = s
		}
	}
}

// OptDatabaseDatabase sets the PostgreSQL database name to connect to.
func OptDatabaseDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Database Name", s) {
			c.Database.Database = s
		}
	}
}

// OptDatabaseSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptDatabaseSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Database.SSLMode", s) {
			c.Database.SSLMode = s
		}
	}
}

// OptDatabaseBatchSize sets the number of rows per insert batch.
func OptDatabaseBatchSize(i int) Option {
	return func(c *Config) {
		if isValidInt("Batch Size", i) {
			c.Database.BatchSize = i
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config, cache, and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
