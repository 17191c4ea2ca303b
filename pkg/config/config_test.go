package config_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnt2t/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirs(t *testing.T) {
	tempHome := t.TempDir()

	tests := []struct {
		msg string
		fn  func(string) string
		res string
	}{
		{
			msg: "config dir",
			fn:  config.ConfigDir,
			res: filepath.Join(tempHome, ".config", "gnt2t"),
		},
		{
			msg: "cache dir",
			fn:  config.CacheDir,
			res: filepath.Join(tempHome, ".cache", "gnt2t"),
		},
		{
			msg: "names cache dir",
			fn:  config.NameCacheDir,
			res: filepath.Join(tempHome, ".cache", "gnt2t", "names"),
		},
		{
			msg: "log dir",
			fn:  config.LogDir,
			res: filepath.Join(tempHome, ".local", "share", "gnt2t", "logs"),
		},
		{
			msg: "config file",
			fn:  config.ConfigFilePath,
			res: filepath.Join(tempHome, ".config", "gnt2t", "config.yaml"),
		},
	}

	for _, v := range tests {
		res := v.fn(tempHome)
		assert.Equal(t, v.res, res, v.msg)
	}
}

func TestArchiveFilePath(t *testing.T) {
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir("/home/u")})
	assert.Equal(t,
		filepath.Join("/home/u", ".cache", "gnt2t", "archive.sqlite"),
		cfg.ArchiveFilePath())

	cfg.Update([]config.Option{config.OptOutputArchivePath("/tmp/a.db")})
	assert.Equal(t, "/tmp/a.db", cfg.ArchiveFilePath())
}

func TestNew(t *testing.T) {
	cfg := config.New()

	t.Run("creates valid default config", func(t *testing.T) {
		require.NotNil(t, cfg)

		assert.Equal(t, []string{"d", "p", "c", "o", "f", "g", "s"},
			cfg.Decorate.Ranks)
		assert.Equal(t, 3, cfg.Decorate.MinCount)
		assert.Equal(t, "f1", cfg.Decorate.Score)
		assert.Equal(t, "_", cfg.Decorate.SuffixGlue)
		assert.True(t, cfg.Decorate.RetainBootstraps)
		assert.False(t, cfg.Decorate.CorrectBinomials)
		assert.False(t, cfg.Decorate.CorrectDecorated)
		assert.False(t, cfg.Decorate.RecoverPolyphyletic)

		assert.False(t, cfg.Loader.AppendRank)
		assert.True(t, cfg.Loader.CheckBad)
		assert.True(t, cfg.Loader.CheckMinInform)
		assert.True(t, cfg.Loader.StrictRanks)
		assert.False(t, cfg.Loader.CheckParsed)

		assert.Equal(t, "none", cfg.Output.Archive)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "gnt2t", cfg.Database.Database)
		assert.Equal(t, 10_000, cfg.Database.BatchSize)

		assert.Equal(t, "json", cfg.Log.Format)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.Equal(t, "file", cfg.Log.Destination)

		assert.Equal(t, runtime.NumCPU(), cfg.JobsNumber)
	})

	t.Run("default ranks are not shared", func(t *testing.T) {
		cfg1 := config.New()
		cfg1.Decorate.Ranks[0] = "k"
		cfg2 := config.New()
		assert.Equal(t, "d", cfg2.Decorate.Ranks[0])
	})
}

func TestOptionDecorateRanks(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "sets valid ranks",
			input:    []string{"k", "p", "c"},
			expected: []string{"k", "p", "c"},
		},
		{
			name:     "trims whitespace",
			input:    []string{" k", "p "},
			expected: []string{"k", "p"},
		},
		{
			name:     "ignores empty list",
			input:    nil,
			expected: config.DefaultRanks(),
		},
		{
			name:     "ignores long codes",
			input:    []string{"kingdom", "p"},
			expected: config.DefaultRanks(),
		},
		{
			name:     "ignores duplicates",
			input:    []string{"k", "p", "k"},
			expected: config.DefaultRanks(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDecorateRanks(tt.input)})
			assert.Equal(t, tt.expected, cfg.Decorate.Ranks)
		})
	}
}

func TestOptionDecorateMinCount(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "sets valid count", input: 1, expected: 1},
		{name: "ignores zero", input: 0, expected: 3},
		{name: "ignores negative", input: -2, expected: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{config.OptDecorateMinCount(tt.input)})
			assert.Equal(t, tt.expected, cfg.Decorate.MinCount)
		})
	}
}

func TestOptionEnums(t *testing.T) {
	tests := []struct {
		name     string
		opt      config.Option
		get      func(*config.Config) string
		expected string
	}{
		{
			name:     "score f2",
			opt:      config.OptDecorateScore("F2"),
			get:      func(c *config.Config) string { return c.Decorate.Score },
			expected: "f2",
		},
		{
			name:     "score unknown",
			opt:      config.OptDecorateScore("f3"),
			get:      func(c *config.Config) string { return c.Decorate.Score },
			expected: "f1",
		},
		{
			name:     "archive sqlite",
			opt:      config.OptOutputArchive(" sqlite "),
			get:      func(c *config.Config) string { return c.Output.Archive },
			expected: "sqlite",
		},
		{
			name:     "archive unknown",
			opt:      config.OptOutputArchive("mysql"),
			get:      func(c *config.Config) string { return c.Output.Archive },
			expected: "none",
		},
		{
			name:     "ssl mode",
			opt:      config.OptDatabaseSSLMode("REQUIRE"),
			get:      func(c *config.Config) string { return c.Database.SSLMode },
			expected: "require",
		},
		{
			name:     "log destination stderr",
			opt:      config.OptLogDestination("stderr"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "stderr",
		},
		{
			name:     "log destination unknown",
			opt:      config.OptLogDestination("stdin"),
			get:      func(c *config.Config) string { return c.Log.Destination },
			expected: "file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			cfg.Update([]config.Option{tt.opt})
			assert.Equal(t, tt.expected, tt.get(cfg))
		})
	}
}

func TestToOptions(t *testing.T) {
	src := config.New()
	src.Update([]config.Option{
		config.OptDecorateRanks([]string{"k", "p"}),
		config.OptDecorateMinCount(1),
		config.OptDecorateScore("f0.5"),
		config.OptDecorateRetainBootstraps(false),
		config.OptDecorateCorrectDecorated(true),
		config.OptDecorateRecoverPolyphyletic(true),
		config.OptLoaderAppendRank(true),
		config.OptLoaderCheckBad(false),
		config.OptOutputArchive("sqlite"),
		config.OptDatabaseHost("db"),
		config.OptLogLevel("debug"),
		config.OptJobsNumber(2),
		config.OptHomeDir("/home/u"),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(t, []string{"k", "p"}, dst.Decorate.Ranks)
	assert.Equal(t, 1, dst.Decorate.MinCount)
	assert.Equal(t, "f0.5", dst.Decorate.Score)
	assert.False(t, dst.Decorate.RetainBootstraps)
	assert.True(t, dst.Decorate.CorrectDecorated)
	assert.True(t, dst.Decorate.RecoverPolyphyletic)
	assert.True(t, dst.Loader.AppendRank)
	assert.False(t, dst.Loader.CheckBad)
	assert.Equal(t, "sqlite", dst.Output.Archive)
	assert.Equal(t, "db", dst.Database.Host)
	assert.Equal(t, "debug", dst.Log.Level)
	assert.Equal(t, 2, dst.JobsNumber)
	assert.Empty(t, dst.HomeDir, "HomeDir is runtime-only")
}
