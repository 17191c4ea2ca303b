package iofs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gnames/gnt2t/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureDirs(t *testing.T) {
	tmpDir := t.TempDir()

	// repeated calls must succeed
	for range 3 {
		require.NoError(t, EnsureDirs(tmpDir))
	}

	dirs := []string{
		filepath.Join(tmpDir, ".config", "gnt2t"),
		filepath.Join(tmpDir, ".cache", "gnt2t"),
		filepath.Join(tmpDir, ".cache", "gnt2t", "names"),
		filepath.Join(tmpDir, ".local", "share", "gnt2t", "logs"),
	}
	for _, v := range dirs {
		info, err := os.Stat(v)
		require.NoError(t, err)
		assert.True(t, info.IsDir(), v)
	}
}

func TestEnsureConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, EnsureDirs(tmpDir))

	path := config.ConfigFilePath(tmpDir)
	require.NoError(t, EnsureConfigFile(tmpDir))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, ConfigYAML, string(data))

	t.Run("keeps existing file", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644))
		require.NoError(t, EnsureConfigFile(tmpDir))
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "log:\n  level: debug\n", string(data))
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := DefaultConfig()
	require.NoError(t, err)

	res := config.New()
	res.Update(cfg.ToOptions())
	assert.Equal(t, config.New(), res,
		"embedded config.yaml must match default settings")
	assert.Equal(t, runtime.NumCPU(), res.JobsNumber)
}

func TestWriteLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out-consensus-strings")
	require.NoError(t, WriteLines(path, []string{"a\td__A", "b\td__B"}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\td__A\nb\td__B\n", string(data))

	err = WriteLines(filepath.Join(t.TempDir(), "no", "such", "dir"), nil)
	assert.Error(t, err)
}
