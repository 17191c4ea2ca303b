// Package iofs prepares directories and files gnt2t keeps in the home
// directory of a user, and writes output files.
package iofs

import (
	"bufio"
	_ "embed"
	"os"

	"github.com/gnames/gnsys"
	"github.com/gnames/gnt2t/pkg/config"
	"gopkg.in/yaml.v3"
)

//go:embed config.yaml
var ConfigYAML string

// EnsureDirs creates config, cache and log directories.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.CacheDir(homeDir),
		config.NameCacheDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, v := range dirs {
		if err := gnsys.MakeDir(v); err != nil {
			return CreateDirError(v, err)
		}
	}
	return nil
}

// EnsureConfigFile writes the default config.yaml unless it exists.
func EnsureConfigFile(homeDir string) error {
	configPath := config.ConfigFilePath(homeDir)

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	if err := os.WriteFile(configPath, []byte(ConfigYAML), 0644); err != nil {
		return CopyFileError(configPath, err)
	}
	return nil
}

// DefaultConfig decodes the embedded config.yaml.
func DefaultConfig() (*config.Config, error) {
	var res config.Config
	if err := yaml.Unmarshal([]byte(ConfigYAML), &res); err != nil {
		return nil, ReadFileError("config.yaml", err)
	}
	return &res, nil
}

// WriteLines writes lines to a file, each followed by a new line.
func WriteLines(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return WriteFileError(path, err)
	}

	w := bufio.NewWriter(f)
	for _, v := range lines {
		if _, err = w.WriteString(v + "\n"); err != nil {
			f.Close()
			return WriteFileError(path, err)
		}
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return WriteFileError(path, err)
	}
	if err = f.Close(); err != nil {
		return WriteFileError(path, err)
	}
	return nil
}
