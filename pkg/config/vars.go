package config

import (
	"path/filepath"
)

var (
	// AppName is used in generating file system paths.
	AppName = "gnt2t"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/gnt2t by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/gnt2t by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// NameCacheDir returns the directory of the parsed names cache.
func NameCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "names")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/gnt2t/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/gnt2t/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// ArchiveFilePath returns the SQLite archive path, either the configured
// one or the default one in the cache directory.
func (c *Config) ArchiveFilePath() string {
	if c.Output.ArchivePath != "" {
		return c.Output.ArchivePath
	}
	return filepath.Join(CacheDir(c.HomeDir), "archive.sqlite")
}
