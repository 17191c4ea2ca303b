// Package iotesting provides shared test utilities for integration tests.
// This is an internal package for test infrastructure only.
package iotesting

import (
	"testing"

	"github.com/gnames/gnt2t/pkg/config"
	"github.com/spf13/viper"
)

// TestDatabaseName is the database name used for all integration tests.
// This ensures tests never accidentally run against production databases.
const TestDatabaseName = "gnt2t_test"

// Config returns a default configuration with a temporary home
// directory and database settings from GNT2T_DATABASE_* environment
// variables.
func Config(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Update([]config.Option{config.OptHomeDir(t.TempDir())})
	cfg.Database = *DatabaseConfig()
	return cfg
}

// DatabaseConfig returns database settings for integration tests. The
// database name is always TestDatabaseName.
func DatabaseConfig() *config.DatabaseConfig {
	v := viper.New()
	v.SetEnvPrefix("GNT2T")
	for _, k := range []string{"host", "port", "user", "password", "ssl_mode"} {
		_ = v.BindEnv("database_" + k)
	}

	cfg := config.New()
	var opts []config.Option
	if s := v.GetString("database_host"); s != "" {
		opts = append(opts, config.OptDatabaseHost(s))
	}
	if i := v.GetInt("database_port"); i > 0 {
		opts = append(opts, config.OptDatabasePort(i))
	}
	if s := v.GetString("database_user"); s != "" {
		opts = append(opts, config.OptDatabaseUser(s))
	}
	if s := v.GetString("database_password"); s != "" {
		opts = append(opts, config.OptDatabasePassword(s))
	}
	if s := v.GetString("database_ssl_mode"); s != "" {
		opts = append(opts, config.OptDatabaseSSLMode(s))
	}
	opts = append(opts, config.OptDatabaseDatabase(TestDatabaseName))
	cfg.Update(opts)
	return &cfg.Database
}
