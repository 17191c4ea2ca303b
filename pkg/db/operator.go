// Package db defines the database operator used by the PostgreSQL
// archive.
package db

import (
	"context"

	"github.com/gnames/gnt2t/pkg/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Operator manages a connection pool to PostgreSQL. The pool is exposed
// for components that run their own queries, like GORM migrations and
// batched inserts of the archive.
type Operator interface {
	// Connect establishes a connection pool to the database.
	Connect(context.Context, *config.DatabaseConfig) error

	// Close closes the database connection pool.
	Close() error

	// Pool returns the underlying pgxpool.Pool, nil before Connect.
	Pool() *pgxpool.Pool

	// TableExists checks if a table exists in the database.
	TableExists(ctx context.Context, tableName string) (bool, error)
}
