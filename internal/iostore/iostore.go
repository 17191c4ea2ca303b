// Package iostore archives decoration runs in SQLite or PostgreSQL.
package iostore

import (
	"context"
	"log/slog"

	"github.com/gnames/gnt2t/internal/iodb"
	"github.com/gnames/gnt2t/pkg/archive"
	"github.com/gnames/gnt2t/pkg/config"
	"github.com/gnames/gnt2t/pkg/schema"
)

// New creates an archiver for the backend selected in Output settings.
// It returns nil for the "none" backend.
func New(ctx context.Context, cfg *config.Config) (archive.Archiver, error) {
	switch cfg.Output.Archive {
	case "none", "":
		return nil, nil
	case "sqlite":
		path := cfg.ArchiveFilePath()
		slog.Info("Archiving to SQLite", "path", path)
		return NewSQLite(path)
	case "postgres":
		op := iodb.NewPgxOperator()
		if err := op.Connect(ctx, &cfg.Database); err != nil {
			return nil, err
		}
		slog.Info("Archiving to PostgreSQL",
			"host", cfg.Database.Host, "database", cfg.Database.Database)
		return NewPostgres(op, cfg.Database.BatchSize), nil
	default:
		return nil, BackendError(cfg.Output.Archive)
	}
}

// records flattens an archive into models in insertion order.
func records(a *schema.Archive) []schema.DDLGenerator {
	res := make([]schema.DDLGenerator, 0,
		1+len(a.Nodes)+len(a.Lineages)+len(a.Consistency))
	res = append(res, a.Run)
	for _, v := range a.Nodes {
		res = append(res, v)
	}
	for _, v := range a.Lineages {
		res = append(res, v)
	}
	for _, v := range a.Consistency {
		res = append(res, v)
	}
	return res
}
