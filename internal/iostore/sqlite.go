package iostore

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnt2t/pkg/archive"
	"github.com/gnames/gnt2t/pkg/schema"
	_ "modernc.org/sqlite"
)

type sqliteStore struct {
	path string
	db   *sql.DB
}

// NewSQLite opens or creates an SQLite archive file.
func NewSQLite(path string) (archive.Archiver, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, OpenError(path, err)
	}
	db.SetMaxOpenConns(1)
	if _, err = db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, OpenError(path, err)
	}
	return &sqliteStore{path: path, db: db}, nil
}

func (s *sqliteStore) Save(ctx context.Context, a *schema.Archive) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SaveError(a.Run.ID, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, m := range schema.Generators() {
		stmts := append([]string{m.TableDDL()}, m.IndexDDL()...)
		for _, q := range stmts {
			if _, err = tx.ExecContext(ctx, q); err != nil {
				return SchemaError(m.TableName(), err)
			}
		}
	}

	stmts := make(map[string]*sql.Stmt)
	for _, r := range records(a) {
		st, ok := stmts[r.TableName()]
		if !ok {
			st, err = tx.PrepareContext(ctx, schema.InsertSQL(r))
			if err != nil {
				return SaveError(a.Run.ID, err)
			}
			defer st.Close()
			stmts[r.TableName()] = st
		}
		if _, err = st.ExecContext(ctx, schema.Values(r)...); err != nil {
			return SaveError(a.Run.ID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return SaveError(a.Run.ID, err)
	}
	slog.Info("Run is archived",
		"run", a.Run.ID,
		"nodes", humanize.Comma(int64(len(a.Nodes))),
		"lineages", humanize.Comma(int64(len(a.Lineages))),
	)
	return nil
}

func (s *sqliteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
