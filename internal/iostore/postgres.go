package iostore

import (
	"context"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnt2t/pkg/archive"
	"github.com/gnames/gnt2t/pkg/db"
	"github.com/gnames/gnt2t/pkg/schema"
	"github.com/jackc/pgx/v5/stdlib"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type pgStore struct {
	operator  db.Operator
	batchSize int
}

// NewPostgres creates a PostgreSQL archive on a connected operator.
func NewPostgres(op db.Operator, batchSize int) archive.Archiver {
	return &pgStore{operator: op, batchSize: max(batchSize, 1)}
}

func (p *pgStore) openGorm() (*gorm.DB, error) {
	pool := p.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}
	return gorm.Open(
		postgres.New(postgres.Config{Conn: stdlib.OpenDBFromPool(pool)}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
}

func (p *pgStore) Save(ctx context.Context, a *schema.Archive) error {
	gormDB, err := p.openGorm()
	if err != nil {
		return err
	}
	gormDB = gormDB.WithContext(ctx)

	exists, err := p.operator.TableExists(ctx, schema.Run{}.TableName())
	if err != nil {
		return err
	}
	if !exists {
		slog.Info("Creating archive tables")
	}
	if err = schema.Migrate(gormDB); err != nil {
		return SchemaError("all", err)
	}

	err = gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&a.Run).Error; err != nil {
			return err
		}
		if len(a.Nodes) > 0 {
			if err := tx.CreateInBatches(a.Nodes, p.batchSize).Error; err != nil {
				return err
			}
		}
		if len(a.Lineages) > 0 {
			if err := tx.CreateInBatches(a.Lineages, p.batchSize).Error; err != nil {
				return err
			}
		}
		if len(a.Consistency) > 0 {
			return tx.CreateInBatches(a.Consistency, p.batchSize).Error
		}
		return nil
	})
	if err != nil {
		return SaveError(a.Run.ID, err)
	}
	slog.Info("Run is archived",
		"run", a.Run.ID,
		"nodes", humanize.Comma(int64(len(a.Nodes))),
		"lineages", humanize.Comma(int64(len(a.Lineages))),
	)
	return nil
}

func (p *pgStore) Close() error {
	return p.operator.Close()
}
