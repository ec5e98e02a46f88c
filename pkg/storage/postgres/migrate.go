package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"skychart"
	"skychart/pkg/logger"
	"skychart/pkg/storage"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate brings the chart tables and the river queue tables to their latest
// versions. Both are idempotent.
func (p *PgSQL) Migrate(ctx context.Context) error {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return storage.ErrAlreadyInTx
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, skychart.MigrationsFS())
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not migrate charts: %w", err)
	}
	for _, r := range results {
		logger.Info(ctx, "applied migration",
			zap.Int64("version", r.Source.Version),
			zap.Duration("duration", r.Duration))
	}

	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}
	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration", zap.Int("version", v.Version))
	}

	return nil
}
