package postgres

import (
	"context"
	"fmt"
	"io/fs"

	"dashboard/pkg/logger"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate накатывает goose миграции из fsys на базу пула.
func Migrate(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, fsys fs.FS) error {
	db := stdlib.OpenDBFromPool(pool)
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("close migration connection", logger.NewField("error", err))
		}
	}()

	goose.SetBaseFS(fsys)
	goose.SetLogger(goose.NopLogger())
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("read migration version: %w", err)
	}

	log.With(logger.NewField("version", version)).Info("database migrations applied")
	return nil
}
