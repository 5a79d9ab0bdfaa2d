package postgres

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/probe"
	"dashboard/pkg/logger"
	"dashboard/pkg/retrier"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	maxConns        = 10
	minConns        = 2
	maxConnLifetime = time.Hour

	probeInitialInterval = 5 * time.Second
	probeMaxElapsedTime  = 2 * time.Minute
)

func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parse database config: %w", err)
	}
	poolCfg.MaxConns = maxConns
	poolCfg.MinConns = minConns
	poolCfg.MaxConnLifetime = maxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
	)

	err = probe.Wait(ctx, dbLog, "postgres", retrier.Probe(probeInitialInterval, probeMaxElapsedTime), pool.Ping)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}
