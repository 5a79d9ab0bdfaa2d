package integration_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/postgres"
	"dashboard/migrations"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/querier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	setupErr        error
	setupOnce       sync.Once
)

func setup() {
	// переменные окружения подгружает Makefile из .env.test
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}

	ctx := context.Background()
	log := zap_adapter.NewNop()

	poolInstance, setupErr = postgres.NewConnPool(ctx, log, cfg)
	if setupErr != nil {
		return
	}

	setupErr = postgres.Migrate(ctx, log, poolInstance, migrations.FS)
	if setupErr != nil {
		return
	}

	querierInstance = querier.New(poolInstance, pgxv5.DefaultCtxGetter)
}

func GetQuerier(t *testing.T) *querier.Querier {
	t.Helper()

	setupOnce.Do(setup)
	require.NoError(t, setupErr)
	return querierInstance
}

func GetPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	setupOnce.Do(setup)
	require.NoError(t, setupErr)
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := GetQuerier(t)
	if setupSql == "" {
		return
	}
	_, err := q.Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier(t).Exec(ctx, `TRUNCATE TABLE sessions;`)
	require.NoError(t, err)
}
