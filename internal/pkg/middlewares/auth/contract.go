//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type SessionLoader interface {
	Load(ctx context.Context, id string) (*entities.Session, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
