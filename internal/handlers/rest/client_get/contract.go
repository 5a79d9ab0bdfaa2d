//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_get_test
package client_get

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Client(ctx context.Context, sess entities.Session, id int64) (*entities.Party, error)
}
