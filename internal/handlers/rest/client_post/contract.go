//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=client_post_test
package client_post

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
	CreateClient(ctx context.Context, sess entities.Session, client entities.PartyModify) (*entities.Party, error)
}
