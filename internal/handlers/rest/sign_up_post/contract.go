//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sign_up_post_test
package sign_up_post

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
	SignUp(ctx context.Context, registration entities.Registration) (*entities.Session, error)
}
