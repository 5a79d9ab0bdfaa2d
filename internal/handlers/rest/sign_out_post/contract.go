//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sign_out_post_test
package sign_out_post

import (
	"context"

	"dashboard/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SignOut(ctx context.Context, id string) error
}
