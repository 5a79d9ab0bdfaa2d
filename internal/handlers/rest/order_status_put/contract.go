//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_status_put_test
package order_status_put

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
	UpdateStatus(ctx context.Context, sess entities.Session, id int64, status entities.OrderStatusType) (*entities.Order, error)
}
