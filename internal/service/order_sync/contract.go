//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_sync_test
package order_sync

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type Backend interface {
	UpdateOrderStatus(ctx context.Context, token string, id int64, status entities.OrderStatusType) error
	UpdateTrackingStatus(ctx context.Context, token string, id int64, status entities.OrderStatusType) error
}

type Publisher interface {
	PublishOrderStatusChanged(ctx context.Context, event entities.OrderStatusChanged) error
}

type syncLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
