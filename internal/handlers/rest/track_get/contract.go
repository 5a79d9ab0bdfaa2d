//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=track_get_test
package track_get

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
	Track(ctx context.Context, orderID int64) (entities.TrackingHistory, error)
}
