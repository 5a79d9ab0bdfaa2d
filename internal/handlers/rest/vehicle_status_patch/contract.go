//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_status_patch_test
package vehicle_status_patch

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
	UpdateVehicleStatus(ctx context.Context, sess entities.Session, id int64, status entities.VehicleStatusType) error
}
