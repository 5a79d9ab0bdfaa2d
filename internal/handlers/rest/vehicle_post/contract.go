//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_post_test
package vehicle_post

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
	CreateVehicle(ctx context.Context, sess entities.Session, vehicle entities.VehicleModify) (*entities.Vehicle, error)
}
