//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fleet_test
package fleet

import (
	"context"

	"dashboard/internal/entities"
)

type Backend interface {
	ListVehicles(ctx context.Context, token string) ([]entities.Vehicle, error)
	CreateVehicle(ctx context.Context, token string, vehicle entities.VehicleModify) (*entities.Vehicle, error)
	UpdateVehicleStatus(ctx context.Context, token string, id int64, status entities.VehicleStatusType) error
	ListDrivers(ctx context.Context, token string) ([]entities.Driver, error)
	CreateDriver(ctx context.Context, token string, driver entities.DriverModify) (*entities.Driver, error)
	UpdateDriverStatus(ctx context.Context, token string, id int64, status entities.DriverStatusType) error
	ListClients(ctx context.Context, token string) ([]entities.Party, error)
	GetClient(ctx context.Context, token string, id int64) (*entities.Party, error)
	CreateClient(ctx context.Context, token string, client entities.PartyModify) (*entities.Party, error)
}

type Validator interface {
	Struct(form any) error
}
