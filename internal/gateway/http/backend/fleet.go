package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"dashboard/internal/entities"
)

func (g *Gateway) ListVehicles(ctx context.Context, token string) ([]entities.Vehicle, error) {
	var dtos []vehicleDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/vehicles",
		path:   "/api/v1/vehicles",
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toVehicles(dtos), nil
}

func (g *Gateway) CreateVehicle(ctx context.Context, token string, vehicle entities.VehicleModify) (*entities.Vehicle, error) {
	var dto vehicleDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/vehicles",
		path:   "/api/v1/vehicles",
		token:  token,
		body:   fromVehicleModify(vehicle),
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toVehicle(&dto), nil
}

func (g *Gateway) UpdateVehicleStatus(ctx context.Context, token string, id int64, status entities.VehicleStatusType) error {
	return g.execute(ctx, request{
		method: http.MethodPatch,
		route:  "/api/v1/vehicles/{id}/status",
		path:   statusPath("/api/v1/vehicles/%d/status", id, status.String()),
		token:  token,
	}, nil)
}

func (g *Gateway) ListDrivers(ctx context.Context, token string) ([]entities.Driver, error) {
	var dtos []driverDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/drivers",
		path:   "/api/v1/drivers",
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toDrivers(dtos), nil
}

func (g *Gateway) CreateDriver(ctx context.Context, token string, driver entities.DriverModify) (*entities.Driver, error) {
	var dto driverDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/drivers",
		path:   "/api/v1/drivers",
		token:  token,
		body:   fromDriverModify(driver),
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toDriver(&dto), nil
}

func (g *Gateway) UpdateDriverStatus(ctx context.Context, token string, id int64, status entities.DriverStatusType) error {
	return g.execute(ctx, request{
		method: http.MethodPatch,
		route:  "/api/v1/drivers/{id}/status",
		path:   statusPath("/api/v1/drivers/%d/status", id, status.String()),
		token:  token,
	}, nil)
}

func (g *Gateway) ListClients(ctx context.Context, token string) ([]entities.Party, error) {
	var dtos []partyDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/clients",
		path:   "/api/v1/clients",
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toParties(dtos), nil
}

func (g *Gateway) GetClient(ctx context.Context, token string, id int64) (*entities.Party, error) {
	var dto partyDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/clients/{id}",
		path:   idPath("/api/v1/clients/%d", id),
		token:  token,
	}, &dto)
	if err != nil {
		return nil, err
	}

	client := toParty(&dto)
	return &client, nil
}

func (g *Gateway) CreateClient(ctx context.Context, token string, client entities.PartyModify) (*entities.Party, error) {
	var dto partyDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/clients",
		path:   "/api/v1/clients",
		token:  token,
		body:   fromPartyModify(client),
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := toParty(&dto)
	return &created, nil
}

func statusPath(format string, id int64, status string) string {
	return fmt.Sprintf(format, id) + "?" + url.Values{"status": {status}}.Encode()
}
