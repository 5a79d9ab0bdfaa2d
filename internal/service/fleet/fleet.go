// Package fleet - справочники кабинета администратора: транспорт, водители, клиенты.
package fleet

import (
	"context"
	"fmt"

	"dashboard/internal/entities"
	"github.com/AlekSi/pointer"
)

type Service struct {
	backend   Backend
	validator Validator
}

func New(backend Backend, validator Validator) *Service {
	return &Service{
		backend:   backend,
		validator: validator,
	}
}

func (s *Service) Vehicles(ctx context.Context, sess entities.Session) ([]entities.Vehicle, error) {
	vehicles, err := s.backend.ListVehicles(ctx, sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}
	return vehicles, nil
}

// CreateVehicle без статуса создает транспорт в статусе AVAILABLE.
func (s *Service) CreateVehicle(ctx context.Context, sess entities.Session, vehicle entities.VehicleModify) (*entities.Vehicle, error) {
	if vehicle.Status == nil {
		vehicle.Status = pointer.To(entities.DefaultVehicleStatus)
	}

	if err := s.validator.Struct(newVehicleForm(vehicle)); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateVehicle(ctx, sess.AccessToken, vehicle)
	if err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateVehicleStatus(ctx context.Context, sess entities.Session, id int64, status entities.VehicleStatusType) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidVehicleStatus, status)
	}

	if err := s.backend.UpdateVehicleStatus(ctx, sess.AccessToken, id, status); err != nil {
		return fmt.Errorf("update vehicle %d status: %w", id, err)
	}
	return nil
}

func (s *Service) Drivers(ctx context.Context, sess entities.Session) ([]entities.Driver, error) {
	drivers, err := s.backend.ListDrivers(ctx, sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}

// CreateDriver без статуса создает водителя в статусе ACTIVE.
func (s *Service) CreateDriver(ctx context.Context, sess entities.Session, driver entities.DriverModify) (*entities.Driver, error) {
	if driver.Status == nil {
		driver.Status = pointer.To(entities.DefaultDriverStatus)
	}

	if err := s.validator.Struct(newDriverForm(driver)); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateDriver(ctx, sess.AccessToken, driver)
	if err != nil {
		return nil, fmt.Errorf("create driver: %w", err)
	}
	return created, nil
}

func (s *Service) UpdateDriverStatus(ctx context.Context, sess entities.Session, id int64, status entities.DriverStatusType) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidDriverStatus, status)
	}

	if err := s.backend.UpdateDriverStatus(ctx, sess.AccessToken, id, status); err != nil {
		return fmt.Errorf("update driver %d status: %w", id, err)
	}
	return nil
}

func (s *Service) Clients(ctx context.Context, sess entities.Session) ([]entities.Party, error) {
	clients, err := s.backend.ListClients(ctx, sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (s *Service) Client(ctx context.Context, sess entities.Session, id int64) (*entities.Party, error) {
	client, err := s.backend.GetClient(ctx, sess.AccessToken, id)
	if err != nil {
		return nil, fmt.Errorf("get client %d: %w", id, err)
	}
	return client, nil
}

func (s *Service) CreateClient(ctx context.Context, sess entities.Session, client entities.PartyModify) (*entities.Party, error) {
	if err := s.validator.Struct(newClientForm(client)); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateClient(ctx, sess.AccessToken, client)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}
	return created, nil
}
