package backend

import (
	"dashboard/internal/entities"
	"github.com/AlekSi/pointer"
)

// legacyShipped - код из старой формы отслеживания, означает то же, что IN_TRANSIT.
const legacyShipped = "SHIPPED"

// toOrderStatus нормализует устаревший код, остальные неизвестные коды сохраняются как есть.
func toOrderStatus(raw string) entities.OrderStatusType {
	if raw == legacyShipped {
		return entities.OrderInTransit
	}
	return entities.OrderStatusType(raw)
}

func toParty(dto *partyDTO) entities.Party {
	if dto == nil {
		return entities.Party{}
	}
	return entities.Party{
		ID:      int64(dto.ID),
		Name:    dto.Name,
		Phone:   dto.Phone,
		Email:   dto.Email,
		Address: dto.Address,
	}
}

func toCargo(dto *cargoDTO) entities.Cargo {
	if dto == nil {
		return entities.Cargo{}
	}
	return entities.Cargo{
		ID:              int64(dto.ID),
		Description:     dto.Description,
		Weight:          dto.Weight,
		Volume:          dto.Volume,
		PickupAddress:   dto.PickupAddress,
		DeliveryAddress: dto.DeliveryAddress,
		Client:          toParty(dto.Client),
		Recipient:       toParty(dto.Recipient),
	}
}

func toVehicle(dto *vehicleDTO) *entities.Vehicle {
	if dto == nil {
		return nil
	}
	return &entities.Vehicle{
		ID:           int64(dto.ID),
		LicensePlate: dto.LicensePlate,
		Type:         entities.VehicleType(dto.Type),
		Status:       entities.VehicleStatusType(dto.Status),
		Capacity:     dto.Capacity,
	}
}

func toDriver(dto *driverDTO) *entities.Driver {
	if dto == nil {
		return nil
	}
	return &entities.Driver{
		ID:            int64(dto.ID),
		Name:          dto.Name,
		Phone:         dto.Phone,
		Email:         dto.Email,
		LicenseNumber: dto.LicenseNumber,
		Status:        entities.DriverStatusType(dto.Status),
		Vehicle:       toVehicle(dto.Vehicle),
	}
}

func toOrder(dto *orderDTO) *entities.Order {
	if dto == nil {
		return nil
	}
	return &entities.Order{
		ID:        int64(dto.ID),
		Status:    toOrderStatus(dto.Status),
		OrderDate: dto.OrderDate.Time,
		Cargo:     toCargo(dto.Cargo),
		Driver:    toDriver(dto.Driver),
		Vehicle:   toVehicle(dto.Vehicle),
	}
}

func toTrackingEvent(dto *trackingDTO) entities.TrackingEvent {
	event := entities.TrackingEvent{
		ID:        int64(dto.ID),
		Status:    toOrderStatus(dto.Status),
		Location:  dto.Location,
		Timestamp: dto.Timestamp.Time,
		Order:     toOrder(dto.Order),
	}

	switch {
	case dto.OrderID != nil:
		event.OrderID = int64(*dto.OrderID)
	case event.Order != nil:
		event.OrderID = event.Order.ID
	}
	return event
}

func toAuthGrant(dto authDTO) *entities.AuthGrant {
	grant := &entities.AuthGrant{
		AccessToken: dto.AccessToken,
		IsAdmin:     dto.IsAdmin,
	}
	if dto.UserID != nil {
		grant.UserID = pointer.To(int64(*dto.UserID))
	}
	return grant
}

func toOrders(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for i := range dtos {
		orders = append(orders, *toOrder(&dtos[i]))
	}
	return orders
}

func toTrackingEvents(dtos []trackingDTO) []entities.TrackingEvent {
	events := make([]entities.TrackingEvent, 0, len(dtos))
	for i := range dtos {
		events = append(events, toTrackingEvent(&dtos[i]))
	}
	return events
}

func toVehicles(dtos []vehicleDTO) []entities.Vehicle {
	vehicles := make([]entities.Vehicle, 0, len(dtos))
	for i := range dtos {
		vehicles = append(vehicles, *toVehicle(&dtos[i]))
	}
	return vehicles
}

func toDrivers(dtos []driverDTO) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(dtos))
	for i := range dtos {
		drivers = append(drivers, *toDriver(&dtos[i]))
	}
	return drivers
}

func toParties(dtos []partyDTO) []entities.Party {
	parties := make([]entities.Party, 0, len(dtos))
	for i := range dtos {
		parties = append(parties, toParty(&dtos[i]))
	}
	return parties
}

func fromCargoModify(m entities.CargoModify) cargoRequest {
	return cargoRequest{
		ClientID:        pointer.Get(m.ClientID),
		RecipientID:     pointer.Get(m.RecipientID),
		Description:     pointer.Get(m.Description),
		Weight:          pointer.Get(m.Weight),
		Volume:          pointer.Get(m.Volume),
		PickupAddress:   pointer.Get(m.PickupAddress),
		DeliveryAddress: pointer.Get(m.DeliveryAddress),
	}
}

func fromOrderModify(m entities.OrderModify) orderRequest {
	return orderRequest{
		CargoID:   pointer.Get(m.CargoID),
		DriverID:  m.DriverID,
		VehicleID: m.VehicleID,
		Status:    pointer.Get(m.Status).String(),
	}
}

func fromTrackingModify(m entities.TrackingEventModify) trackingRequest {
	return trackingRequest{
		OrderID:  pointer.Get(m.OrderID),
		Status:   pointer.Get(m.Status).String(),
		Location: pointer.Get(m.Location),
	}
}

func fromVehicleModify(m entities.VehicleModify) vehicleRequest {
	return vehicleRequest{
		LicensePlate: pointer.Get(m.LicensePlate),
		Type:         pointer.Get(m.Type).String(),
		Status:       pointer.Get(m.Status).String(),
		Capacity:     pointer.Get(m.Capacity),
	}
}

func fromDriverModify(m entities.DriverModify) driverRequest {
	return driverRequest{
		Name:          pointer.Get(m.Name),
		Phone:         pointer.Get(m.Phone),
		Email:         pointer.Get(m.Email),
		LicenseNumber: pointer.Get(m.LicenseNumber),
		Status:        pointer.Get(m.Status).String(),
		VehicleID:     m.VehicleID,
	}
}

func fromPartyModify(m entities.PartyModify) clientRequest {
	return clientRequest{
		Name:    pointer.Get(m.Name),
		Phone:   pointer.Get(m.Phone),
		Email:   pointer.Get(m.Email),
		Address: pointer.Get(m.Address),
	}
}
