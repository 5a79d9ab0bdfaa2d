// Package presenter переводит сущности в ответы API с подписями для интерфейса.
package presenter

import (
	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/service/translator"
)

func Client(p entities.Party) dto.Client {
	return dto.Client{
		ID:      p.ID,
		Name:    p.Name,
		Phone:   p.Phone,
		Email:   p.Email,
		Address: p.Address,
	}
}

func Clients(parties []entities.Party) []dto.Client {
	res := make([]dto.Client, 0, len(parties))
	for _, p := range parties {
		res = append(res, Client(p))
	}
	return res
}

func Vehicle(v entities.Vehicle) dto.Vehicle {
	return dto.Vehicle{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Type:         v.Type.String(),
		TypeLabel:    translator.VehicleType(v.Type),
		Status:       v.Status.String(),
		StatusLabel:  translator.VehicleStatus(v.Status),
		Capacity:     v.Capacity,
	}
}

func Vehicles(vehicles []entities.Vehicle) []dto.Vehicle {
	res := make([]dto.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		res = append(res, Vehicle(v))
	}
	return res
}

func Driver(d entities.Driver) dto.Driver {
	res := dto.Driver{
		ID:            d.ID,
		Name:          d.Name,
		Phone:         d.Phone,
		Email:         d.Email,
		LicenseNumber: d.LicenseNumber,
		Status:        d.Status.String(),
		StatusLabel:   translator.DriverStatus(d.Status),
	}
	if d.Vehicle != nil {
		vehicle := Vehicle(*d.Vehicle)
		res.Vehicle = &vehicle
	}
	return res
}

func Drivers(drivers []entities.Driver) []dto.Driver {
	res := make([]dto.Driver, 0, len(drivers))
	for _, d := range drivers {
		res = append(res, Driver(d))
	}
	return res
}

func Order(o entities.Order) dto.Order {
	res := dto.Order{
		ID:          o.ID,
		Status:      o.Status.String(),
		StatusLabel: translator.OrderStatus(o.Status),
		OrderDate:   o.OrderDate,
		Cargo: dto.Cargo{
			ID:              o.Cargo.ID,
			Description:     o.Cargo.Description,
			Weight:          o.Cargo.Weight,
			Volume:          o.Cargo.Volume,
			PickupAddress:   o.Cargo.PickupAddress,
			DeliveryAddress: o.Cargo.DeliveryAddress,
			Client:          Client(o.Cargo.Client),
			Recipient:       Client(o.Cargo.Recipient),
		},
	}
	if o.Driver != nil {
		driver := Driver(*o.Driver)
		res.Driver = &driver
	}
	if o.Vehicle != nil {
		vehicle := Vehicle(*o.Vehicle)
		res.Vehicle = &vehicle
	}
	return res
}

func Orders(orders []entities.Order) []dto.Order {
	res := make([]dto.Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, Order(o))
	}
	return res
}

func TrackingEvent(e entities.TrackingEvent) dto.TrackingEvent {
	return dto.TrackingEvent{
		ID:          e.ID,
		OrderID:     e.OrderID,
		Status:      e.Status.String(),
		StatusLabel: translator.OrderStatus(e.Status),
		Location:    e.Location,
		Timestamp:   e.Timestamp,
	}
}

func TrackingEvents(events []entities.TrackingEvent) []dto.TrackingEvent {
	res := make([]dto.TrackingEvent, 0, len(events))
	for _, e := range events {
		res = append(res, TrackingEvent(e))
	}
	return res
}

// TrackingHistory: events всегда массив, даже для незагруженной истории.
func TrackingHistory(h entities.TrackingHistory) dto.TrackingHistory {
	res := dto.TrackingHistory{
		Events:        TrackingEvents(h.Events),
		Progress:      h.Progress,
		ProgressState: string(h.State),
		Availability:  string(h.Availability),
		HasData:       h.HasData(),
	}
	if h.Order != nil {
		order := Order(*h.Order)
		res.Order = &order
	}
	if latest, ok := h.Latest(); ok {
		event := TrackingEvent(latest)
		res.Latest = &event
	}
	return res
}

func Auth(s entities.Session) dto.AuthResponse {
	return dto.AuthResponse{
		SessionID: s.ID,
		IsAdmin:   s.IsAdmin,
		UserID:    s.UserID,
	}
}
