package order

import (
	"dashboard/internal/entities"
	"github.com/AlekSi/pointer"
)

type orderForm struct {
	ClientID        int64   `name:"clientId" validate:"gt=0"`
	RecipientID     int64   `name:"recipientId" validate:"gt=0"`
	Description     string  `name:"description" validate:"required"`
	Weight          float64 `name:"weight" validate:"gt=0"`
	Volume          float64 `name:"volume" validate:"gt=0"`
	PickupAddress   string  `name:"pickupAddress" validate:"required"`
	DeliveryAddress string  `name:"deliveryAddress" validate:"required"`
	DriverID        *int64  `name:"driverId" validate:"omitempty,gt=0"`
	VehicleID       *int64  `name:"vehicleId" validate:"omitempty,gt=0"`
}

func newOrderForm(create entities.OrderCreate) orderForm {
	return orderForm{
		ClientID:        pointer.Get(create.Cargo.ClientID),
		RecipientID:     pointer.Get(create.Cargo.RecipientID),
		Description:     pointer.Get(create.Cargo.Description),
		Weight:          pointer.Get(create.Cargo.Weight),
		Volume:          pointer.Get(create.Cargo.Volume),
		PickupAddress:   pointer.Get(create.Cargo.PickupAddress),
		DeliveryAddress: pointer.Get(create.Cargo.DeliveryAddress),
		DriverID:        create.DriverID,
		VehicleID:       create.VehicleID,
	}
}
