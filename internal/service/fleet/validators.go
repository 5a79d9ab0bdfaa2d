package fleet

import (
	"dashboard/internal/entities"
	"github.com/AlekSi/pointer"
)

type vehicleForm struct {
	LicensePlate string                     `name:"licensePlate" validate:"required"`
	Type         entities.VehicleType       `name:"type" validate:"enum"`
	Status       entities.VehicleStatusType `name:"status" validate:"enum"`
	Capacity     float64                    `name:"capacity" validate:"gt=0"`
}

func newVehicleForm(v entities.VehicleModify) vehicleForm {
	return vehicleForm{
		LicensePlate: pointer.Get(v.LicensePlate),
		Type:         pointer.Get(v.Type),
		Status:       pointer.Get(v.Status),
		Capacity:     pointer.Get(v.Capacity),
	}
}

type driverForm struct {
	Name          string                    `name:"name" validate:"required"`
	Phone         string                    `name:"phone" validate:"required"`
	Email         string                    `name:"email" validate:"omitempty,email"`
	LicenseNumber string                    `name:"licenseNumber" validate:"required"`
	Status        entities.DriverStatusType `name:"status" validate:"enum"`
	VehicleID     *int64                    `name:"vehicleId" validate:"omitempty,gt=0"`
}

func newDriverForm(d entities.DriverModify) driverForm {
	return driverForm{
		Name:          pointer.Get(d.Name),
		Phone:         pointer.Get(d.Phone),
		Email:         pointer.Get(d.Email),
		LicenseNumber: pointer.Get(d.LicenseNumber),
		Status:        pointer.Get(d.Status),
		VehicleID:     d.VehicleID,
	}
}

type clientForm struct {
	Name    string `name:"name" validate:"required"`
	Phone   string `name:"phone" validate:"required"`
	Email   string `name:"email" validate:"omitempty,email"`
	Address string `name:"address"`
}

func newClientForm(p entities.PartyModify) clientForm {
	return clientForm{
		Name:    pointer.Get(p.Name),
		Phone:   pointer.Get(p.Phone),
		Email:   pointer.Get(p.Email),
		Address: pointer.Get(p.Address),
	}
}
