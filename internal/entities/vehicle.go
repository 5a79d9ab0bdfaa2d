package entities

type Vehicle struct {
	ID           int64
	LicensePlate string
	Type         VehicleType
	Status       VehicleStatusType
	Capacity     float64
}

type VehicleType string

const (
	VehicleTruck      VehicleType = "TRUCK"
	VehicleVan        VehicleType = "VAN"
	VehicleMotorcycle VehicleType = "MOTORCYCLE"
)

func (t VehicleType) String() string {
	return string(t)
}

func (t VehicleType) Valid() bool {
	switch t {
	case VehicleTruck, VehicleVan, VehicleMotorcycle:
		return true
	}
	return false
}

type VehicleStatusType string

const (
	VehicleAvailable        VehicleStatusType = "AVAILABLE"
	VehicleInTransit        VehicleStatusType = "IN_TRANSIT"
	VehicleUnderMaintenance VehicleStatusType = "UNDER_MAINTENANCE"
)

const DefaultVehicleStatus = VehicleAvailable

func (s VehicleStatusType) String() string {
	return string(s)
}

func (s VehicleStatusType) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleInTransit, VehicleUnderMaintenance:
		return true
	}
	return false
}

type VehicleModify struct {
	LicensePlate *string
	Type         *VehicleType
	Status       *VehicleStatusType
	Capacity     *float64
}
