package entities

type Driver struct {
	ID            int64
	Name          string
	Phone         string
	Email         string
	LicenseNumber string
	Status        DriverStatusType
	Vehicle       *Vehicle
}

type DriverStatusType string

const (
	DriverActive    DriverStatusType = "ACTIVE"
	DriverInactive  DriverStatusType = "INACTIVE"
	DriverOnLeave   DriverStatusType = "ON_LEAVE"
	DriverSuspended DriverStatusType = "SUSPENDED"
)

const DefaultDriverStatus = DriverActive

func (s DriverStatusType) String() string {
	return string(s)
}

func (s DriverStatusType) Valid() bool {
	switch s {
	case DriverActive, DriverInactive, DriverOnLeave, DriverSuspended:
		return true
	}
	return false
}

type DriverModify struct {
	Name          *string
	Phone         *string
	Email         *string
	LicenseNumber *string
	Status        *DriverStatusType
	VehicleID     *int64
}
