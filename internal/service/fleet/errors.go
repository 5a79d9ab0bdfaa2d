package fleet

import "errors"

var (
	ErrInvalidVehicleStatus = errors.New("invalid vehicle status")
	ErrInvalidDriverStatus  = errors.New("invalid driver status")
)
