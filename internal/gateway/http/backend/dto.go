package backend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// flexibleID принимает id и числом, и строкой с числом.
type flexibleID int64

func (id *flexibleID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("decode id %s: %w", data, err)
		}
	}
	if raw == "" {
		return nil
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("decode id %q: %w", raw, err)
	}
	*id = flexibleID(v)
	return nil
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// flexibleTime понимает даты с зоной и без нее, без зоны считается UTC.
type flexibleTime struct {
	time.Time
}

func (t *flexibleTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode time %s: %w", data, err)
	}
	if raw == "" {
		return nil
	}

	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("decode time %q: unsupported layout", raw)
}

type partyDTO struct {
	ID      flexibleID `json:"id"`
	Name    string     `json:"name"`
	Phone   string     `json:"phone"`
	Email   string     `json:"email"`
	Address string     `json:"address"`
}

type cargoDTO struct {
	ID              flexibleID `json:"id"`
	Description     string     `json:"description"`
	Weight          float64    `json:"weight"`
	Volume          float64    `json:"volume"`
	PickupAddress   string     `json:"pickupAddress"`
	DeliveryAddress string     `json:"deliveryAddress"`
	Client          *partyDTO  `json:"client"`
	Recipient       *partyDTO  `json:"recipient"`
}

type vehicleDTO struct {
	ID           flexibleID `json:"id"`
	LicensePlate string     `json:"licensePlate"`
	Type         string     `json:"type"`
	Status       string     `json:"status"`
	Capacity     float64    `json:"capacity"`
}

type driverDTO struct {
	ID            flexibleID  `json:"id"`
	Name          string      `json:"name"`
	Phone         string      `json:"phone"`
	Email         string      `json:"email"`
	LicenseNumber string      `json:"licenseNumber"`
	Status        string      `json:"status"`
	Vehicle       *vehicleDTO `json:"vehicle"`
}

type orderDTO struct {
	ID        flexibleID   `json:"id"`
	Status    string       `json:"status"`
	OrderDate flexibleTime `json:"orderDate"`
	Cargo     *cargoDTO    `json:"cargo"`
	Driver    *driverDTO   `json:"driver"`
	Vehicle   *vehicleDTO  `json:"vehicle"`
}

type trackingDTO struct {
	ID        flexibleID   `json:"id"`
	OrderID   *flexibleID  `json:"orderId"`
	Order     *orderDTO    `json:"order"`
	Status    string       `json:"status"`
	Location  string       `json:"location"`
	Timestamp flexibleTime `json:"timestamp"`
}

type authDTO struct {
	AccessToken string      `json:"accessToken"`
	IsAdmin     bool        `json:"isAdmin"`
	UserID      *flexibleID `json:"userId"`
}

type cargoRequest struct {
	ClientID        int64   `json:"clientId"`
	RecipientID     int64   `json:"recipientId"`
	Description     string  `json:"description"`
	Weight          float64 `json:"weight"`
	Volume          float64 `json:"volume"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
}

type orderRequest struct {
	CargoID   int64  `json:"cargoId"`
	DriverID  *int64 `json:"driverId,omitempty"`
	VehicleID *int64 `json:"vehicleId,omitempty"`
	Status    string `json:"status"`
}

type trackingRequest struct {
	OrderID  int64  `json:"orderId"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

type vehicleRequest struct {
	LicensePlate string  `json:"licensePlate"`
	Type         string  `json:"type"`
	Status       string  `json:"status"`
	Capacity     float64 `json:"capacity"`
}

type driverRequest struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	LicenseNumber string `json:"licenseNumber"`
	Status        string `json:"status"`
	VehicleID     *int64 `json:"vehicleId,omitempty"`
}

type clientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}
