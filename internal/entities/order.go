package entities

import "time"

type Order struct {
	ID        int64
	Status    OrderStatusType
	OrderDate time.Time
	Cargo     Cargo
	Driver    *Driver
	Vehicle   *Vehicle
}

// OrderStatusType общий для заказов и событий отслеживания.
type OrderStatusType string

const (
	OrderPending   OrderStatusType = "PENDING"
	OrderInTransit OrderStatusType = "IN_TRANSIT"
	OrderDelivered OrderStatusType = "DELIVERED"
	OrderCanceled  OrderStatusType = "CANCELED"
)

const DefaultOrderStatus = OrderPending

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) Valid() bool {
	switch s {
	case OrderPending, OrderInTransit, OrderDelivered, OrderCanceled:
		return true
	}
	return false
}

type OrderModify struct {
	CargoID   *int64
	DriverID  *int64
	VehicleID *int64
	Status    *OrderStatusType
}

// OrderCreate - форма создания заказа: груз создается первым, затем сам заказ.
type OrderCreate struct {
	Cargo     CargoModify
	DriverID  *int64
	VehicleID *int64
}
