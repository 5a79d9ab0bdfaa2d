package entities

import "time"

// OrderStatusChanged публикуется после подтвержденной бэкендом смены статуса заказа.
type OrderStatusChanged struct {
	OrderID        int64
	PreviousStatus *OrderStatusType
	Status         OrderStatusType
	ChangedAt      time.Time
}
