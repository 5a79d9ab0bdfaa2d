package entities

import "time"

type TrackingEvent struct {
	ID        int64
	OrderID   int64
	Status    OrderStatusType
	Location  string
	Timestamp time.Time
	// Order заполняется бэкендом в ответах отслеживания.
	Order *Order
}

type TrackingEventModify struct {
	OrderID  *int64
	Status   *OrderStatusType
	Location *string
}

type ProgressState string

const (
	ProgressActive    ProgressState = "active"
	ProgressSuccess   ProgressState = "success"
	ProgressException ProgressState = "exception"
)

type HistoryAvailability string

const (
	HistoryNotLoaded HistoryAvailability = "not_loaded"
	HistoryEmpty     HistoryAvailability = "empty"
	HistoryReady     HistoryAvailability = "ready"
)

// TrackingHistory - отображаемое состояние отслеживания заказа.
type TrackingHistory struct {
	Order        *Order
	Events       []TrackingEvent
	Progress     int
	State        ProgressState
	Availability HistoryAvailability
}

func (h TrackingHistory) HasData() bool {
	return h.Availability == HistoryReady
}

// Latest возвращает самое позднее событие. Events уже отсортированы по времени.
func (h TrackingHistory) Latest() (TrackingEvent, bool) {
	if len(h.Events) == 0 {
		return TrackingEvent{}, false
	}
	return h.Events[len(h.Events)-1], true
}
