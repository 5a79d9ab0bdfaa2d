package tracking

import (
	"slices"

	"dashboard/internal/entities"
)

var progressByStatus = map[entities.OrderStatusType]int{
	entities.OrderPending:   25,
	entities.OrderInTransit: 50,
	entities.OrderDelivered: 100,
	entities.OrderCanceled:  0,
}

// Reduce строит историю отслеживания заказа.
//
// Прогресс считается по статусу самого заказа, а не по последнему событию:
// расхождение между ними сохраняется как есть. Если order == nil, берется заказ
// из первого события в порядке поступления. events == nil означает, что история
// еще не загружена, пустой срез - что загружена и пуста.
func Reduce(order *entities.Order, events []entities.TrackingEvent) entities.TrackingHistory {
	if order == nil && len(events) > 0 {
		order = events[0].Order
	}

	history := entities.TrackingHistory{
		Order:        order,
		Availability: availability(events),
		State:        entities.ProgressActive,
	}

	if order != nil {
		history.Progress = Progress(order.Status)
		history.State = State(order.Status)
	}

	if events != nil {
		history.Events = slices.Clone(events)
		slices.SortStableFunc(history.Events, func(a, b entities.TrackingEvent) int {
			return a.Timestamp.Compare(b.Timestamp)
		})
	}

	return history
}

// Progress для неизвестных статусов равен 0.
func Progress(status entities.OrderStatusType) int {
	return progressByStatus[status]
}

func State(status entities.OrderStatusType) entities.ProgressState {
	switch status {
	case entities.OrderDelivered:
		return entities.ProgressSuccess
	case entities.OrderCanceled:
		return entities.ProgressException
	default:
		return entities.ProgressActive
	}
}

func availability(events []entities.TrackingEvent) entities.HistoryAvailability {
	switch {
	case events == nil:
		return entities.HistoryNotLoaded
	case len(events) == 0:
		return entities.HistoryEmpty
	default:
		return entities.HistoryReady
	}
}
