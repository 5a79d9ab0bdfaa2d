package order_sync

import (
	"slices"
	"sync"
	"time"

	"dashboard/internal/entities"
)

// View - коллекции заказов и событий отслеживания, загруженные одной сессией.
// Срезы внутри не изменяются на месте: каждое изменение создает новую копию.
type View struct {
	mu         sync.Mutex
	orders     []entities.Order
	tracking   map[int64][]entities.TrackingEvent
	closed     bool
	lastAccess time.Time
}

func NewView() *View {
	return &View{
		tracking:   make(map[int64][]entities.TrackingEvent),
		lastAccess: time.Now(),
	}
}

// Orders возвращает копию списка заказов. loaded == false, пока список не загружался.
func (v *View) Orders() (orders []entities.Order, loaded bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.orders == nil {
		return nil, false
	}
	return slices.Clone(v.orders), true
}

// ReplaceOrders кладет свежий список с бэкенда. На закрытом представлении ничего не делает.
func (v *View) ReplaceOrders(orders []entities.Order) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	if orders == nil {
		orders = []entities.Order{}
	}
	v.orders = slices.Clone(orders)
}

func (v *View) Tracking(orderID int64) (events []entities.TrackingEvent, loaded bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	events, loaded = v.tracking[orderID]
	if !loaded {
		return nil, false
	}
	return slices.Clone(events), true
}

func (v *View) ReplaceTracking(orderID int64, events []entities.TrackingEvent) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return
	}
	if events == nil {
		events = []entities.TrackingEvent{}
	}
	v.tracking[orderID] = slices.Clone(events)
}

func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
	v.orders = nil
	v.tracking = make(map[int64][]entities.TrackingEvent)
}

func (v *View) Closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.closed
}

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.lastAccess = now
}

func (v *View) idleSince(now time.Time) time.Duration {
	v.mu.Lock()
	defer v.mu.Unlock()

	return now.Sub(v.lastAccess)
}

// patchOrderStatus меняет статус ровно одного заказа. Возвращает обновленный
// заказ и предыдущий статус, если заказ есть в представлении.
func (v *View) patchOrderStatus(id int64, status entities.OrderStatusType) (*entities.Order, *entities.OrderStatusType) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil, nil
	}

	idx := slices.IndexFunc(v.orders, func(o entities.Order) bool { return o.ID == id })
	if idx < 0 {
		return nil, nil
	}

	patched := slices.Clone(v.orders)
	previous := patched[idx].Status
	patched[idx].Status = status
	v.orders = patched

	order := patched[idx]
	return &order, &previous
}

func (v *View) patchTrackingStatus(id int64, status entities.OrderStatusType) *entities.TrackingEvent {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return nil
	}

	for orderID, events := range v.tracking {
		idx := slices.IndexFunc(events, func(e entities.TrackingEvent) bool { return e.ID == id })
		if idx < 0 {
			continue
		}

		patched := slices.Clone(events)
		patched[idx].Status = status
		v.tracking[orderID] = patched

		event := patched[idx]
		return &event
	}
	return nil
}

// appendOrder добавляет созданный заказ только в уже загруженный список.
func (v *View) appendOrder(order entities.Order) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed || v.orders == nil {
		return false
	}

	v.orders = append(slices.Clip(v.orders), order)
	return true
}

func (v *View) appendTracking(event entities.TrackingEvent) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	events, loaded := v.tracking[event.OrderID]
	if v.closed || !loaded {
		return false
	}

	v.tracking[event.OrderID] = append(slices.Clip(events), event)
	return true
}
