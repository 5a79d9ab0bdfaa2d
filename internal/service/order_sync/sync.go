// Package order_sync держит загруженные сессией коллекции и применяет к ним
// изменения только после успешного ответа бэкенда.
package order_sync

import (
	"context"
	"fmt"
	"time"

	"dashboard/internal/entities"
	"dashboard/pkg/logger"
)

type Sync struct {
	log       syncLogger
	backend   Backend
	publisher Publisher
	now       func() time.Time
}

func New(log syncLogger, backend Backend, publisher Publisher) *Sync {
	return &Sync{
		log:       log,
		backend:   backend,
		publisher: publisher,
		now:       time.Now,
	}
}

// UpdateOrderStatus отправляет новый статус бэкенду и при успехе меняет заказ
// в представлении. Ошибка бэкенда возвращается, представление не трогается.
// Если заказа нет в представлении или оно закрыто, возвращается nil без ошибки.
func (s *Sync) UpdateOrderStatus(
	ctx context.Context,
	view *View,
	token string,
	id int64,
	status entities.OrderStatusType,
) (*entities.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.backend.UpdateOrderStatus(ctx, token, id, status); err != nil {
		PatchesTotal.WithLabelValues("order", "failed").Inc()
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}

	order, previous := view.patchOrderStatus(id, status)
	if order == nil {
		PatchesTotal.WithLabelValues("order", "skipped").Inc()
	} else {
		PatchesTotal.WithLabelValues("order", "applied").Inc()
	}

	s.publish(ctx, entities.OrderStatusChanged{
		OrderID:        id,
		PreviousStatus: previous,
		Status:         status,
		ChangedAt:      s.now(),
	})

	return order, nil
}

func (s *Sync) UpdateTrackingStatus(
	ctx context.Context,
	view *View,
	token string,
	id int64,
	status entities.OrderStatusType,
) (*entities.TrackingEvent, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	if err := s.backend.UpdateTrackingStatus(ctx, token, id, status); err != nil {
		PatchesTotal.WithLabelValues("tracking", "failed").Inc()
		return nil, fmt.Errorf("update tracking %d status: %w", id, err)
	}

	event := view.patchTrackingStatus(id, status)
	if event == nil {
		PatchesTotal.WithLabelValues("tracking", "skipped").Inc()
	} else {
		PatchesTotal.WithLabelValues("tracking", "applied").Inc()
	}
	return event, nil
}

// AppendOrder добавляет созданный на бэкенде заказ в загруженный список.
func (s *Sync) AppendOrder(view *View, order entities.Order) bool {
	return view.appendOrder(order)
}

func (s *Sync) AppendTracking(view *View, event entities.TrackingEvent) bool {
	return view.appendTracking(event)
}

func (s *Sync) publish(ctx context.Context, event entities.OrderStatusChanged) {
	if s.publisher == nil {
		return
	}

	if err := s.publisher.PublishOrderStatusChanged(ctx, event); err != nil {
		s.log.With(
			logger.NewField("order_id", event.OrderID),
			logger.NewField("status", event.Status.String()),
			logger.NewField("error", err),
		).Warn("publish order status changed")
	}
}
