package tracking

import (
	"context"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/internal/service/order_sync"
)

type Service struct {
	backend   Backend
	views     Views
	sync      Sync
	validator Validator
}

func New(backend Backend, views Views, sync Sync, validator Validator) *Service {
	return &Service{
		backend:   backend,
		views:     views,
		sync:      sync,
		validator: validator,
	}
}

// History - отслеживание заказа в кабинете. События кешируются в представлении
// сессии, заказ берется из загруженного списка, если он там есть.
func (s *Service) History(ctx context.Context, sess entities.Session, orderID int64, refresh bool) (entities.TrackingHistory, error) {
	view := s.views.View(sess.ID)

	events, loaded := view.Tracking(orderID)
	if !loaded || refresh {
		fetched, err := s.backend.TrackingByOrder(ctx, sess.AccessToken, orderID)
		if err != nil {
			return entities.TrackingHistory{}, fmt.Errorf("load tracking for order %d: %w", orderID, err)
		}
		if fetched == nil {
			fetched = []entities.TrackingEvent{}
		}
		view.ReplaceTracking(orderID, fetched)
		events = fetched
	}

	return Reduce(orderFromView(view, orderID), events), nil
}

// Track - публичная страница отслеживания по номеру заказа, без сессии.
func (s *Service) Track(ctx context.Context, orderID int64) (entities.TrackingHistory, error) {
	events, err := s.backend.TrackingByOrder(ctx, "", orderID)
	if err != nil {
		return entities.TrackingHistory{}, fmt.Errorf("track order %d: %w", orderID, err)
	}
	if events == nil {
		events = []entities.TrackingEvent{}
	}
	return Reduce(nil, events), nil
}

func (s *Service) List(ctx context.Context, sess entities.Session) ([]entities.TrackingEvent, error) {
	events, err := s.backend.ListTracking(ctx, sess.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("list tracking: %w", err)
	}
	return events, nil
}

func (s *Service) Details(ctx context.Context, sess entities.Session, id int64) (*entities.TrackingEvent, error) {
	event, err := s.backend.TrackingDetails(ctx, sess.AccessToken, id)
	if err != nil {
		return nil, fmt.Errorf("tracking %d details: %w", id, err)
	}
	return event, nil
}

func (s *Service) Create(ctx context.Context, sess entities.Session, event entities.TrackingEventModify) (*entities.TrackingEvent, error) {
	if err := s.validator.Struct(newTrackingForm(event)); err != nil {
		return nil, err
	}

	created, err := s.backend.CreateTracking(ctx, sess.AccessToken, event)
	if err != nil {
		return nil, fmt.Errorf("create tracking: %w", err)
	}

	if created.OrderID == 0 {
		created.OrderID = *event.OrderID
	}

	s.sync.AppendTracking(s.views.View(sess.ID), *created)
	return created, nil
}

func (s *Service) UpdateStatus(ctx context.Context, sess entities.Session, id int64, status entities.OrderStatusType) (*entities.TrackingEvent, error) {
	return s.sync.UpdateTrackingStatus(ctx, s.views.View(sess.ID), sess.AccessToken, id, status)
}

func orderFromView(view *order_sync.View, orderID int64) *entities.Order {
	loaded, ok := view.Orders()
	if !ok {
		return nil
	}
	for i := range loaded {
		if loaded[i].ID == orderID {
			return &loaded[i]
		}
	}
	return nil
}
