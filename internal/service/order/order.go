package order

import (
	"context"
	"fmt"

	"dashboard/internal/entities"
	"dashboard/internal/service/order_list"
	"github.com/AlekSi/pointer"
)

type ListQuery struct {
	Status  string
	Sort    string
	Refresh bool
}

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

// List отдает список заказов сессии. Коллекция загружается с бэкенда один раз
// и дальше живет в представлении, пока не попросят refresh.
func (s *Service) List(ctx context.Context, sess entities.Session, query ListQuery) ([]entities.Order, error) {
	status, err := order_list.ParseStatusFilter(query.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}
	sort, err := order_list.ParseSortDirection(query.Sort)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	params := order_list.Params{
		Status: status,
		Sort:   sort,
	}
	if !sess.IsAdmin {
		// без идентификатора пользователя "моих" заказов нет
		if sess.UserID == nil {
			return []entities.Order{}, nil
		}
		params.CurrentUserID = pointer.To(*sess.UserID)
	}

	view := s.views.View(sess.ID)

	orders, loaded := view.Orders()
	if !loaded || query.Refresh {
		orders, err = s.backend.ListOrders(ctx, sess.AccessToken)
		if err != nil {
			return nil, fmt.Errorf("load orders: %w", err)
		}
		view.ReplaceOrders(orders)
	}

	return order_list.Filter(orders, params), nil
}

func (s *Service) Get(ctx context.Context, sess entities.Session, id int64) (*entities.Order, error) {
	order, err := s.backend.GetOrder(ctx, sess.AccessToken, id)
	if err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return order, nil
}

// Create создает груз, затем заказ на него со статусом PENDING.
// Созданный заказ дописывается в загруженный список без перезагрузки.
func (s *Service) Create(ctx context.Context, sess entities.Session, create entities.OrderCreate) (*entities.Order, error) {
	if err := s.validator.Struct(newOrderForm(create)); err != nil {
		return nil, err
	}

	cargo, err := s.backend.CreateCargo(ctx, sess.AccessToken, create.Cargo)
	if err != nil {
		return nil, fmt.Errorf("create cargo: %w", err)
	}

	order, err := s.backend.CreateOrder(ctx, sess.AccessToken, entities.OrderModify{
		CargoID:   pointer.To(cargo.ID),
		DriverID:  create.DriverID,
		VehicleID: create.VehicleID,
		Status:    pointer.To(entities.DefaultOrderStatus),
	})
	if err != nil {
		return nil, fmt.Errorf("create order for cargo %d: %w", cargo.ID, err)
	}

	// бэкенд может вернуть заказ без вложенного груза
	if order.Cargo.ID == 0 {
		order.Cargo = *cargo
	}
	if order.Status == "" {
		order.Status = entities.DefaultOrderStatus
	}

	s.sync.AppendOrder(s.views.View(sess.ID), *order)
	return order, nil
}

// UpdateStatus меняет статус на бэкенде и только после успеха в представлении.
// nil без ошибки означает, что заказа нет в загруженном списке.
func (s *Service) UpdateStatus(ctx context.Context, sess entities.Session, id int64, status entities.OrderStatusType) (*entities.Order, error) {
	return s.sync.UpdateOrderStatus(ctx, s.views.View(sess.ID), sess.AccessToken, id, status)
}
