//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/order_sync"
)

type Backend interface {
	ListOrders(ctx context.Context, token string) ([]entities.Order, error)
	GetOrder(ctx context.Context, token string, id int64) (*entities.Order, error)
	CreateCargo(ctx context.Context, token string, cargo entities.CargoModify) (*entities.Cargo, error)
	CreateOrder(ctx context.Context, token string, order entities.OrderModify) (*entities.Order, error)
}

type Views interface {
	View(sessionID string) *order_sync.View
}

type Sync interface {
	UpdateOrderStatus(ctx context.Context, view *order_sync.View, token string, id int64, status entities.OrderStatusType) (*entities.Order, error)
	AppendOrder(view *order_sync.View, order entities.Order) bool
}

type Validator interface {
	Struct(form any) error
}
