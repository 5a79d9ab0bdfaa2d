//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_test
package tracking

import (
	"context"

	"dashboard/internal/entities"
	"dashboard/internal/service/order_sync"
)

type Backend interface {
	ListTracking(ctx context.Context, token string) ([]entities.TrackingEvent, error)
	TrackingByOrder(ctx context.Context, token string, orderID int64) ([]entities.TrackingEvent, error)
	TrackingDetails(ctx context.Context, token string, id int64) (*entities.TrackingEvent, error)
	CreateTracking(ctx context.Context, token string, event entities.TrackingEventModify) (*entities.TrackingEvent, error)
}

type Views interface {
	View(sessionID string) *order_sync.View
}

type Sync interface {
	UpdateTrackingStatus(ctx context.Context, view *order_sync.View, token string, id int64, status entities.OrderStatusType) (*entities.TrackingEvent, error)
	AppendTracking(view *order_sync.View, event entities.TrackingEvent) bool
}

type Validator interface {
	Struct(form any) error
}
