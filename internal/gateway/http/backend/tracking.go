package backend

import (
	"context"
	"net/http"

	"dashboard/internal/entities"
)

func (g *Gateway) ListTracking(ctx context.Context, token string) ([]entities.TrackingEvent, error) {
	var dtos []trackingDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/order-tracking",
		path:   "/api/v1/order-tracking",
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toTrackingEvents(dtos), nil
}

// TrackingByOrder доступен и без токена: им пользуется публичный поиск по номеру заказа.
func (g *Gateway) TrackingByOrder(ctx context.Context, token string, orderID int64) ([]entities.TrackingEvent, error) {
	var dtos []trackingDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/users/security/order-tracking/{orderId}",
		path:   idPath("/users/security/order-tracking/%d", orderID),
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toTrackingEvents(dtos), nil
}

func (g *Gateway) TrackingDetails(ctx context.Context, token string, id int64) (*entities.TrackingEvent, error) {
	var dto trackingDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/order-tracking/{id}/details",
		path:   idPath("/api/v1/order-tracking/%d/details", id),
		token:  token,
	}, &dto)
	if err != nil {
		return nil, err
	}

	event := toTrackingEvent(&dto)
	return &event, nil
}

func (g *Gateway) CreateTracking(ctx context.Context, token string, event entities.TrackingEventModify) (*entities.TrackingEvent, error) {
	var dto trackingDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/order-tracking",
		path:   "/api/v1/order-tracking",
		token:  token,
		body:   fromTrackingModify(event),
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := toTrackingEvent(&dto)
	return &created, nil
}

func (g *Gateway) UpdateTrackingStatus(ctx context.Context, token string, id int64, status entities.OrderStatusType) error {
	raw := status.String()
	return g.execute(ctx, request{
		method:  http.MethodPut,
		route:   "/api/v1/order-tracking/{id}/status",
		path:    idPath("/api/v1/order-tracking/%d/status", id),
		token:   token,
		rawBody: &raw,
	}, nil)
}
