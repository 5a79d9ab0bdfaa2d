package backend

import (
	"context"
	"net/http"

	"dashboard/internal/entities"
)

func (g *Gateway) ListOrders(ctx context.Context, token string) ([]entities.Order, error) {
	var dtos []orderDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/orders",
		path:   "/api/v1/orders",
		token:  token,
	}, &dtos)
	if err != nil {
		return nil, err
	}
	return toOrders(dtos), nil
}

func (g *Gateway) GetOrder(ctx context.Context, token string, id int64) (*entities.Order, error) {
	var dto orderDTO
	err := g.execute(ctx, request{
		method: http.MethodGet,
		route:  "/api/v1/orders/{id}",
		path:   idPath("/api/v1/orders/%d", id),
		token:  token,
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toOrder(&dto), nil
}

func (g *Gateway) CreateOrder(ctx context.Context, token string, order entities.OrderModify) (*entities.Order, error) {
	var dto orderDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/orders",
		path:   "/api/v1/orders",
		token:  token,
		body:   fromOrderModify(order),
	}, &dto)
	if err != nil {
		return nil, err
	}
	return toOrder(&dto), nil
}

// UpdateOrderStatus отправляет статус телом запроса без JSON кавычек.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, token string, id int64, status entities.OrderStatusType) error {
	raw := status.String()
	return g.execute(ctx, request{
		method:  http.MethodPut,
		route:   "/api/v1/orders/{id}/status",
		path:    idPath("/api/v1/orders/%d/status", id),
		token:   token,
		rawBody: &raw,
	}, nil)
}

func (g *Gateway) CreateCargo(ctx context.Context, token string, cargo entities.CargoModify) (*entities.Cargo, error) {
	var dto cargoDTO
	err := g.execute(ctx, request{
		method: http.MethodPost,
		route:  "/api/v1/cargo",
		path:   "/api/v1/cargo",
		token:  token,
		body:   fromCargoModify(cargo),
	}, &dto)
	if err != nil {
		return nil, err
	}

	created := toCargo(&dto)
	return &created, nil
}
