//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	"dashboard/internal/gateway/http/backend"
	"dashboard/internal/handlers/rest/client_get"
	"dashboard/internal/handlers/rest/client_post"
	"dashboard/internal/handlers/rest/clients_get"
	"dashboard/internal/handlers/rest/driver_post"
	"dashboard/internal/handlers/rest/driver_status_patch"
	"dashboard/internal/handlers/rest/drivers_get"
	"dashboard/internal/handlers/rest/order_get"
	"dashboard/internal/handlers/rest/order_post"
	"dashboard/internal/handlers/rest/order_status_put"
	"dashboard/internal/handlers/rest/order_tracking_details_get"
	"dashboard/internal/handlers/rest/order_tracking_get"
	"dashboard/internal/handlers/rest/order_tracking_post"
	"dashboard/internal/handlers/rest/order_tracking_status_put"
	"dashboard/internal/handlers/rest/order_trackings_get"
	"dashboard/internal/handlers/rest/orders_get"
	"dashboard/internal/handlers/rest/sign_in_post"
	"dashboard/internal/handlers/rest/sign_out_post"
	"dashboard/internal/handlers/rest/sign_up_post"
	"dashboard/internal/handlers/rest/track_get"
	"dashboard/internal/handlers/rest/vehicle_post"
	"dashboard/internal/handlers/rest/vehicle_status_patch"
	"dashboard/internal/handlers/rest/vehicles_get"
	"dashboard/internal/handlers/tasks/view_cleanup"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/middlewares/auth"
	"dashboard/internal/pkg/validation"

	sessionRepo "dashboard/internal/repository/session"
	fleetService "dashboard/internal/service/fleet"
	orderService "dashboard/internal/service/order"
	"dashboard/internal/service/order_sync"
	sessionService "dashboard/internal/service/session"
	trackingService "dashboard/internal/service/tracking"

	"dashboard/pkg/background"
	"dashboard/pkg/logger"
	"dashboard/pkg/querier"
	"dashboard/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Application struct {
	ServiceSession    ServiceSession
	ServiceOrder      ServiceOrder
	ServiceTracking   ServiceTracking
	ServiceFleet      ServiceFleet
	Backend           *backend.Gateway
	Querier           *querier.Querier
	BackgroundWorkers *background.Worker
}

type ServiceSession interface {
	auth.SessionLoader
	sign_in_post.Service
	sign_up_post.Service
	sign_out_post.Service
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_status_put.Service
}

type ServiceTracking interface {
	track_get.Service
	order_tracking_get.Service
	order_trackings_get.Service
	order_tracking_details_get.Service
	order_tracking_post.Service
	order_tracking_status_put.Service
}

type ServiceFleet interface {
	vehicles_get.Service
	vehicle_post.Service
	vehicle_status_patch.Service
	drivers_get.Service
	driver_post.Service
	driver_status_patch.Service
	clients_get.Service
	client_get.Service
	client_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service).
// publisher - Kafka или order_events.Nop, выбирается в main по конфигу.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	publisher order_sync.Publisher,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSessionRepository,
		provideBackendGateway,
		validation.New,
		provideViewRegistry,
		provideOrderSync,

		provideServiceSession,
		provideServiceOrder,
		provideServiceTracking,
		provideServiceFleet,

		provideViewCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Service)),
		wire.Bind(new(ServiceFleet), new(*fleetService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, pgx.ReadCommitted)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideSessionRepository(querier *querier.Querier) *sessionRepo.Repository {
	return sessionRepo.New(querier)
}

func provideBackendGateway(cfg *config.Config) *backend.Gateway {
	return backend.New(cfg.Backend.BaseURL, &http.Client{Timeout: cfg.Backend.RequestTimeout})
}

func provideViewRegistry() *order_sync.Registry {
	return order_sync.NewRegistry()
}

func provideOrderSync(log logger.Logger, gateway *backend.Gateway, publisher order_sync.Publisher) *order_sync.Sync {
	return order_sync.New(log, gateway, publisher)
}

func provideServiceSession(
	gateway *backend.Gateway,
	repository *sessionRepo.Repository,
	txManager *tx.Manager,
	views *order_sync.Registry,
	validator *validation.Validator,
) *sessionService.Service {
	return sessionService.New(gateway, repository, txManager, views, validator)
}

func provideServiceOrder(
	gateway *backend.Gateway,
	views *order_sync.Registry,
	sync *order_sync.Sync,
	validator *validation.Validator,
) *orderService.Service {
	return orderService.New(gateway, views, sync, validator)
}

func provideServiceTracking(
	gateway *backend.Gateway,
	views *order_sync.Registry,
	sync *order_sync.Sync,
	validator *validation.Validator,
) *trackingService.Service {
	return trackingService.New(gateway, views, sync, validator)
}

func provideServiceFleet(gateway *backend.Gateway, validator *validation.Validator) *fleetService.Service {
	return fleetService.New(gateway, validator)
}

func provideViewCleanupTask(log logger.Logger, views *order_sync.Registry, cfg *config.Config) *view_cleanup.ViewCleanup {
	return view_cleanup.NewViewCleanup(log, views, cfg.Tasks.ViewCleanupInterval, cfg.Tasks.ViewIdleTTL)
}

func provideTaskList(viewCleanupTask *view_cleanup.ViewCleanup) []background.Task {
	return []background.Task{
		viewCleanupTask,
	}
}

func provideBackgroundWorkers(log logger.Logger, tasks []background.Task) *background.Worker {
	return background.New(log, tasks...)
}
