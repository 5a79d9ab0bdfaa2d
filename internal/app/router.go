package app

import (
	"context"
	"net/http"
	"sync/atomic"

	"dashboard/internal/handlers/rest/client_get"
	"dashboard/internal/handlers/rest/client_post"
	"dashboard/internal/handlers/rest/clients_get"
	"dashboard/internal/handlers/rest/driver_post"
	"dashboard/internal/handlers/rest/driver_status_patch"
	"dashboard/internal/handlers/rest/drivers_get"
	"dashboard/internal/handlers/rest/healthcheck_head"
	"dashboard/internal/handlers/rest/order_get"
	"dashboard/internal/handlers/rest/order_post"
	"dashboard/internal/handlers/rest/order_status_put"
	"dashboard/internal/handlers/rest/order_tracking_details_get"
	"dashboard/internal/handlers/rest/order_tracking_get"
	"dashboard/internal/handlers/rest/order_tracking_post"
	"dashboard/internal/handlers/rest/order_tracking_status_put"
	"dashboard/internal/handlers/rest/order_trackings_get"
	"dashboard/internal/handlers/rest/orders_get"
	"dashboard/internal/handlers/rest/ping_get"
	"dashboard/internal/handlers/rest/sign_in_post"
	"dashboard/internal/handlers/rest/sign_out_post"
	"dashboard/internal/handlers/rest/sign_up_post"
	"dashboard/internal/handlers/rest/track_get"
	"dashboard/internal/handlers/rest/vehicle_post"
	"dashboard/internal/handlers/rest/vehicle_status_patch"
	"dashboard/internal/handlers/rest/vehicles_get"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/middlewares/auth"
	"dashboard/internal/pkg/middlewares/graceful_shutdown"
	"dashboard/internal/pkg/middlewares/metrics"
	"dashboard/internal/pkg/middlewares/rate_limiter"
	"dashboard/internal/pkg/middlewares/timeout"
	"dashboard/pkg/logger"
	"dashboard/pkg/token_bucket"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter собирает HTTP API дашборда. Публичные ручки открыты всем,
// session - любой сессии, admin - только администратору.
func NewRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	app *Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))

	authenticate := auth.Middleware(log, app.ServiceSession)
	requireAdmin := auth.RequireAdmin(log)
	session := func(h http.Handler) http.Handler {
		return authenticate(h)
	}
	admin := func(h http.Handler) http.Handler {
		return authenticate(requireAdmin(h))
	}

	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, map[string]healthcheck_head.Pinger{
		"session_store": app.Querier,
		"backend":       app.Backend,
	})).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log)).Methods(http.MethodGet)

	// public
	router.Handle("/sign-in", sign_in_post.New(log, app.ServiceSession)).Methods(http.MethodPost)
	router.Handle("/sign-up", sign_up_post.New(log, app.ServiceSession)).Methods(http.MethodPost)
	router.Handle("/track/{orderId}", track_get.New(log, app.ServiceTracking)).Methods(http.MethodGet)

	// session
	router.Handle("/sign-out", session(sign_out_post.New(log, app.ServiceSession))).Methods(http.MethodPost)
	router.Handle("/orders", session(orders_get.New(log, app.ServiceOrder))).Methods(http.MethodGet)
	router.Handle("/orders/{id}/tracking", session(order_tracking_get.New(log, app.ServiceTracking))).Methods(http.MethodGet)

	// admin
	router.Handle("/orders", admin(order_post.New(log, app.ServiceOrder))).Methods(http.MethodPost)
	router.Handle("/orders/{id}", admin(order_get.New(log, app.ServiceOrder))).Methods(http.MethodGet)
	router.Handle("/orders/{id}/status", admin(order_status_put.New(log, app.ServiceOrder))).Methods(http.MethodPut)

	router.Handle("/order-tracking", admin(order_trackings_get.New(log, app.ServiceTracking))).Methods(http.MethodGet)
	router.Handle("/order-tracking", admin(order_tracking_post.New(log, app.ServiceTracking))).Methods(http.MethodPost)
	router.Handle("/order-tracking/{id}/details", admin(order_tracking_details_get.New(log, app.ServiceTracking))).Methods(http.MethodGet)
	router.Handle("/order-tracking/{id}/status", admin(order_tracking_status_put.New(log, app.ServiceTracking))).Methods(http.MethodPut)

	router.Handle("/vehicles", admin(vehicles_get.New(log, app.ServiceFleet))).Methods(http.MethodGet)
	router.Handle("/vehicles", admin(vehicle_post.New(log, app.ServiceFleet))).Methods(http.MethodPost)
	router.Handle("/vehicles/{id}/status", admin(vehicle_status_patch.New(log, app.ServiceFleet))).Methods(http.MethodPatch)

	router.Handle("/drivers", admin(drivers_get.New(log, app.ServiceFleet))).Methods(http.MethodGet)
	router.Handle("/drivers", admin(driver_post.New(log, app.ServiceFleet))).Methods(http.MethodPost)
	router.Handle("/drivers/{id}/status", admin(driver_status_patch.New(log, app.ServiceFleet))).Methods(http.MethodPatch)

	router.Handle("/clients", admin(clients_get.New(log, app.ServiceFleet))).Methods(http.MethodGet)
	router.Handle("/clients", admin(client_post.New(log, app.ServiceFleet))).Methods(http.MethodPost)
	router.Handle("/clients/{id}", admin(client_get.New(log, app.ServiceFleet))).Methods(http.MethodGet)

	return router
}
