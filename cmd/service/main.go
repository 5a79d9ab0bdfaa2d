package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	application "dashboard/internal/app"
	"dashboard/internal/gateway/kafka/order_events"
	"dashboard/internal/handlers/rest/healthcheck_head"
	"dashboard/internal/pkg/config"
	"dashboard/internal/pkg/dotenv"
	"dashboard/internal/pkg/kafka"
	metrics_system "dashboard/internal/pkg/metrics"
	"dashboard/internal/pkg/postgres"
	"dashboard/internal/pkg/probe"
	"dashboard/internal/service/order_sync"
	"dashboard/migrations"
	"dashboard/pkg/logger"
	"dashboard/pkg/logger/zap_adapter"
	"dashboard/pkg/retrier"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
)

func main() {
	if err := dotenv.Load(".env"); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Server.LogLevel)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dashboard application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // shutdownCtx и ongoingCtx наследуются от context.Background() намеренно
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second

		probeInitialInterval = 500 * time.Millisecond
		probeMaxElapsed      = 30 * time.Second
	)

	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, log, pool, migrations.FS); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	var publisher order_sync.Publisher = order_events.Nop{}
	if cfg.Kafka.Enabled {
		producer, err := kafka.NewSyncProducer(ctx, log, &cfg.Kafka)
		if err != nil {
			return fmt.Errorf("kafka producer: %w", err)
		}
		defer func() {
			if err := producer.Close(); err != nil {
				runLog.Error("failed to close kafka producer", logger.NewField("error", err))
			}
		}()
		publisher = order_events.New(producer, cfg.Kafka.Topic)
	}

	app, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, publisher, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	err = probe.Wait(ctx, log, "backend", retrier.Probe(probeInitialInterval, probeMaxElapsed), app.Backend.Ping)
	if err != nil {
		return err
	}

	metrics_system.StartSystemMetricsCollector(ctx, log, metrics_system.DefaultInterval)

	if err := app.BackgroundWorkers.Start(ctx); err != nil {
		return fmt.Errorf("background workers: %w", err)
	}

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: application.NewRouter(ongoingCtx, log, &isShuttingDown, app, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(log, &isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не сработает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	app.BackgroundWorkers.Wait()

	runLog.Info("Server stopped")
	return nil
}

func initPprofRouter(log logger.Logger, isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(log, isShuttingDown, nil)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
