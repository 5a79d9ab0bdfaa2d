// Package probe ждет готовности внешних зависимостей при старте сервиса.
package probe

import (
	"context"
	"fmt"
	"time"

	"dashboard/pkg/logger"
	"dashboard/pkg/retrier"
	"dashboard/pkg/retrier/backoff_adapter"
)

type PingFunc func(ctx context.Context) error

// Wait повторяет ping с экспоненциальной паузой, пока он не пройдет
// или не истечет cfg.MaxElapsedTime.
func Wait(ctx context.Context, log logger.Logger, name string, cfg retrier.Config, ping PingFunc) error {
	probeLog := log.With(logger.NewField("dependency", name))

	var attempt uint64
	cfg.Notify = func(err error, wait time.Duration) {
		probeLog.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("dependency is not ready")
	}

	err := backoff_adapter.New(cfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		probeLog.With(logger.NewField("attempt", attempt)).Info("probing dependency")
		return ping(ctx)
	})
	if err != nil {
		probeLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("dependency is unavailable after retries")
		return fmt.Errorf("%s is unavailable: %w", name, err)
	}

	probeLog.With(logger.NewField("attempts", attempt)).Info("dependency is ready")
	return nil
}
