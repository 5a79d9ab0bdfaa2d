package view_cleanup

import (
	"context"
	"time"

	"dashboard/pkg/logger"
)

// ViewCleanup выбрасывает из памяти представления сессий, к которым давно не обращались.
// Сами сессии в хранилище остаются: при следующем запросе представление загрузится заново.
type ViewCleanup struct {
	log      taskLogger
	registry Registry
	interval time.Duration
	idleTTL  time.Duration
}

func NewViewCleanup(log taskLogger, registry Registry, interval, idleTTL time.Duration) *ViewCleanup {
	return &ViewCleanup{
		log:      log,
		registry: registry,
		interval: interval,
		idleTTL:  idleTTL,
	}
}

func (v *ViewCleanup) TTL() time.Duration {
	return v.interval
}

func (v *ViewCleanup) Do(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	evicted := v.registry.EvictIdle(v.idleTTL)
	if evicted > 0 {
		v.log.With(
			logger.NewField("evicted_views", evicted),
			logger.NewField("active_views", v.registry.Len()),
		).Info("view cleanup")
	}
	return nil
}

func (v *ViewCleanup) Info() string {
	return "view cleanup"
}
