package metrics

import (
	"context"
	"runtime"
	"time"

	"dashboard/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const DefaultInterval = 5 * time.Second

var (
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_system_cpu_usage_percent",
			Help: "CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_system_memory_usage_bytes",
			Help: "System memory usage in bytes",
		},
	)

	ApplicationMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_application_memory_usage_bytes",
			Help: "Application memory usage in bytes (Go heap allocation)",
		},
	)

	ApplicationGoroutines = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_application_goroutines",
			Help: "Number of running goroutines",
		},
	)
)

// StartSystemMetricsCollector снимает метрики хоста каждые interval, пока жив ctx.
func StartSystemMetricsCollector(ctx context.Context, log logger.Logger, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("system metrics collector stopped")
				return
			case <-ticker.C:
				Collect(ctx, log)
			}
		}
	}()
}

// Collect снимает метрики один раз. Ошибки gopsutil не фатальны.
func Collect(ctx context.Context, log logger.Logger) {
	cpuPercent, err := cpu.PercentWithContext(ctx, 0, false)
	switch {
	case err != nil:
		log.With(logger.NewField("error", err)).Warn("collect cpu usage")
	case len(cpuPercent) > 0:
		SystemCPUUsage.Set(cpuPercent[0])
	}

	vmStat, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("collect memory usage")
	} else {
		SystemMemoryUsage.Set(float64(vmStat.Used))
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	ApplicationMemoryUsage.Set(float64(m.Alloc))
	ApplicationGoroutines.Set(float64(runtime.NumGoroutine()))
}
