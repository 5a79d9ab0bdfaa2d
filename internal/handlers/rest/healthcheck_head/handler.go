package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"dashboard/pkg/logger"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	dependencies   map[string]Pinger
}

// New: dependencies - имя зависимости и ее проверка (session store, backend).
func New(log handlerLogger, isShuttingDown *atomic.Bool, dependencies map[string]Pinger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:            handlerLog,
		isShuttingDown: isShuttingDown,
		dependencies:   dependencies,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for name, dependency := range h.dependencies {
		if err := dependency.Ping(ctx); err != nil {
			h.log.With(
				logger.NewField("dependency", name),
				logger.NewField("error", err),
			).Warn("dependency is not ready")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
