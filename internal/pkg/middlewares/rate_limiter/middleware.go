package rate_limiter

import (
	"net/http"
	"strconv"

	"dashboard/internal/pkg/middlewares/route"
	"dashboard/pkg/logger"
)

const tooManyRequestsBody = `{"message":"Слишком много запросов. Попробуйте позже."}`

// Middleware отдает 429, когда в ведре нет токенов. limit попадает в X-RateLimit-Limit.
func Middleware(log handlerLogger, limit int, limiter Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			template := route.Template(r)
			RateLimitExceededTotal.WithLabelValues(r.Method, template).Inc()

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("route", template),
				logger.NewField("remote_addr", r.RemoteAddr),
			).Warn("rate limit exceeded")

			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)

			if _, err := w.Write([]byte(tooManyRequestsBody)); err != nil {
				log.With(
					logger.NewField("error", err),
				).Error("failed to write rate limit response")
			}
		})
	}
}
