package metrics

import (
	"net/http"
	"strconv"
	"time"

	"dashboard/internal/pkg/middlewares/route"
	"dashboard/pkg/logger"
)

// Middleware ставится на mux.Router через Use, иначе шаблон маршрута неизвестен.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			statusCode := strconv.Itoa(rw.statusCode)
			template := route.Template(r)

			HTTPRequestDuration.WithLabelValues(r.Method, template, statusCode).Observe(duration.Seconds())
			HTTPRequestTotal.WithLabelValues(r.Method, template, statusCode).Inc()

			// пробы балансировщика не логируем
			if r.Method == http.MethodHead {
				return
			}

			log.With(
				logger.NewField("method", r.Method),
				logger.NewField("path", r.URL.Path),
				logger.NewField("route", template),
				logger.NewField("status", rw.statusCode),
				logger.NewField("duration", duration.String()),
			).Info("HTTP request")
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode  int
	wroteHeader bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.wroteHeader {
		rw.statusCode = code
		rw.wroteHeader = true
	}
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.wroteHeader = true
	return rw.ResponseWriter.Write(b)
}
