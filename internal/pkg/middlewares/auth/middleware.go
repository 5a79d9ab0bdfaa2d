package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"dashboard/internal/service/session"
	"dashboard/pkg/logger"
)

const (
	HeaderSessionID = "X-Session-ID"

	bearerPrefix = "Bearer "
)

// Middleware поднимает сессию по идентификатору из Authorization: Bearer
// или X-Session-ID. Без сессии запрос дальше не идет.
func Middleware(log handlerLogger, loader SessionLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := sessionID(r)
			if id == "" {
				writeMessage(w, log, http.StatusUnauthorized, "Требуется вход в систему.")
				return
			}

			sess, err := loader.Load(r.Context(), id)
			if err != nil {
				if errors.Is(err, session.ErrSessionNotFound) {
					writeMessage(w, log, http.StatusUnauthorized, "Требуется вход в систему.")
					return
				}

				log.With(
					logger.NewField("error", err),
					logger.NewField("path", r.URL.Path),
				).Error("load session")
				writeMessage(w, log, http.StatusInternalServerError, "Внутренняя ошибка сервиса.")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), *sess)))
		})
	}
}

// RequireAdmin ставится после Middleware на маршруты кабинета администратора.
func RequireAdmin(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok {
				writeMessage(w, log, http.StatusUnauthorized, "Требуется вход в систему.")
				return
			}
			if !sess.IsAdmin {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("user_id", sess.UserID),
				).Warn("admin route forbidden")
				writeMessage(w, log, http.StatusForbidden, "Недостаточно прав.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sessionID(r *http.Request) string {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return strings.TrimSpace(r.Header.Get(HeaderSessionID))
}

func writeMessage(w http.ResponseWriter, log handlerLogger, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(map[string]string{"message": message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
