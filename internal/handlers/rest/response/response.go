// Package response - общие правила ответа ручек дашборда.
package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"dashboard/internal/gateway/http/backend"
	"dashboard/internal/generated/dto"
	"dashboard/internal/pkg/validation"
	"dashboard/pkg/logger"
)

const (
	MessageBackendUnavailable = "Не удалось выполнить запрос. Попробуйте позже."
	MessageInternal           = "Внутренняя ошибка сервиса."
	MessageBadRequest         = "Некорректный запрос."
	MessageUnauthorized       = "Требуется вход в систему."
	MessageForbidden          = "Недостаточно прав."
	MessageInvalidID          = "Некорректный идентификатор."
	MessageInvalidStatus      = "Недопустимый статус."
	MessageInvalidFilter      = "Некорректные параметры фильтра."
)

func JSON(w http.ResponseWriter, log handlerLogger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func Message(w http.ResponseWriter, log handlerLogger, status int, message string) {
	JSON(w, log, status, dto.ErrorResponse{Message: message})
}

// Error отвечает на ошибку сервиса: форма - 400, бэкенд - 502 с общим текстом,
// остальное - 500. Ошибки бэкенда и внутренние пишутся в лог здесь же.
func Error(w http.ResponseWriter, log handlerLogger, err error) {
	var formErr *validation.Error

	switch {
	case errors.As(err, &formErr):
		Message(w, log, http.StatusBadRequest, formErr.Message())
	case errors.Is(err, validation.ErrInvalidForm):
		Message(w, log, http.StatusBadRequest, MessageBadRequest)
	case errors.Is(err, backend.ErrBackendUnavailable):
		log.With(
			logger.NewField("error", err),
		).Error("backend request failed")
		Message(w, log, http.StatusBadGateway, MessageBackendUnavailable)
	default:
		log.With(
			logger.NewField("error", err),
		).Error("request failed")
		Message(w, log, http.StatusInternalServerError, MessageInternal)
	}
}
