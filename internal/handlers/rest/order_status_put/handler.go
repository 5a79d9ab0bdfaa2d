package order_status_put

import (
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/presenter"
	"dashboard/internal/handlers/rest/request"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/auth"
	"dashboard/internal/service/order_sync"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

// ServeHTTP меняет статус заказа. 204 - статус изменен, но заказа нет
// в загруженном списке сессии.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		response.Message(w, h.log, http.StatusUnauthorized, response.MessageUnauthorized)
		return
	}

	id, err := request.PathID(r, "id")
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageInvalidID)
		return
	}

	var body dto.StatusUpdateRequest
	if err = request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	res, err := h.service.UpdateStatus(r.Context(), sess, id, entities.OrderStatusType(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, order_sync.ErrInvalidStatus):
			response.Message(w, h.log, http.StatusBadRequest, response.MessageInvalidStatus)
		default:
			response.Error(w, h.log, err)
		}
		return
	}

	if res == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	response.JSON(w, h.log, http.StatusOK, presenter.Order(*res))
}
