package orders_get

import (
	"errors"
	"net/http"

	"dashboard/internal/handlers/rest/presenter"
	"dashboard/internal/handlers/rest/request"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/auth"
	"dashboard/internal/service/order"
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

// ServeHTTP отдает заказы сессии: администратору все, клиенту только его.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFromContext(r.Context())
	if !ok {
		response.Message(w, h.log, http.StatusUnauthorized, response.MessageUnauthorized)
		return
	}

	refresh, err := request.Flag(r, "refresh")
	if err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageInvalidFilter)
		return
	}

	query := r.URL.Query()
	orders, err := h.service.List(r.Context(), sess, order.ListQuery{
		Status:  query.Get("status"),
		Sort:    query.Get("sort"),
		Refresh: refresh,
	})
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidQuery):
			response.Message(w, h.log, http.StatusBadRequest, response.MessageInvalidFilter)
		default:
			response.Error(w, h.log, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, presenter.Orders(orders))
}
