package order_get

import (
	"net/http"

	"dashboard/internal/handlers/rest/presenter"
	"dashboard/internal/handlers/rest/request"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/auth"
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

	res, err := h.service.Get(r.Context(), sess, id)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusOK, presenter.Order(*res))
}
