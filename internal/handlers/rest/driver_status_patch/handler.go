package driver_status_patch

import (
	"errors"
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
	"dashboard/internal/handlers/rest/request"
	"dashboard/internal/handlers/rest/response"
	"dashboard/internal/pkg/middlewares/auth"
	"dashboard/internal/service/fleet"
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

	var body dto.StatusUpdateRequest
	if err = request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	err = h.service.UpdateDriverStatus(r.Context(), sess, id, entities.DriverStatusType(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, fleet.ErrInvalidDriverStatus):
			response.Message(w, h.log, http.StatusBadRequest, response.MessageInvalidStatus)
		default:
			response.Error(w, h.log, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
