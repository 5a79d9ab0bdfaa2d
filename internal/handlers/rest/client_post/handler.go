package client_post

import (
	"net/http"

	"dashboard/internal/entities"
	"dashboard/internal/generated/dto"
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

	var body dto.ClientCreateRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	res, err := h.service.CreateClient(r.Context(), sess, entities.PartyModify{
		Name:    &body.Name,
		Phone:   &body.Phone,
		Email:   body.Email,
		Address: body.Address,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, presenter.Client(*res))
}
