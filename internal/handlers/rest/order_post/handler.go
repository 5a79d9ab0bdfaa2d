package order_post

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

	var body dto.OrderCreateRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	res, err := h.service.Create(r.Context(), sess, entities.OrderCreate{
		Cargo: entities.CargoModify{
			Description:     &body.Description,
			Weight:          &body.Weight,
			Volume:          &body.Volume,
			PickupAddress:   &body.PickupAddress,
			DeliveryAddress: &body.DeliveryAddress,
			ClientID:        &body.ClientID,
			RecipientID:     &body.RecipientID,
		},
		DriverID:  body.DriverID,
		VehicleID: body.VehicleID,
	})
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, presenter.Order(*res))
}
