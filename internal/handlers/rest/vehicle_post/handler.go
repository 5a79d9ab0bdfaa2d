package vehicle_post

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

	var body dto.VehicleCreateRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	vehicleType := entities.VehicleType(body.Type)
	vehicle := entities.VehicleModify{
		LicensePlate: &body.LicensePlate,
		Type:         &vehicleType,
		Capacity:     &body.Capacity,
	}
	// Опциональные параметры
	if body.Status != nil {
		status := entities.VehicleStatusType(*body.Status)
		vehicle.Status = &status
	}

	res, err := h.service.CreateVehicle(r.Context(), sess, vehicle)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, presenter.Vehicle(*res))
}
