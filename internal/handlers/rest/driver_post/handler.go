package driver_post

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

	var body dto.DriverCreateRequest
	if err := request.DecodeJSON(r, &body); err != nil {
		response.Message(w, h.log, http.StatusBadRequest, response.MessageBadRequest)
		return
	}

	driver := entities.DriverModify{
		Name:          &body.Name,
		Phone:         &body.Phone,
		Email:         body.Email,
		LicenseNumber: &body.LicenseNumber,
		VehicleID:     body.VehicleID,
	}
	if body.Status != nil {
		status := entities.DriverStatusType(*body.Status)
		driver.Status = &status
	}

	res, err := h.service.CreateDriver(r.Context(), sess, driver)
	if err != nil {
		response.Error(w, h.log, err)
		return
	}

	response.JSON(w, h.log, http.StatusCreated, presenter.Driver(*res))
}
