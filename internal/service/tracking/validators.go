package tracking

import (
	"dashboard/internal/entities"
	"github.com/AlekSi/pointer"
)

type trackingForm struct {
	OrderID  int64                    `name:"orderId" validate:"gt=0"`
	Status   entities.OrderStatusType `name:"status" validate:"enum"`
	Location string                   `name:"location" validate:"required"`
}

func newTrackingForm(event entities.TrackingEventModify) trackingForm {
	return trackingForm{
		OrderID:  pointer.Get(event.OrderID),
		Status:   pointer.Get(event.Status),
		Location: pointer.Get(event.Location),
	}
}
