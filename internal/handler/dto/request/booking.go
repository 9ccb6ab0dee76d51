package request

import (
	"time"

	"helperhub/internal/usecase"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HelperID       uuid.UUID `json:"helperId" binding:"required"`
	Service        string    `json:"service" binding:"required"`
	Description    string    `json:"description" binding:"required"`
	BookingDate    time.Time `json:"bookingDate" binding:"required"`
	TimeSlot       string    `json:"timeSlot" binding:"required"`
	ServiceAddress string    `json:"serviceAddress,omitempty"`
	TotalCost      float64   `json:"totalCost,omitempty"`
}

func (r *CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		HelperID:       r.HelperID,
		Service:        r.Service,
		Description:    r.Description,
		BookingDate:    r.BookingDate,
		TimeSlot:       r.TimeSlot,
		ServiceAddress: r.ServiceAddress,
		TotalCost:      r.TotalCost,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
