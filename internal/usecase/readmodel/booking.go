package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// PartyRM is the public slice of an account shown to its booking
// counterpart.
type PartyRM struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	Services       []string  `json:"services,omitempty"`
}

type BookingRM struct {
	ID             uuid.UUID  `json:"id"`
	CustomerID     uuid.UUID  `json:"customerId"`
	HelperID       uuid.UUID  `json:"helperId"`
	Service        string     `json:"service"`
	Description    string     `json:"description"`
	BookingDate    time.Time  `json:"bookingDate"`
	TimeSlot       string     `json:"timeSlot"`
	Status         string     `json:"status"`
	ServiceAddress string     `json:"serviceAddress"`
	TotalCost      float64    `json:"totalCost"`
	IsPaid         bool       `json:"isPaid"`
	PaidAt         *time.Time `json:"paidAt,omitempty"`
	IsReviewed     bool       `json:"isReviewed"`
	Customer       *PartyRM   `json:"customer,omitempty"`
	Helper         *PartyRM   `json:"helper,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
