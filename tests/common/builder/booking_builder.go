//go:build unit || e2e

package builder

import (
	"time"

	"helperhub/internal/domain/booking"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	CustomerID     uuid.UUID
	HelperID       uuid.UUID
	Service        string
	Description    string
	BookingDate    time.Time
	TimeSlot       string
	Status         booking.Status
	ServiceAddress string
	TotalCost      float64
	IsPaid         bool
	PaidAt         *time.Time
	IsReviewed     bool
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:             uuid.New(),
		CustomerID:     uuid.New(),
		HelperID:       uuid.New(),
		Service:        "Electrical",
		Description:    "Fix the ceiling fan",
		BookingDate:    time.Now().Add(48 * time.Hour),
		TimeSlot:       "10:00-12:00",
		Status:         booking.StatusPending,
		ServiceAddress: "42 MG Road, Bengaluru",
		TotalCost:      600,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.NewBooking(
		b.CustomerID, b.HelperID, b.Service, b.Description,
		b.BookingDate, b.TimeSlot, b.ServiceAddress, b.TotalCost,
	)
}

// BuildStored reconstructs a persisted booking so tests can start from
// any status.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	now := time.Now()
	return booking.ReconstructBooking(
		b.ID, b.CustomerID, b.HelperID, b.Service, b.Description,
		b.BookingDate, b.TimeSlot, b.Status, b.ServiceAddress,
		b.TotalCost, b.IsPaid, b.PaidAt, b.IsReviewed, now, now,
	)
}

func (b *BookingBuilder) BuildReadModel() *readmodel.BookingRM {
	now := time.Now()
	return &readmodel.BookingRM{
		ID:             b.ID,
		CustomerID:     b.CustomerID,
		HelperID:       b.HelperID,
		Service:        b.Service,
		Description:    b.Description,
		BookingDate:    b.BookingDate,
		TimeSlot:       b.TimeSlot,
		Status:         b.Status.String(),
		ServiceAddress: b.ServiceAddress,
		TotalCost:      b.TotalCost,
		IsPaid:         b.IsPaid,
		PaidAt:         b.PaidAt,
		IsReviewed:     b.IsReviewed,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Fluent builder methods
func (b *BookingBuilder) WithCustomerID(id uuid.UUID) *BookingBuilder {
	b.CustomerID = id
	return b
}

func (b *BookingBuilder) WithHelperID(id uuid.UUID) *BookingBuilder {
	b.HelperID = id
	return b
}

func (b *BookingBuilder) WithService(service string) *BookingBuilder {
	b.Service = service
	return b
}

func (b *BookingBuilder) WithDescription(description string) *BookingBuilder {
	b.Description = description
	return b
}

func (b *BookingBuilder) WithBookingDate(date time.Time) *BookingBuilder {
	b.BookingDate = date
	return b
}

func (b *BookingBuilder) WithTimeSlot(slot string) *BookingBuilder {
	b.TimeSlot = slot
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) AsPaid(paidAt time.Time) *BookingBuilder {
	b.IsPaid = true
	b.PaidAt = &paidAt
	return b
}
