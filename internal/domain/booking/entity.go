package booking

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingDetails = errors.New("service, description, date and time slot are required")
	ErrInvalidStatus  = errors.New("invalid booking status")
)

type Booking struct {
	id             uuid.UUID
	customerID     uuid.UUID
	helperID       uuid.UUID
	service        string
	description    string
	bookingDate    time.Time
	timeSlot       string
	status         Status
	serviceAddress string
	totalCost      float64
	isPaid         bool
	paidAt         *time.Time
	isReviewed     bool
	createdAt      time.Time
	updatedAt      time.Time
}

// NewBooking creates a pending booking. The caller has already resolved
// both parties and defaulted the service address.
func NewBooking(
	customerID, helperID uuid.UUID,
	service, description string,
	bookingDate time.Time,
	timeSlot string,
	serviceAddress string,
	totalCost float64,
) (*Booking, error) {
	if strings.TrimSpace(service) == "" ||
		strings.TrimSpace(description) == "" ||
		bookingDate.IsZero() ||
		strings.TrimSpace(timeSlot) == "" {
		return nil, ErrMissingDetails
	}

	return &Booking{
		id:             uuid.New(),
		customerID:     customerID,
		helperID:       helperID,
		service:        service,
		description:    description,
		bookingDate:    bookingDate,
		timeSlot:       timeSlot,
		status:         StatusPending,
		serviceAddress: serviceAddress,
		totalCost:      totalCost,
	}, nil
}

func ReconstructBooking(
	id, customerID, helperID uuid.UUID,
	service, description string,
	bookingDate time.Time,
	timeSlot string,
	status Status,
	serviceAddress string,
	totalCost float64,
	isPaid bool,
	paidAt *time.Time,
	isReviewed bool,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		customerID:     customerID,
		helperID:       helperID,
		service:        service,
		description:    description,
		bookingDate:    bookingDate,
		timeSlot:       timeSlot,
		status:         status,
		serviceAddress: serviceAddress,
		totalCost:      totalCost,
		isPaid:         isPaid,
		paidAt:         paidAt,
		isReviewed:     isReviewed,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID          { return b.id }
func (b *Booking) CustomerID() uuid.UUID  { return b.customerID }
func (b *Booking) HelperID() uuid.UUID    { return b.helperID }
func (b *Booking) Service() string        { return b.service }
func (b *Booking) Description() string    { return b.description }
func (b *Booking) BookingDate() time.Time { return b.bookingDate }
func (b *Booking) TimeSlot() string       { return b.timeSlot }
func (b *Booking) Status() Status         { return b.status }
func (b *Booking) ServiceAddress() string { return b.serviceAddress }
func (b *Booking) TotalCost() float64     { return b.totalCost }
func (b *Booking) IsPaid() bool           { return b.isPaid }
func (b *Booking) PaidAt() *time.Time     { return b.paidAt }
func (b *Booking) IsReviewed() bool       { return b.isReviewed }
func (b *Booking) CreatedAt() time.Time   { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time   { return b.updatedAt }

func (b *Booking) IsParty(accountID uuid.UUID) bool {
	return accountID == b.customerID || accountID == b.helperID
}
