package usecase

import (
	"context"
	"errors"
	"time"

	"helperhub/internal/domain/account"
	"helperhub/internal/domain/booking"
	"helperhub/internal/infra"
	"helperhub/internal/pkg/clock"
	"helperhub/internal/pkg/errs"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrHelperNotFound       = errors.New("selected helper not found or is not a service provider")
	ErrCustomerRoleRequired = errors.New("only customers can create bookings")
	ErrNotBookingParty      = errors.New("not authorized to view this booking")
	ErrStatusNotAllowed     = errors.New("not authorized to update this booking status")
	ErrInvalidHelperStatus  = errors.New("invalid status for helper")
	ErrMissingBookingFields = errors.New("all required booking details must be provided")
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error)
	FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error)
	FindByHelperID(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error)
	// UpdateStatus persists status, payment flags and updatedAt in a
	// single write.
	UpdateStatus(ctx context.Context, b *booking.Booking) error
}

type CreateBookingParams struct {
	HelperID       uuid.UUID
	Service        string
	Description    string
	BookingDate    time.Time
	TimeSlot       string
	ServiceAddress string
	TotalCost      float64
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, customerID uuid.UUID, params CreateBookingParams) (*readmodel.BookingRM, error)
	UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*readmodel.BookingRM, error)
	GetBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*readmodel.BookingRM, error)
	GetCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error)
	GetHelperBookings(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error)
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	accountRepo AccountRepository
	clock       clock.Clock
}

func NewBookingUseCase(bookingRepo BookingRepository, accountRepo AccountRepository, clock clock.Clock) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		accountRepo: accountRepo,
		clock:       clock,
	}
}

func (u *bookingUseCaseImpl) CreateBooking(ctx context.Context, customerID uuid.UUID, params CreateBookingParams) (*readmodel.BookingRM, error) {
	customer, err := u.accountRepo.FindByID(ctx, customerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if customer == nil {
		return nil, ErrAccountNotFound
	}
	if customer.Role() != account.RoleCustomer {
		return nil, ErrCustomerRoleRequired
	}

	helper, err := u.accountRepo.FindByID(ctx, params.HelperID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrHelperNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if helper == nil || !helper.IsHelper() {
		return nil, ErrHelperNotFound
	}

	serviceAddress := params.ServiceAddress
	if serviceAddress == "" {
		serviceAddress = customer.Address()
	}

	entity, err := booking.NewBooking(
		customerID,
		params.HelperID,
		params.Service,
		params.Description,
		params.BookingDate,
		params.TimeSlot,
		serviceAddress,
		params.TotalCost,
	)
	if err != nil {
		// Bare sentinel so errors.Is matching works in the handler.
		return nil, ErrMissingBookingFields
	}

	if err := u.bookingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingRepo.FindViewByID(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*readmodel.BookingRM, error) {
	entity, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Authorization is decided before the status value is judged: a
	// stranger sending garbage gets the same refusal as one sending a
	// legal status.
	if err := entity.ApplyStatus(actorID, booking.Status(newStatus), u.clock.Now()); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotParty):
			return nil, ErrStatusNotAllowed
		case errors.Is(err, booking.ErrInvalidHelperStatus):
			return nil, ErrInvalidHelperStatus
		default:
			return nil, err
		}
	}

	if err := u.bookingRepo.UpdateStatus(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) GetBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*readmodel.BookingRM, error) {
	entity, err := u.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !entity.IsParty(actorID) {
		return nil, ErrNotBookingParty
	}

	return u.bookingRepo.FindViewByID(ctx, bookingID)
}

func (u *bookingUseCaseImpl) GetCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	views, err := u.bookingRepo.FindByCustomerID(ctx, customerID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}

func (u *bookingUseCaseImpl) GetHelperBookings(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error) {
	views, err := u.bookingRepo.FindByHelperID(ctx, helperID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return views, nil
}
