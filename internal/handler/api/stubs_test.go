//go:build unit

package api_test

import (
	"context"

	"helperhub/internal/domain/account"
	"helperhub/internal/usecase"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// Function-field stubs keep each test's behavior next to its assertions.

type stubAuthUseCase struct {
	registerFn func(ctx context.Context, params usecase.RegisterParams) (*usecase.AuthResult, error)
	loginFn    func(ctx context.Context, credentials account.Credentials) (*usecase.AuthResult, error)
	currentFn  func(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error)
}

func (s *stubAuthUseCase) Register(ctx context.Context, params usecase.RegisterParams) (*usecase.AuthResult, error) {
	return s.registerFn(ctx, params)
}

func (s *stubAuthUseCase) Login(ctx context.Context, credentials account.Credentials) (*usecase.AuthResult, error) {
	return s.loginFn(ctx, credentials)
}

func (s *stubAuthUseCase) GetCurrentUser(ctx context.Context, accountID uuid.UUID) (*readmodel.AccountRM, error) {
	return s.currentFn(ctx, accountID)
}

type stubBookingUseCase struct {
	createFn       func(ctx context.Context, customerID uuid.UUID, params usecase.CreateBookingParams) (*readmodel.BookingRM, error)
	updateStatusFn func(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*readmodel.BookingRM, error)
	getFn          func(ctx context.Context, bookingID, actorID uuid.UUID) (*readmodel.BookingRM, error)
	customerFn     func(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error)
	helperFn       func(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error)
}

func (s *stubBookingUseCase) CreateBooking(ctx context.Context, customerID uuid.UUID, params usecase.CreateBookingParams) (*readmodel.BookingRM, error) {
	return s.createFn(ctx, customerID, params)
}

func (s *stubBookingUseCase) UpdateStatus(ctx context.Context, bookingID, actorID uuid.UUID, newStatus string) (*readmodel.BookingRM, error) {
	return s.updateStatusFn(ctx, bookingID, actorID, newStatus)
}

func (s *stubBookingUseCase) GetBooking(ctx context.Context, bookingID, actorID uuid.UUID) (*readmodel.BookingRM, error) {
	return s.getFn(ctx, bookingID, actorID)
}

func (s *stubBookingUseCase) GetCustomerBookings(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return s.customerFn(ctx, customerID)
}

func (s *stubBookingUseCase) GetHelperBookings(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return s.helperFn(ctx, helperID)
}
