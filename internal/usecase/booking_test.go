//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"helperhub/internal/domain/booking"
	"helperhub/internal/pkg/clock"
	"helperhub/internal/usecase"
	"helperhub/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func bookingFixture(t *testing.T) (customerID, helperID uuid.UUID, accountRepo *fakeAccountRepo) {
	t.Helper()

	customer, err := builder.NewAccountBuilder().BuildDomain()
	require.NoError(t, err)
	helper, err := builder.NewHelperBuilder().BuildDomain()
	require.NoError(t, err)

	return customer.ID(), helper.ID(), newFakeAccountRepo(customer, helper)
}

func TestBookingUseCase_CreateBooking(t *testing.T) {
	ctx := context.Background()

	params := func(helperID uuid.UUID) usecase.CreateBookingParams {
		return usecase.CreateBookingParams{
			HelperID:    helperID,
			Service:     "Electrical",
			Description: "Fix the ceiling fan",
			BookingDate: fixedNow.Add(48 * time.Hour),
			TimeSlot:    "10:00-12:00",
			TotalCost:   600,
		}
	}

	t.Run("creates a pending booking", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		bookingRepo := newFakeBookingRepo()
		uc := usecase.NewBookingUseCase(bookingRepo, accountRepo, clock.NewMockClock(fixedNow))

		view, err := uc.CreateBooking(ctx, customerID, params(helperID))
		require.NoError(t, err)
		require.NotNil(t, view)

		assert.Equal(t, "pending", view.Status)
		assert.Len(t, bookingRepo.bookings, 1)
	})

	t.Run("defaults service address to the customer's", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		bookingRepo := newFakeBookingRepo()
		uc := usecase.NewBookingUseCase(bookingRepo, accountRepo, clock.NewMockClock(fixedNow))

		view, err := uc.CreateBooking(ctx, customerID, params(helperID))
		require.NoError(t, err)

		assert.Equal(t, "42 MG Road", view.ServiceAddress)
	})

	t.Run("explicit service address wins", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		bookingRepo := newFakeBookingRepo()
		uc := usecase.NewBookingUseCase(bookingRepo, accountRepo, clock.NewMockClock(fixedNow))

		p := params(helperID)
		p.ServiceAddress = "Office, 5th Block"
		view, err := uc.CreateBooking(ctx, customerID, p)
		require.NoError(t, err)

		assert.Equal(t, "Office, 5th Block", view.ServiceAddress)
	})

	t.Run("helpers cannot create bookings", func(t *testing.T) {
		_, helperID, accountRepo := bookingFixture(t)
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.CreateBooking(ctx, helperID, params(helperID))
		require.ErrorIs(t, err, usecase.ErrCustomerRoleRequired)
	})

	t.Run("target must be an existing helper", func(t *testing.T) {
		customerID, _, accountRepo := bookingFixture(t)
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.CreateBooking(ctx, customerID, params(uuid.New()))
		require.ErrorIs(t, err, usecase.ErrHelperNotFound)
	})

	t.Run("booking a customer fails the same way", func(t *testing.T) {
		customerID, _, accountRepo := bookingFixture(t)
		other, err := builder.NewAccountBuilder().
			WithEmail("other@example.com").
			WithPhone("9998887776").
			BuildDomain()
		require.NoError(t, err)
		accountRepo.accounts[other.ID()] = other
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		_, err = uc.CreateBooking(ctx, customerID, params(other.ID()))
		require.ErrorIs(t, err, usecase.ErrHelperNotFound)
	})

	t.Run("missing details are rejected", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		p := params(helperID)
		p.Description = ""
		_, err := uc.CreateBooking(ctx, customerID, p)
		require.ErrorIs(t, err, usecase.ErrMissingBookingFields)
	})

	t.Run("store failure is not reported as missing account", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		accountRepo.findErr = errors.New("connection refused")
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.CreateBooking(ctx, customerID, params(helperID))
		require.Error(t, err)
		require.NotErrorIs(t, err, usecase.ErrAccountNotFound)
		require.NotErrorIs(t, err, usecase.ErrHelperNotFound)
	})
}

func TestBookingUseCase_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("helper completes a booking and payment flips once", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			WithStatus(booking.StatusConfirmed).
			BuildStored()
		bookingRepo := newFakeBookingRepo(stored)
		uc := usecase.NewBookingUseCase(bookingRepo, accountRepo, clock.NewMockClock(fixedNow))

		view, err := uc.UpdateStatus(ctx, stored.ID(), helperID, "completed")
		require.NoError(t, err)

		assert.Equal(t, "completed", view.Status)
		require.NotNil(t, bookingRepo.updated)
		assert.True(t, bookingRepo.updated.IsPaid())
		require.NotNil(t, bookingRepo.updated.PaidAt())
		assert.Equal(t, fixedNow, *bookingRepo.updated.PaidAt())
	})

	t.Run("customer cancels own booking", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			BuildStored()
		bookingRepo := newFakeBookingRepo(stored)
		uc := usecase.NewBookingUseCase(bookingRepo, accountRepo, clock.NewMockClock(fixedNow))

		view, err := uc.UpdateStatus(ctx, stored.ID(), customerID, "cancelled")
		require.NoError(t, err)
		assert.Equal(t, "cancelled", view.Status)
	})

	t.Run("customer cannot confirm", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			BuildStored()
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(stored), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.UpdateStatus(ctx, stored.ID(), customerID, "confirmed")
		require.ErrorIs(t, err, usecase.ErrStatusNotAllowed)
	})

	t.Run("helper sending an unknown status", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			BuildStored()
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(stored), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.UpdateStatus(ctx, stored.ID(), helperID, "garbage")
		require.ErrorIs(t, err, usecase.ErrInvalidHelperStatus)
	})

	t.Run("stranger is refused regardless of the value", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			BuildStored()
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(stored), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.UpdateStatus(ctx, stored.ID(), uuid.New(), "garbage")
		require.ErrorIs(t, err, usecase.ErrStatusNotAllowed)
	})

	t.Run("unknown booking", func(t *testing.T) {
		customerID, _, accountRepo := bookingFixture(t)
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.UpdateStatus(ctx, uuid.New(), customerID, "cancelled")
		require.ErrorIs(t, err, usecase.ErrBookingNotFound)
	})
}

func TestBookingUseCase_GetBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("both parties can read, strangers cannot", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		stored := builder.NewBookingBuilder().
			WithCustomerID(customerID).
			WithHelperID(helperID).
			BuildStored()
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(stored), accountRepo, clock.NewMockClock(fixedNow))

		_, err := uc.GetBooking(ctx, stored.ID(), customerID)
		require.NoError(t, err)

		_, err = uc.GetBooking(ctx, stored.ID(), helperID)
		require.NoError(t, err)

		_, err = uc.GetBooking(ctx, stored.ID(), uuid.New())
		require.ErrorIs(t, err, usecase.ErrNotBookingParty)
	})
}

func TestBookingUseCase_Listings(t *testing.T) {
	ctx := context.Background()

	t.Run("customer and helper listings are scoped", func(t *testing.T) {
		customerID, helperID, accountRepo := bookingFixture(t)
		mine := builder.NewBookingBuilder().WithCustomerID(customerID).WithHelperID(helperID).BuildStored()
		other := builder.NewBookingBuilder().BuildStored()
		uc := usecase.NewBookingUseCase(newFakeBookingRepo(mine, other), accountRepo, clock.NewMockClock(fixedNow))

		views, err := uc.GetCustomerBookings(ctx, customerID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, mine.ID(), views[0].ID)

		views, err = uc.GetHelperBookings(ctx, helperID)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, mine.ID(), views[0].ID)
	})
}
