//go:build unit

package usecase_test

import (
	"context"

	"helperhub/internal/domain/account"
	"helperhub/internal/domain/booking"
	"helperhub/internal/infra"
	"helperhub/internal/usecase"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var errNotFound = infra.WrapRepoErr("not found", nil, infra.KindNotFound)

type fakeAccountRepo struct {
	accounts map[uuid.UUID]*account.Account

	createErr error
	updateErr error
	findErr   error

	searchResult []*readmodel.HelperPublicRM
	searchFilter usecase.HelperFilter
}

func newFakeAccountRepo(accounts ...*account.Account) *fakeAccountRepo {
	r := &fakeAccountRepo{accounts: make(map[uuid.UUID]*account.Account)}
	for _, a := range accounts {
		r.accounts[a.ID()] = a
	}
	return r
}

func (r *fakeAccountRepo) Create(_ context.Context, a *account.Account) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.accounts[a.ID()] = a
	return nil
}

func (r *fakeAccountRepo) Update(_ context.Context, a *account.Account) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.accounts[a.ID()] = a
	return nil
}

func (r *fakeAccountRepo) FindByID(_ context.Context, id uuid.UUID) (*account.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*account.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Email().Value() == email {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAccountRepo) FindByPhone(_ context.Context, phone string) (*account.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, a := range r.accounts {
		if a.Phone().Value() == phone {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (r *fakeAccountRepo) SearchHelpers(_ context.Context, filter usecase.HelperFilter) ([]*readmodel.HelperPublicRM, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	r.searchFilter = filter
	return r.searchResult, nil
}

type fakeBookingRepo struct {
	bookings map[uuid.UUID]*booking.Booking
	views    map[uuid.UUID]*readmodel.BookingRM

	createErr error
	updateErr error

	updated *booking.Booking
}

func newFakeBookingRepo(bookings ...*booking.Booking) *fakeBookingRepo {
	r := &fakeBookingRepo{
		bookings: make(map[uuid.UUID]*booking.Booking),
		views:    make(map[uuid.UUID]*readmodel.BookingRM),
	}
	for _, b := range bookings {
		r.bookings[b.ID()] = b
		r.views[b.ID()] = &readmodel.BookingRM{ID: b.ID(), Status: b.Status().String()}
	}
	return r
}

func (r *fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.bookings[b.ID()] = b
	r.views[b.ID()] = &readmodel.BookingRM{
		ID:             b.ID(),
		CustomerID:     b.CustomerID(),
		HelperID:       b.HelperID(),
		Service:        b.Service(),
		Status:         b.Status().String(),
		ServiceAddress: b.ServiceAddress(),
		TotalCost:      b.TotalCost(),
	}
	return nil
}

func (r *fakeBookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, errNotFound
	}
	return b, nil
}

func (r *fakeBookingRepo) FindViewByID(_ context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	v, ok := r.views[id]
	if !ok {
		return nil, errNotFound
	}
	return v, nil
}

func (r *fakeBookingRepo) FindByCustomerID(_ context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	var out []*readmodel.BookingRM
	for id, b := range r.bookings {
		if b.CustomerID() == customerID {
			out = append(out, r.views[id])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindByHelperID(_ context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error) {
	var out []*readmodel.BookingRM
	for id, b := range r.bookings {
		if b.HelperID() == helperID {
			out = append(out, r.views[id])
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.updated = b
	r.bookings[b.ID()] = b
	r.views[b.ID()] = &readmodel.BookingRM{
		ID:     b.ID(),
		Status: b.Status().String(),
		IsPaid: b.IsPaid(),
		PaidAt: b.PaidAt(),
	}
	return nil
}
