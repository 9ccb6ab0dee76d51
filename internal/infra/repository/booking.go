package repository

import (
	"context"
	"errors"
	"time"

	"helperhub/internal/domain/booking"
	"helperhub/internal/infra"
	"helperhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `
	id, customer_id, helper_id, service, description, booking_date,
	time_slot, status, service_address, total_cost, is_paid, paid_at,
	is_reviewed, created_at, updated_at`

// bookingViewQuery joins both parties so a single read yields the
// counterpart-enriched view.
const bookingViewQuery = `
	SELECT
		b.id, b.customer_id, b.helper_id, b.service, b.description,
		b.booking_date, b.time_slot, b.status, b.service_address,
		b.total_cost, b.is_paid, b.paid_at, b.is_reviewed,
		b.created_at, b.updated_at,
		c.name, c.email, c.phone, c.address,
		h.name, h.email, h.phone, h.profile_picture, h.services
	FROM bookings b
	JOIN accounts c ON c.id = b.customer_id
	JOIN accounts h ON h.id = b.helper_id`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (
			id, customer_id, helper_id, service, description, booking_date,
			time_slot, status, service_address, total_cost, is_paid, is_reviewed
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		b.ID(), b.CustomerID(), b.HelperID(), b.Service(), b.Description(),
		b.BookingDate(), b.TimeSlot(), b.Status().String(), b.ServiceAddress(),
		b.TotalCost(), b.IsPaid(), b.IsReviewed(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	entity, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return entity, nil
}

func (r *BookingRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, bookingViewQuery+` WHERE b.id = $1`, id)

	rm, err := scanBookingView(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking view", err)
	}
	return rm, nil
}

func (r *BookingRepository) FindByCustomerID(ctx context.Context, customerID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return r.findViews(ctx, `b.customer_id = $1`, customerID)
}

func (r *BookingRepository) FindByHelperID(ctx context.Context, helperID uuid.UUID) ([]*readmodel.BookingRM, error) {
	return r.findViews(ctx, `b.helper_id = $1`, helperID)
}

func (r *BookingRepository) findViews(ctx context.Context, where string, arg any) ([]*readmodel.BookingRM, error) {
	rows, err := r.db.Query(ctx,
		bookingViewQuery+` WHERE `+where+` ORDER BY b.booking_date DESC, b.created_at DESC`, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}

	return result, nil
}

// UpdateStatus writes status and payment fields together; the whole
// transition is one document-level write.
func (r *BookingRepository) UpdateStatus(ctx context.Context, b *booking.Booking) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings
		SET status = $2, is_paid = $3, paid_at = $4, updated_at = $5
		WHERE id = $1`,
		b.ID(), b.Status().String(), b.IsPaid(), b.PaidAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, customerID, helperID       uuid.UUID
		service, description, timeSlot string
		bookingDate                    time.Time
		status, serviceAddress         string
		totalCost                      float64
		isPaid, isReviewed             bool
		paidAt                         *time.Time
		createdAt, updatedAt           time.Time
	)

	err := row.Scan(
		&id, &customerID, &helperID, &service, &description, &bookingDate,
		&timeSlot, &status, &serviceAddress, &totalCost, &isPaid, &paidAt,
		&isReviewed, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, customerID, helperID, service, description, bookingDate,
		timeSlot, booking.Status(status), serviceAddress, totalCost,
		isPaid, paidAt, isReviewed, createdAt, updatedAt,
	), nil
}

func scanBookingView(row pgx.Row) (*readmodel.BookingRM, error) {
	rm := &readmodel.BookingRM{
		Customer: &readmodel.PartyRM{},
		Helper:   &readmodel.PartyRM{},
	}

	err := row.Scan(
		&rm.ID, &rm.CustomerID, &rm.HelperID, &rm.Service, &rm.Description,
		&rm.BookingDate, &rm.TimeSlot, &rm.Status, &rm.ServiceAddress,
		&rm.TotalCost, &rm.IsPaid, &rm.PaidAt, &rm.IsReviewed,
		&rm.CreatedAt, &rm.UpdatedAt,
		&rm.Customer.Name, &rm.Customer.Email, &rm.Customer.Phone, &rm.Customer.Address,
		&rm.Helper.Name, &rm.Helper.Email, &rm.Helper.Phone,
		&rm.Helper.ProfilePicture, &rm.Helper.Services,
	)
	if err != nil {
		return nil, err
	}

	rm.Customer.ID = rm.CustomerID
	rm.Helper.ID = rm.HelperID
	return rm, nil
}
