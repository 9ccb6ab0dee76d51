package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotParty            = errors.New("not authorized to update this booking status")
	ErrInvalidHelperStatus = errors.New("invalid status for helper")
)

// Statuses the assigned helper may set. The customer's only target is
// cancelled.
var helperStatuses = map[Status]bool{
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusRejected:  true,
}

// AuthorizeTransition decides whether actorID may move the booking to
// next. Rules are ordered: the booking's customer may only ever cancel;
// the assigned helper may set any of confirmed/completed/cancelled/
// rejected; anyone else is refused outright, whatever value next holds.
//
// There is deliberately no reachability check against the current
// status: a terminal booking can still be re-transitioned. Whether that
// should stay is an open product question; changing it silently would
// alter observable behavior.
func (b *Booking) AuthorizeTransition(actorID uuid.UUID, next Status) error {
	switch {
	case actorID == b.customerID && next == StatusCancelled:
		return nil
	case actorID == b.helperID:
		if !helperStatuses[next] {
			return ErrInvalidHelperStatus
		}
		return nil
	default:
		return ErrNotParty
	}
}

// ApplyStatus performs an authorized transition. Completing an unpaid
// booking also flips the payment flags; that is the only place payment
// state changes, and it happens at most once.
func (b *Booking) ApplyStatus(actorID uuid.UUID, next Status, now time.Time) error {
	if err := b.AuthorizeTransition(actorID, next); err != nil {
		return err
	}

	b.status = next
	if next == StatusCompleted && !b.isPaid {
		b.isPaid = true
		paidAt := now
		b.paidAt = &paidAt
	}
	b.updatedAt = now
	return nil
}
