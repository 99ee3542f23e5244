package commands

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

type CreateBookingInput struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	Create(ctx context.Context, in CreateBookingInput, bookerID int64) (*CreateBookingResult, error)
	Decide(ctx context.Context, bookingID int64, approved bool, actorID int64) error
	Cancel(ctx context.Context, bookingID int64, actorID int64) error
}

type bookingUseCaseImpl struct {
	uow       shared.UnitOfWork
	validator *booking.Validator
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{
		uow:       uow,
		validator: booking.NewValidator(clk),
	}
}

// Create locks the item row before reading its bookings, so concurrent
// requests for the same item are validated one after another.
func (uc *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput, bookerID int64) (*CreateBookingResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireUser(ctx, tx, bookerID); err != nil {
			return err
		}

		item, err := tx.Reads().ItemForUpdate(ctx, in.ItemID)
		if err != nil {
			return err
		}

		cand := booking.Candidate{
			ItemID:   in.ItemID,
			BookerID: bookerID,
			Start:    in.Start,
			End:      in.End,
		}
		interval, err := uc.validator.Validate(ctx, cand, item, tx.Reads())
		if err != nil {
			return err
		}

		b := booking.NewBooking(*item, bookerID, interval)
		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return err
		}
		createdID = id
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindExclusionViolated) {
			err = booking.ErrOverlap
		}
		recordRejection(err)
		return nil, err
	}

	metrics.RecordTransition(booking.StatusWaiting.String())
	return &CreateBookingResult{BookingID: createdID}, nil
}

func (uc *bookingUseCaseImpl) Decide(ctx context.Context, bookingID int64, approved bool, actorID int64) error {
	return uc.transition(ctx, bookingID, actorID, func(b *booking.Booking) error {
		return b.Decide(actorID, booking.DecisionFromApproved(approved))
	})
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, bookingID int64, actorID int64) error {
	return uc.transition(ctx, bookingID, actorID, func(b *booking.Booking) error {
		return b.Cancel(actorID)
	})
}

func (uc *bookingUseCaseImpl) transition(ctx context.Context, bookingID, actorID int64, apply func(*booking.Booking) error) error {
	var next booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := requireUser(ctx, tx, actorID); err != nil {
			return err
		}

		b, err := tx.Reads().BookingForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return booking.ErrBookingNotFound
			}
			return err
		}

		if err := apply(b); err != nil {
			return err
		}
		next = b.Status()
		return tx.Bookings().UpdateStatus(ctx, tx.DB(), b)
	})
	if err != nil {
		return err
	}

	metrics.RecordTransition(next.String())
	return nil
}

func requireUser(ctx context.Context, tx shared.Tx, id int64) error {
	ok, err := tx.Reads().UserExists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return booking.ErrUserNotFound
	}
	return nil
}

var rejectionReasons = []struct {
	err    error
	reason string
}{
	{booking.ErrUserNotFound, "user_not_found"},
	{booking.ErrItemNotFound, "item_not_found"},
	{booking.ErrItemUnavailable, "item_unavailable"},
	{booking.ErrSelfBooking, "self_booking"},
	{booking.ErrInvalidInterval, "invalid_interval"},
	{booking.ErrStartInPast, "start_in_past"},
	{booking.ErrOverlap, "overlap"},
}

func recordRejection(err error) {
	for _, r := range rejectionReasons {
		if errors.Is(err, r.err) {
			metrics.RecordRejection(r.reason)
			return
		}
	}
}
