package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
)

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	List(ctx context.Context, q booking.Query, page Page) ([]*BookingView, error)
}

type UserReadStore interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

type ListBookingsInput struct {
	Viewpoint booking.Viewpoint
	State     string
	SubjectID int64
	From      *int
	Size      *int
}

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, requesterID int64) (*BookingView, error)
	List(ctx context.Context, in ListBookingsInput) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo  BookingReadStore
	users UserReadStore
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewBookingQueries(repo BookingReadStore, users UserReadStore, clk clock.Clock, cfg config.Config) BookingQueries {
	return &bookingQueriesImpl{
		repo:  repo,
		users: users,
		clock: clk,
		cfg:   cfg.Booking,
	}
}

// GetByID hides bookings from everyone except the booker and the item owner.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, requesterID int64) (*BookingView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	view, err := q.repo.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, err
	}

	if view.Booker.ID != requesterID && view.OwnerID != requesterID {
		return nil, booking.ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) List(ctx context.Context, in ListBookingsInput) ([]*BookingView, error) {
	filter, err := booking.ParseStateFilter(in.State)
	if err != nil {
		return nil, err
	}
	page, err := NewPage(in.From, in.Size, q.cfg)
	if err != nil {
		return nil, err
	}
	if err := q.requireUser(ctx, in.SubjectID); err != nil {
		return nil, err
	}

	query := booking.Classify(in.Viewpoint, filter, in.SubjectID, q.clock.Now())
	rows, err := q.repo.List(ctx, query, page)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []*BookingView{}
	}
	return rows, nil
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, id int64) error {
	ok, err := q.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return booking.ErrUserNotFound
	}
	return nil
}
