//go:build unit

package booking_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	bookings []*booking.Booking
	err      error
	calls    int
}

func (s *stubLister) BookingsForItem(_ context.Context, _ int64) ([]*booking.Booking, error) {
	s.calls++
	return s.bookings, s.err
}

func TestValidator_Validate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	v := booking.NewValidator(clock.NewMockClock(now))

	const ownerID, bookerID = int64(1), int64(2)
	item := &booking.Item{ID: 10, Name: "Drill", Available: true, OwnerID: ownerID}
	at := func(h int) time.Time { return now.Add(time.Duration(h) * time.Hour) }
	cand := booking.Candidate{ItemID: item.ID, BookerID: bookerID, Start: at(1), End: at(2)}

	existing := func(s, e int, st booking.Status) *booking.Booking {
		return builder.NewBookingBuilder().
			WithParties(ownerID, 3).
			WithItem(item.ID, item.Name).
			WithInterval(at(s), at(e)).
			WithStatus(st).
			BuildDomain()
	}

	testCases := []struct {
		name       string
		cand       booking.Candidate
		item       *booking.Item
		lister     *stubLister
		errIs      error
		category   error
		listCalled bool
	}{
		{
			name:       "valid request",
			cand:       cand,
			item:       item,
			lister:     &stubLister{},
			listCalled: true,
		},
		{
			name:     "missing item",
			cand:     cand,
			item:     nil,
			lister:   &stubLister{},
			errIs:    booking.ErrItemNotFound,
			category: errs.ErrNotFound,
		},
		{
			name:     "unavailable item",
			cand:     cand,
			item:     &booking.Item{ID: 10, Available: false, OwnerID: ownerID},
			lister:   &stubLister{},
			errIs:    booking.ErrItemUnavailable,
			category: errs.ErrBadRequest,
		},
		{
			name:     "unavailable wins over self-booking",
			cand:     booking.Candidate{ItemID: 10, BookerID: ownerID, Start: at(1), End: at(2)},
			item:     &booking.Item{ID: 10, Available: false, OwnerID: ownerID},
			lister:   &stubLister{},
			errIs:    booking.ErrItemUnavailable,
			category: errs.ErrBadRequest,
		},
		{
			name:     "self booking",
			cand:     booking.Candidate{ItemID: 10, BookerID: ownerID, Start: at(1), End: at(2)},
			item:     item,
			lister:   &stubLister{},
			errIs:    booking.ErrSelfBooking,
			category: errs.ErrForbidden,
		},
		{
			name:     "end equals start",
			cand:     booking.Candidate{ItemID: 10, BookerID: bookerID, Start: at(1), End: at(1)},
			item:     item,
			lister:   &stubLister{},
			errIs:    booking.ErrInvalidInterval,
			category: errs.ErrBadRequest,
		},
		{
			name:     "end before start",
			cand:     booking.Candidate{ItemID: 10, BookerID: bookerID, Start: at(2), End: at(1)},
			item:     item,
			lister:   &stubLister{},
			errIs:    booking.ErrInvalidInterval,
			category: errs.ErrBadRequest,
		},
		{
			name:     "start in the past",
			cand:     booking.Candidate{ItemID: 10, BookerID: bookerID, Start: at(-1), End: at(1)},
			item:     item,
			lister:   &stubLister{},
			errIs:    booking.ErrStartInPast,
			category: errs.ErrBadRequest,
		},
		{
			name:       "start exactly now is allowed",
			cand:       booking.Candidate{ItemID: 10, BookerID: bookerID, Start: now, End: at(1)},
			item:       item,
			lister:     &stubLister{},
			listCalled: true,
		},
		{
			name:       "overlapping waiting booking",
			cand:       cand,
			item:       item,
			lister:     &stubLister{bookings: []*booking.Booking{existing(0, 2, booking.StatusWaiting)}},
			errIs:      booking.ErrOverlap,
			category:   errs.ErrForbidden,
			listCalled: true,
		},
		{
			name:       "overlapping approved booking",
			cand:       cand,
			item:       item,
			lister:     &stubLister{bookings: []*booking.Booking{existing(1, 5, booking.StatusApproved)}},
			errIs:      booking.ErrOverlap,
			category:   errs.ErrForbidden,
			listCalled: true,
		},
		{
			name:       "overlapping rejected booking",
			cand:       booking.Candidate{ItemID: item.ID, BookerID: bookerID, Start: at(1).Add(30 * time.Minute), End: at(3)},
			item:       item,
			lister:     &stubLister{bookings: []*booking.Booking{existing(1, 2, booking.StatusRejected)}},
			errIs:      booking.ErrOverlap,
			category:   errs.ErrForbidden,
			listCalled: true,
		},
		{
			name:       "overlapping canceled booking",
			cand:       booking.Candidate{ItemID: item.ID, BookerID: bookerID, Start: at(1).Add(30 * time.Minute), End: at(3)},
			item:       item,
			lister:     &stubLister{bookings: []*booking.Booking{existing(1, 2, booking.StatusCanceled)}},
			errIs:      booking.ErrOverlap,
			category:   errs.ErrForbidden,
			listCalled: true,
		},
		{
			name: "touching bookings do not overlap",
			cand: cand,
			item: item,
			lister: &stubLister{bookings: []*booking.Booking{
				existing(0, 1, booking.StatusApproved),
				existing(2, 3, booking.StatusWaiting),
			}},
			listCalled: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			interval, err := v.Validate(ctx, tc.cand, tc.item, tc.lister)

			assert.Equal(t, tc.listCalled, tc.lister.calls > 0, "lister call expectation")
			if tc.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.errIs)
				assert.True(t, errs.Is(err, tc.category), "category mismatch for %v", err)
				return
			}
			require.NoError(t, err)
			assert.True(t, interval.Start().Equal(tc.cand.Start))
			assert.True(t, interval.End().Equal(tc.cand.End))
		})
	}

	t.Run("lister failure is returned", func(t *testing.T) {
		storeErr := errors.New("store down")
		_, err := v.Validate(ctx, cand, item, &stubLister{err: storeErr})
		assert.ErrorIs(t, err, storeErr)
	})
}
