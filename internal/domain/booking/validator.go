package booking

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
)

// BookingLister returns every booking recorded for an item, in any status.
type BookingLister interface {
	BookingsForItem(ctx context.Context, itemID int64) ([]*Booking, error)
}

type Candidate struct {
	ItemID   int64
	BookerID int64
	Start    time.Time
	End      time.Time
}

type Validator struct {
	clock clock.Clock
}

func NewValidator(clk clock.Clock) *Validator {
	return &Validator{clock: clk}
}

// Validate returns the first rule the candidate breaks, checked in a fixed order:
// item exists, item available, not self-booking, well-formed interval, no overlap.
// item is nil when the store has no such item.
func (v *Validator) Validate(ctx context.Context, cand Candidate, item *Item, lister BookingLister) (Interval, error) {
	if item == nil {
		return Interval{}, ErrItemNotFound
	}
	if !item.Available {
		return Interval{}, ErrItemUnavailable
	}
	if item.OwnerID == cand.BookerID {
		return Interval{}, ErrSelfBooking
	}

	interval, err := NewInterval(cand.Start, cand.End)
	if err != nil {
		return Interval{}, err
	}
	if interval.Start().Before(v.clock.Now()) {
		return Interval{}, ErrStartInPast
	}

	existing, err := lister.BookingsForItem(ctx, item.ID)
	if err != nil {
		return Interval{}, err
	}
	if HasOverlap(interval, existing) {
		return Interval{}, ErrOverlap
	}
	return interval, nil
}

// HasOverlap counts every existing booking regardless of status.
func HasOverlap(interval Interval, existing []*Booking) bool {
	for _, b := range existing {
		if interval.Overlaps(b.Interval()) {
			return true
		}
	}
	return false
}
