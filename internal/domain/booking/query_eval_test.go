//go:build unit

package booking_test

import (
	"cmp"
	"slices"

	"shareit/internal/domain/booking"
)

// matches evaluates q against a single booking in memory, mirroring the SQL the
// read store builds from the same Query.
func matches(q booking.Query, b *booking.Booking) bool {
	switch q.Viewpoint {
	case booking.ViewpointOwner:
		if b.OwnerID() != q.SubjectID {
			return false
		}
	default:
		if b.BookerID() != q.SubjectID {
			return false
		}
	}

	if len(q.Statuses) > 0 && !slices.Contains(q.Statuses, b.Status()) {
		return false
	}
	if q.StartAfter != nil && !b.Start().After(*q.StartAfter) {
		return false
	}
	if q.StartAtOrBefore != nil && b.Start().After(*q.StartAtOrBefore) {
		return false
	}
	if q.EndBefore != nil && !b.End().Before(*q.EndBefore) {
		return false
	}
	if q.EndAtOrAfter != nil && b.End().Before(*q.EndAtOrAfter) {
		return false
	}
	return true
}

// less orders two bookings by q.Order.
func less(q booking.Query, a, b *booking.Booking) bool {
	for _, term := range q.Order {
		var c int
		switch term.Field {
		case booking.SortByStart:
			c = a.Start().Compare(b.Start())
		case booking.SortByID:
			c = cmp.Compare(a.ID(), b.ID())
		}
		if c == 0 {
			continue
		}
		if term.Desc {
			return c > 0
		}
		return c < 0
	}
	return false
}
