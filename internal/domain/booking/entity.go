package booking

import "time"

// Item is the read-only view of an item the booking rules need.
type Item struct {
	ID        int64
	Name      string
	Available bool
	OwnerID   int64
}

type Booking struct {
	id        int64
	item      Item
	bookerID  int64
	interval  Interval
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates an unsaved booking in WAITING. Run the Validator first.
func NewBooking(item Item, bookerID int64, interval Interval) *Booking {
	return &Booking{
		item:     item,
		bookerID: bookerID,
		interval: interval,
		status:   StatusWaiting,
	}
}

func ReconstructBooking(
	id int64,
	item Item,
	bookerID int64,
	interval Interval,
	status Status,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		item:      item,
		bookerID:  bookerID,
		interval:  interval,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Item() Item           { return b.item }
func (b *Booking) ItemID() int64        { return b.item.ID }
func (b *Booking) OwnerID() int64       { return b.item.OwnerID }
func (b *Booking) BookerID() int64      { return b.bookerID }
func (b *Booking) Interval() Interval   { return b.interval }
func (b *Booking) Start() time.Time     { return b.interval.start }
func (b *Booking) End() time.Time       { return b.interval.end }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// Decide applies the owner's approve/reject decision.
func (b *Booking) Decide(actorID int64, d Decision) error {
	if actorID != b.item.OwnerID {
		return ErrNotItemOwner
	}
	return b.moveTo(d.Target())
}

// Cancel withdraws a booking that the owner has not resolved yet.
func (b *Booking) Cancel(actorID int64) error {
	if actorID != b.bookerID {
		return ErrNotBooker
	}
	return b.moveTo(StatusCanceled)
}

func (b *Booking) moveTo(next Status) error {
	if b.status.IsTerminal() || !CanTransition(b.status, next) {
		return alreadyResolved(b.status)
	}
	b.status = next
	return nil
}
