//go:build unit || e2e

package builder

import (
	"time"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type BookingBuilder struct {
	ID        int64
	ItemID    int64
	ItemName  string
	Available bool
	OwnerID   int64
	BookerID  int64
	Start     time.Time
	End       time.Time
	Status    booking.Status
	CreatedAt time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	return &BookingBuilder{
		ID:        1,
		ItemID:    10,
		ItemName:  "Cordless drill",
		Available: true,
		OwnerID:   1,
		BookerID:  2,
		Start:     start,
		End:       start.Add(2 * time.Hour),
		Status:    booking.StatusWaiting,
		CreatedAt: time.Now().UTC(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithID(id int64) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithItem(id int64, name string) *BookingBuilder {
	b.ItemID = id
	b.ItemName = name
	return b
}

func (b *BookingBuilder) WithParties(ownerID, bookerID int64) *BookingBuilder {
	b.OwnerID = ownerID
	b.BookerID = bookerID
	return b
}

func (b *BookingBuilder) WithInterval(start, end time.Time) *BookingBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

// Build methods
func (b *BookingBuilder) BuildItem() booking.Item {
	return booking.Item{ID: b.ItemID, Name: b.ItemName, Available: b.Available, OwnerID: b.OwnerID}
}

// BuildDomain panics on an invalid interval; fixtures are expected to be well formed.
func (b *BookingBuilder) BuildDomain() *booking.Booking {
	interval, err := booking.NewInterval(b.Start, b.End)
	if err != nil {
		panic("builder: " + err.Error())
	}
	return booking.ReconstructBooking(b.ID, b.BuildItem(), b.BookerID, interval, b.Status, b.CreatedAt, b.CreatedAt)
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	start, end := b.Start, b.End
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  &start,
		End:    &end,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:      b.ID,
		Start:   b.Start,
		End:     b.End,
		Status:  string(b.Status),
		Item:    queries.ItemRef{ID: b.ItemID, Name: b.ItemName},
		Booker:  queries.UserRef{ID: b.BookerID},
		OwnerID: b.OwnerID,
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByIDRow {
	return sqlc.GetBookingViewByIDRow{
		ID:        b.ID,
		StartDate: pgconv.TimeToPgtype(b.Start),
		EndDate:   pgconv.TimeToPgtype(b.End),
		Status:    string(b.Status),
		ItemID:    b.ItemID,
		ItemName:  b.ItemName,
		OwnerID:   b.OwnerID,
		BookerID:  b.BookerID,
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt),
		UpdatedAt: pgconv.TimeToPgtype(b.CreatedAt),
	}
}
