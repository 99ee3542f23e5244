package shared

import (
	"context"

	"shareit/internal/domain/booking"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups a command makes inside its transaction.
// The ForUpdate variants take a row lock held until the transaction ends.
type CommandReads interface {
	booking.BookingLister

	UserExists(ctx context.Context, id int64) (bool, error)
	// ItemForUpdate returns nil, nil when the item does not exist.
	ItemForUpdate(ctx context.Context, id int64) (*booking.Item, error)
	BookingForUpdate(ctx context.Context, id int64) (*booking.Booking, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}
