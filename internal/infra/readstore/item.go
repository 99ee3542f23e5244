package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

type ItemReadQueries interface {
	GetItemForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

// FindForUpdate locks the item row. Concurrent bookings of the same item
// queue behind it until the holding transaction ends.
func (r *ItemReadStore) FindForUpdate(ctx context.Context, id int64) (*booking.Item, error) {
	row, err := r.queries.GetItemForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock item", err)
	}
	return toItem(row), nil
}

func toItem(row sqlc.Items) *booking.Item {
	return &booking.Item{
		ID:        row.ID,
		Name:      row.Name,
		Available: row.IsAvailable,
		OwnerID:   row.OwnerID,
	}
}
