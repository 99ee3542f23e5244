package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UserReadQueries interface {
	UserExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) Exists(ctx context.Context, id int64) (bool, error) {
	ok, err := r.queries.UserExists(ctx, r.db, id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check user existence", err)
	}
	return ok, nil
}
