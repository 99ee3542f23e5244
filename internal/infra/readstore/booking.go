package readstore

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewByIDRow, error)
	GetBookingForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingForUpdateRow, error)
	ListBookingsByItem(ctx context.Context, db sqlc.DBTX, itemID int64) ([]sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return &queries.BookingView{
		ID:      row.ID,
		Start:   pgconv.TimeFromPgtype(row.StartDate),
		End:     pgconv.TimeFromPgtype(row.EndDate),
		Status:  row.Status,
		Item:    queries.ItemRef{ID: row.ItemID, Name: row.ItemName},
		Booker:  queries.UserRef{ID: row.BookerID},
		OwnerID: row.OwnerID,
	}, nil
}

// FindForUpdate locks the booking row for the rest of the transaction.
func (r *BookingReadStore) FindForUpdate(ctx context.Context, id int64) (*booking.Booking, error) {
	row, err := r.queries.GetBookingForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	item := booking.Item{
		ID:        row.ItemID,
		Name:      row.ItemName,
		Available: row.IsAvailable,
		OwnerID:   row.OwnerID,
	}
	return toBooking(row.ID, item, row.BookerID, row.StartDate, row.EndDate, row.Status, row.CreatedAt, row.UpdatedAt)
}

// ListByItem returns every booking of the item regardless of status. Only
// ItemID is set on the returned bookings' item.
func (r *BookingReadStore) ListByItem(ctx context.Context, itemID int64) ([]*booking.Booking, error) {
	rows, err := r.queries.ListBookingsByItem(ctx, r.db, itemID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by item", err)
	}

	result := make([]*booking.Booking, 0, len(rows))
	for _, row := range rows {
		b, err := toBooking(row.ID, booking.Item{ID: row.ItemID}, row.BookerID, row.StartDate, row.EndDate, row.Status, row.CreatedAt, row.UpdatedAt)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}

// toBooking refuses rows the schema checks should have kept out.
func toBooking(
	id int64,
	item booking.Item,
	bookerID int64,
	start, end pgtype.Timestamptz,
	status string,
	createdAt, updatedAt pgtype.Timestamptz,
) (*booking.Booking, error) {
	interval, err := booking.NewInterval(pgconv.TimeFromPgtype(start), pgconv.TimeFromPgtype(end))
	if err != nil {
		return nil, infra.WrapRepoErr("stored booking has invalid interval", err, infra.KindCheckViolated)
	}
	st := booking.Status(status)
	if !st.IsValid() {
		return nil, infra.WrapRepoErr("stored booking has unknown status", errs.Newf("booking %d status %q", id, status), infra.KindCheckViolated)
	}
	return booking.ReconstructBooking(
		id, item, bookerID, interval, st,
		pgconv.TimeFromPgtype(createdAt), pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *BookingReadStore) List(ctx context.Context, q booking.Query, page queries.Page) ([]*queries.BookingView, error) {
	sql, args, err := buildListQuery(q, page).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	views := make([]*queries.BookingView, 0, page.Size)
	for rows.Next() {
		var row sqlc.GetBookingViewByIDRow
		if err := rows.Scan(
			&row.ID, &row.StartDate, &row.EndDate, &row.Status,
			&row.ItemID, &row.ItemName, &row.OwnerID, &row.BookerID,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, &queries.BookingView{
			ID:      row.ID,
			Start:   pgconv.TimeFromPgtype(row.StartDate),
			End:     pgconv.TimeFromPgtype(row.EndDate),
			Status:  row.Status,
			Item:    queries.ItemRef{ID: row.ItemID, Name: row.ItemName},
			Booker:  queries.UserRef{ID: row.BookerID},
			OwnerID: row.OwnerID,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return views, nil
}

var sortColumns = map[booking.SortField]string{
	booking.SortByStart: "b.start_date",
	booking.SortByID:    "b.id",
}

func buildListQuery(q booking.Query, page queries.Page) squirrel.SelectBuilder {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(
		"b.id", "b.start_date", "b.end_date", "b.status",
		"b.item_id", "i.name", "i.owner_id", "b.booker_id",
	).
		From("bookings b").
		Join("items i ON i.id = b.item_id")

	if q.Viewpoint == booking.ViewpointOwner {
		query = query.Where(squirrel.Eq{"i.owner_id": q.SubjectID})
	} else {
		query = query.Where(squirrel.Eq{"b.booker_id": q.SubjectID})
	}

	if len(q.Statuses) > 0 {
		statuses := make([]string, len(q.Statuses))
		for i, s := range q.Statuses {
			statuses[i] = s.String()
		}
		query = query.Where(squirrel.Eq{"b.status": statuses})
	}
	if q.StartAfter != nil {
		query = query.Where(squirrel.Gt{"b.start_date": *q.StartAfter})
	}
	if q.StartAtOrBefore != nil {
		query = query.Where(squirrel.LtOrEq{"b.start_date": *q.StartAtOrBefore})
	}
	if q.EndBefore != nil {
		query = query.Where(squirrel.Lt{"b.end_date": *q.EndBefore})
	}
	if q.EndAtOrAfter != nil {
		query = query.Where(squirrel.GtOrEq{"b.end_date": *q.EndAtOrAfter})
	}

	for _, term := range q.Order {
		dir := "ASC"
		if term.Desc {
			dir = "DESC"
		}
		query = query.OrderBy(sortColumns[term.Field] + " " + dir)
	}

	// #nosec G115 -- page bounds are validated non-negative by queries.NewPage
	return query.Limit(uint64(page.Size)).Offset(uint64(page.From))
}
