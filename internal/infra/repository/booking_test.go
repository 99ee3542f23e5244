//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/tests/common/builder"
	repositorymock "shareit/tests/mock/repository"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

// =============================================================================
// Create Booking Tests
// =============================================================================

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, *booking.Booking, sqlc.DBTX)
		expectedID    int64
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking created as WAITING",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, b *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateBookingParams) (sqlc.Bookings, error) {
						assert.Equal(t, "WAITING", arg.Status)
						assert.Equal(t, b.ItemID(), arg.ItemID)
						assert.Equal(t, b.BookerID(), arg.BookerID)
						assert.True(t, arg.StartDate.Time.Equal(b.Start()))
						assert.True(t, arg.EndDate.Time.Equal(b.End()))
						return sqlc.Bookings{ID: 42}, nil
					})
			},
			expectedID: 42,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
		{
			name: "error: overlapping booking rejected by exclusion constraint",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, _ *booking.Booking, tx sqlc.DBTX) {
				excl := &pgconn.PgError{Code: pgerrcode.ExclusionViolation, Message: "conflicting key value violates exclusion constraint"}
				mock.EXPECT().CreateBooking(ctx, tx, gomock.Any()).Return(sqlc.Bookings{}, excl)
			},
			expectedError: true,
			expectKind:    infra.KindExclusionViolated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().WithID(0).BuildDomain()
			tc.setupMock(mockQueries, b, mockDB)

			id, actualError := repo.Create(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
				assert.Zero(t, id)
			} else {
				assert.NoError(t, actualError)
				assert.Equal(t, tc.expectedID, id)
			}
		})
	}
}

// =============================================================================
// UpdateStatus Tests
// =============================================================================

func TestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockBookingWriteQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: status updated",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, sqlc.UpdateBookingStatusParams{ID: 7, Status: "APPROVED"}).Return(int64(1), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error occurs",
			setupMock: func(mock *repositorymock.MockBookingWriteQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateBookingStatus(ctx, tx, gomock.Any()).Return(int64(0), errors.New("database connection error"))
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockBookingWriteQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewBookingRepository(mockQueries, mockDB)

			b := builder.NewBookingBuilder().WithID(7).WithStatus(booking.StatusApproved).BuildDomain()
			tc.setupMock(mockQueries, mockDB)

			actualError := repo.UpdateStatus(ctx, mockDB, b)

			if tc.expectedError {
				require.Error(t, actualError)
				assert.True(t, infra.IsKind(actualError, tc.expectKind), "expected kind [%v] but got [%T] (%v)", tc.expectKind, actualError, actualError)
			} else {
				assert.NoError(t, actualError)
			}
		})
	}
}
