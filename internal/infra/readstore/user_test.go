//go:build unit

package readstore

import (
	"context"
	"testing"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) UserExists(ctx context.Context, db sqlc.DBTX, id int64) (bool, error) {
	args := m.Called(ctx, db, id)
	return args.Bool(0), args.Error(1)
}

func TestExists(t *testing.T) {
	tests := []struct {
		name       string
		userID     int64
		mockReturn bool
		mockError  error
		want       bool
		wantError  bool
	}{
		{
			name:       "user exists",
			userID:     1,
			mockReturn: true,
			want:       true,
		},
		{
			name:       "user missing",
			userID:     999,
			mockReturn: false,
			want:       false,
		},
		{
			name:      "database error",
			userID:    1,
			mockError: assert.AnError,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			store := NewUserReadStore(mockQueries, nil)

			mockQueries.On("UserExists", mock.Anything, mock.Anything, tt.userID).Return(tt.mockReturn, tt.mockError)

			got, err := store.Exists(context.Background(), tt.userID)

			if tt.wantError {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, got)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}
