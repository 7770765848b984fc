//go:build unit

package readstore

import (
	"context"
	"testing"

	"travel-booking/internal/infra"
	sqlc "travel-booking/internal/infra/sqlc/generated"
	"travel-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockUserReadQueries struct {
	mock.Mock
}

func (m *MockUserReadQueries) FindUserByEmail(ctx context.Context, db sqlc.DBTX, email string) (sqlc.Users, error) {
	args := m.Called(ctx, db, email)
	return args.Get(0).(sqlc.Users), args.Error(1)
}

func (m *MockUserReadQueries) FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.FindUserByIDRow, error) {
	args := m.Called(ctx, db, id)
	return args.Get(0).(sqlc.FindUserByIDRow), args.Error(1)
}

func TestFindByEmail(t *testing.T) {
	active := builder.NewUserBuilder().BuildInfra()
	inactive := builder.NewUserBuilder().WithEmail("inactive@example.com").AsInactive().BuildInfra()

	tests := []struct {
		name       string
		email      string
		mockReturn sqlc.Users
		mockError  error
		wantKind   infra.RepositoryErrorKind
	}{
		{name: "active user", email: active.Email, mockReturn: active},
		{name: "inactive user is still returned for the login check", email: inactive.Email, mockReturn: inactive},
		{name: "no rows", email: "missing@example.com", mockError: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "database error", email: active.Email, mockError: assert.AnError, wantKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQueries := new(MockUserReadQueries)
			mockQueries.On("FindUserByEmail", mock.Anything, mock.Anything, tt.email).Return(tt.mockReturn, tt.mockError)

			store := NewUserReadStore(mockQueries, nil)
			row, err := store.FindByEmail(context.Background(), tt.email)

			if tt.wantKind != "" {
				assert.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.wantKind))
				assert.Empty(t, row.PasswordHash)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.email, row.Email)
				assert.Equal(t, tt.mockReturn.PasswordHash, row.PasswordHash)
				assert.Equal(t, tt.mockReturn.IsActive, row.IsActive)
			}

			mockQueries.AssertExpectations(t)
		})
	}
}

func TestFindByID(t *testing.T) {
	u := builder.NewUserBuilder().WithRole("operator").BuildInfra()
	row := sqlc.FindUserByIDRow{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
	}

	t.Run("maps the row to a view", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, u.ID).Return(row, nil)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), u.ID)

		assert.NoError(t, err)
		assert.Equal(t, u.ID, view.ID)
		assert.Equal(t, "operator", view.Role)
		assert.Equal(t, u.CreatedAt.Time, view.CreatedAt)
		mockQueries.AssertExpectations(t)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		id := uuid.New()
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, id).Return(sqlc.FindUserByIDRow{}, pgx.ErrNoRows)

		view, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), id)

		assert.Nil(t, view)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("other failures are db failures", func(t *testing.T) {
		mockQueries := new(MockUserReadQueries)
		mockQueries.On("FindUserByID", mock.Anything, mock.Anything, u.ID).Return(sqlc.FindUserByIDRow{}, assert.AnError)

		_, err := NewUserReadStore(mockQueries, nil).FindByID(context.Background(), u.ID)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
