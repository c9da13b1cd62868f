//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentWriteQueries struct {
	mock.Mock
}

func (m *MockAppointmentWriteQueries) CreateAppointment(ctx context.Context, db query.DBTX, arg query.CreateAppointmentParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func (m *MockAppointmentWriteQueries) UpdateAppointment(ctx context.Context, db query.DBTX, arg query.UpdateAppointmentParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentWriteQueries) DeleteAppointment(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (int64, error) {
	args := m.Called(ctx, db, arg)
	return args.Get(0).(int64), args.Error(1)
}

// query.DBTX stand-in; repositories only hand it through to the queries.
type mockDBTX struct{}

func (mockDBTX) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (mockDBTX) Query(context.Context, string, ...interface{}) (pgx.Rows, error) {
	return nil, errors.New("not implemented")
}

func (mockDBTX) QueryRow(context.Context, string, ...interface{}) pgx.Row {
	return nil
}

func TestAppointmentRepository_Create(t *testing.T) {
	tests := []struct {
		name       string
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success"},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
		{
			name:       "pet missing",
			mockError:  &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expectKind: infra.KindForeignKeyViolated,
		},
		{
			name:       "duration outside the column check",
			mockError:  &pgconn.PgError{Code: "23514", Message: "violates check constraint"},
			expectKind: infra.KindCheckViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt, err := builder.NewAppointmentBuilder().BuildDomain()
			require.NoError(t, err)

			db := mockDBTX{}
			mockQueries := new(MockAppointmentWriteQueries)
			mockQueries.On("CreateAppointment", mock.Anything, db, mock.MatchedBy(func(p query.CreateAppointmentParams) bool {
				return p.ID == apt.ID() &&
					p.OwnerID == apt.OwnerID() &&
					p.StartAt.Time.Equal(apt.Start()) &&
					p.DurationMinutes == int32(apt.Duration().Minutes()) &&
					p.Status == "scheduled"
			})).Return(tt.mockError)

			repo := NewAppointmentRepository(mockQueries, db)
			err = repo.Create(context.Background(), db, apt)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] but got (%v)", tt.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
			mockQueries.AssertExpectations(t)
		})
	}
}

func TestAppointmentRepository_Update(t *testing.T) {
	tests := []struct {
		name       string
		affected   int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "row of another owner is not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apt := builder.NewAppointmentBuilder().BuildReconstructed()

			db := mockDBTX{}
			mockQueries := new(MockAppointmentWriteQueries)
			mockQueries.On("UpdateAppointment", mock.Anything, db, mock.MatchedBy(func(p query.UpdateAppointmentParams) bool {
				return p.ID == apt.ID() && p.OwnerID == apt.OwnerID()
			})).Return(tt.affected, tt.mockError)

			err := NewAppointmentRepository(mockQueries, db).Update(context.Background(), db, apt)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] but got (%v)", tt.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAppointmentRepository_Delete(t *testing.T) {
	ownerID, id := uuid.New(), uuid.New()

	tests := []struct {
		name       string
		affected   int64
		mockError  error
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", affected: 1},
		{name: "not found", affected: 0, expectKind: infra.KindNotFound},
		{name: "database error", mockError: assert.AnError, expectKind: infra.KindDBFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := mockDBTX{}
			mockQueries := new(MockAppointmentWriteQueries)
			mockQueries.On("DeleteAppointment", mock.Anything, db, query.OwnedIDParams{ID: id, OwnerID: ownerID}).
				Return(tt.affected, tt.mockError)

			err := NewAppointmentRepository(mockQueries, db).Delete(context.Background(), db, ownerID, id)

			if tt.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tt.expectKind), "expected kind [%v] but got (%v)", tt.expectKind, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
