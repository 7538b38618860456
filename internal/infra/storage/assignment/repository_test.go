package assignment

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

func TestSelectAssignmentQuery(t *testing.T) {
	query, args, err := selectAssignmentQuery("ToanLM1")
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, location, floor FROM user_assignments WHERE user_id = $1", query)
	assert.Equal(t, []interface{}{"ToanLM1"}, args)
}

func TestUpsertAssignmentQuery(t *testing.T) {
	query, args, err := upsertAssignmentQuery(domain.UserAssignment{UserID: "dev789", Location: "Fville 3", Floor: "C3"})
	require.NoError(t, err)

	assert.Equal(t,
		"INSERT INTO user_assignments (user_id,location,floor) VALUES ($1,$2,$3) "+
			"ON CONFLICT (user_id) DO UPDATE SET location = EXCLUDED.location, floor = EXCLUDED.floor, updated_at = NOW()",
		query,
	)
	assert.Equal(t, []interface{}{"dev789", "Fville 3", "C3"}, args)
}

const (
	selectAssignmentSQL = "SELECT user_id, location, floor FROM user_assignments WHERE user_id = $1"
	upsertAssignmentSQL = "INSERT INTO user_assignments (user_id,location,floor) VALUES ($1,$2,$3)"
)

func newMockRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetUserAssignment(t *testing.T) {
	columns := []string{"user_id", "location", "floor"}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		want    *domain.UserAssignment
		wantErr error
	}{
		{
			name: "user found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAssignmentSQL)).
					WithArgs("ToanLM1").
					WillReturnRows(sqlmock.NewRows(columns).AddRow("ToanLM1", "FPT Tower", "12"))
			},
			want: &domain.UserAssignment{UserID: "ToanLM1", Location: "FPT Tower", Floor: "12"},
		},
		{
			name: "user not found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAssignmentSQL)).
					WithArgs("ToanLM1").
					WillReturnRows(sqlmock.NewRows(columns))
			},
			wantErr: domain.ErrUserNotFound,
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(selectAssignmentSQL)).
					WithArgs("ToanLM1").
					WillReturnError(errors.New("connection reset by peer"))
			},
			wantErr: ErrScanRow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			got, err := repo.GetUserAssignment(context.Background(), "ToanLM1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetUserAssignment_DriverErrorIsNotUserNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectAssignmentSQL)).
		WithArgs("admin456").
		WillReturnError(errors.New("connection reset by peer"))

	_, err := repo.GetUserAssignment(context.Background(), "admin456")

	assert.NotErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRepository_Upsert(t *testing.T) {
	a := domain.UserAssignment{UserID: "dev789", Location: "Fville 3", Floor: "C3"}

	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "row written",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(upsertAssignmentSQL)).
					WithArgs("dev789", "Fville 3", "C3").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "driver error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(regexp.QuoteMeta(upsertAssignmentSQL)).
					WithArgs("dev789", "Fville 3", "C3").
					WillReturnError(errors.New("relation \"user_assignments\" does not exist"))
			},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMockRepository(t)
			tt.setup(mock)

			err := repo.Upsert(context.Background(), a)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
