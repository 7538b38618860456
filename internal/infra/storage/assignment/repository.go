package assignment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/psqlbuilder"
)

const tableUserAssignments = "user_assignments"

// Repository справочник рабочих мест пользователей в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetUserAssignment получает рабочее место пользователя по логину
func (r *Repository) GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error) {
	query, args, err := selectAssignmentQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserAssignment - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.UserAssignment
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&a.UserID, &a.Location, &a.Floor)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrUserNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserAssignment - scan assignment: %v", ErrScanRow, err)
	}

	return &a, nil
}

// Upsert создает или обновляет рабочее место пользователя
func (r *Repository) Upsert(ctx context.Context, a domain.UserAssignment) error {
	query, args, err := upsertAssignmentQuery(a)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

func selectAssignmentQuery(userID string) (string, []interface{}, error) {
	return psqlbuilder.Select("user_id", "location", "floor").
		From(tableUserAssignments).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
}

func upsertAssignmentQuery(a domain.UserAssignment) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableUserAssignments).
		Columns("user_id", "location", "floor").
		Values(a.UserID, a.Location, a.Floor).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET location = EXCLUDED.location, floor = EXCLUDED.floor, updated_at = NOW()").
		ToSql()
}
