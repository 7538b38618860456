package get_user_location

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type UserDirectory interface {
	GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
