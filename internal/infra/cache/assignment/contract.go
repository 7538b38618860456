package assignment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// UserDirectory источник рабочих мест, который оборачивает кэш
type UserDirectory interface {
	GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error)
}

// Cache интерфейс key-value кэша (pkg/cache.RedisClient)
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
