package assignment

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/cache"
)

const keyPrefix = "assignment:"

// Directory read-through кэш поверх справочника пользователей.
// Ошибки кэша не ломают запрос: логируются, и запрос уходит в источник.
// Отсутствие пользователя не кэшируется.
type Directory struct {
	inner  UserDirectory
	cache  Cache
	ttl    time.Duration
	logger Logger
}

// NewDirectory создает кэширующую обертку
func NewDirectory(inner UserDirectory, c Cache, ttl time.Duration, logger Logger) *Directory {
	return &Directory{
		inner:  inner,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// GetUserAssignment получает рабочее место из кэша или из источника
func (d *Directory) GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error) {
	key := cacheKey(userID)

	if a, ok := d.fromCache(ctx, key); ok {
		return a, nil
	}

	a, err := d.inner.GetUserAssignment(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(a); err == nil {
		if err := d.cache.Set(ctx, key, data, d.ttl); err != nil {
			d.logger.Warn("AssignmentCache: set %s failed: %v", key, err)
		}
	}

	return a, nil
}

func (d *Directory) fromCache(ctx context.Context, key string) (*domain.UserAssignment, bool) {
	data, err := d.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			d.logger.Warn("AssignmentCache: get %s failed: %v", key, err)
		}
		return nil, false
	}

	var a domain.UserAssignment
	if err := json.Unmarshal(data, &a); err != nil {
		d.logger.Warn("AssignmentCache: corrupted entry %s: %v", key, err)
		return nil, false
	}
	return &a, true
}

func cacheKey(userID string) string {
	return keyPrefix + userID
}
