package book_room

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// CatalogValidator интерфейс валидатора каталога
type CatalogValidator interface {
	ValidateBooking(intent domain.BookingIntent) (*domain.ValidatedBooking, error)
	CheckAssignment(intent domain.BookingIntent, assignment *domain.UserAssignment) error
}

// UserDirectory интерфейс справочника пользователей (static, postgres или http)
type UserDirectory interface {
	GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error)
}

// OutcomeRecorder интерфейс для учета результатов бронирования в метриках
type OutcomeRecorder interface {
	RecordBookingOutcome(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type noopRecorder struct{}

func (noopRecorder) RecordBookingOutcome(string) {}
