package book_room

import "errors"

var (
	// ErrMissingFields возвращается, когда не заполнены обязательные поля заявки
	ErrMissingFields = errors.New("book_room: missing booking details")

	// ErrInvalidDetails возвращается, когда заявка не согласуется с каталогом
	// или с рабочим местом пользователя
	ErrInvalidDetails = errors.New("book_room: invalid booking details")

	// ErrUserNotFound возвращается, когда пользователя нет в справочнике
	ErrUserNotFound = errors.New("book_room: user not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_room: internal error")
)

// Значения метки outcome для метрики бронирований
const (
	OutcomeConfirmed      = "confirmed"
	OutcomeMissingFields  = "missing_fields"
	OutcomeUserNotFound   = "user_not_found"
	OutcomeInvalidDetails = "invalid_details"
	OutcomeInternal       = "internal"
)
