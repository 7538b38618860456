package domain

import "errors"

var (
	// ErrInvalidCatalog возвращается, когда исходные таблицы каталога нарушают его инварианты
	ErrInvalidCatalog = errors.New("domain: invalid catalog")

	// ErrUserNotFound возвращается любым источником справочника пользователей,
	// если пользователь не найден
	ErrUserNotFound = errors.New("domain: user not found")
)
