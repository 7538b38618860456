package assignment

import (
	"errors"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = domain.ErrUserNotFound

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("assignment.repository: failed to build query")

	// ErrScanRow возвращается при ошибке выполнения запроса или сканирования результата
	ErrScanRow = errors.New("assignment.repository: failed to scan row")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("assignment.repository: failed to execute query")

	// ErrInvalidUsers возвращается при некорректном файле пользователей
	ErrInvalidUsers = errors.New("assignment.static: invalid users file")
)
