package catalog

import "errors"

var (
	// ErrUnknownLocation возвращается, когда локации нет в каталоге
	ErrUnknownLocation = errors.New("catalog: unknown location")

	// ErrUnknownFloor возвращается, когда этаж не входит в список этажей локации
	ErrUnknownFloor = errors.New("catalog: unknown floor")

	// ErrUnknownRoom возвращается, когда комнаты нет ни на одном этаже каталога
	ErrUnknownRoom = errors.New("catalog: unknown room")

	// ErrMissingFields возвращается, когда в заявке не заполнено хотя бы одно обязательное поле
	ErrMissingFields = errors.New("catalog: missing booking details")

	// ErrInvalidDetails возвращается для любой несогласованности заявки с каталогом.
	// Какое именно поле неверно, намеренно не уточняется.
	ErrInvalidDetails = errors.New("catalog: invalid booking details")
)
