package catalog

import (
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Validator отвечает на запросы к каталогу и проверяет заявки на бронирование.
// Не имеет состояния кроме неизменяемого каталога, поэтому безопасен для
// конкурентного использования.
type Validator struct {
	catalog *domain.Catalog
}

// NewValidator создает валидатор поверх загруженного каталога
func NewValidator(catalog *domain.Catalog) *Validator {
	return &Validator{catalog: catalog}
}

// ListLocations возвращает все локации в порядке каталога
func (v *Validator) ListLocations() []string {
	return v.catalog.Locations()
}

// ListFloors возвращает этажи локации
func (v *Validator) ListFloors(location string) ([]string, error) {
	floors, ok := v.catalog.Floors(location)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	return floors, nil
}

// ListRooms возвращает комнаты этажа.
// Этаж проверяется по списку этажей локации, поэтому этаж без комнат
// дает пустой список, а не ошибку.
func (v *Validator) ListRooms(location, floor string) ([]string, error) {
	if _, err := v.ListFloors(location); err != nil {
		return nil, err
	}
	if !v.catalog.HasFloor(location, floor) {
		return nil, fmt.Errorf("%w: %q in location %q", ErrUnknownFloor, floor, location)
	}

	rooms, ok := v.catalog.Rooms(location, floor)
	if !ok {
		return []string{}, nil
	}
	return rooms, nil
}

// ListTimeSlots возвращает слоты комнаты по одному только имени комнаты.
// Комната без слотов дает пустой список.
func (v *Validator) ListTimeSlots(room string) ([]string, error) {
	slots, ok := v.catalog.TimeSlots(room)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoom, room)
	}
	return slots, nil
}

// ListRoomsWithSlots возвращает комнаты этажа вместе с их слотами
func (v *Validator) ListRoomsWithSlots(location, floor string) ([]RoomSlots, error) {
	rooms, err := v.ListRooms(location, floor)
	if err != nil {
		return nil, err
	}

	result := make([]RoomSlots, 0, len(rooms))
	for _, room := range rooms {
		slots, err := v.ListTimeSlots(room)
		if err != nil {
			return nil, err
		}
		result = append(result, RoomSlots{Room: room, TimeSlots: slots})
	}

	return result, nil
}

// ValidateBooking проверяет заявку по цепочке location → floor → room → slot.
// Незаполненные поля дают ErrMissingFields, любые другие несоответствия
// каталогу сводятся к ErrInvalidDetails.
func (v *Validator) ValidateBooking(intent domain.BookingIntent) (*domain.ValidatedBooking, error) {
	if !intent.IsComplete() {
		return nil, ErrMissingFields
	}

	switch {
	case !v.catalog.HasFloor(intent.Location, intent.Floor):
		// Неизвестная локация тоже сюда: у неё нет этажей
		return nil, ErrInvalidDetails
	case !v.catalog.HasRoom(intent.Location, intent.Floor, intent.Room):
		return nil, ErrInvalidDetails
	case !v.catalog.HasTimeSlot(intent.Room, intent.TimeSlot):
		return nil, ErrInvalidDetails
	}

	return &domain.ValidatedBooking{
		UserID:   intent.UserID,
		Location: intent.Location,
		Floor:    intent.Floor,
		Room:     intent.Room,
		TimeSlot: intent.TimeSlot,
	}, nil
}

// CheckAssignment сверяет локацию и этаж заявки с рабочим местом пользователя
func (v *Validator) CheckAssignment(intent domain.BookingIntent, assignment *domain.UserAssignment) error {
	if assignment == nil || !assignment.Matches(intent) {
		return ErrInvalidDetails
	}
	return nil
}
