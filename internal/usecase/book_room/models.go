package book_room

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// Request модель запроса на бронирование комнаты
type Request struct {
	UserID   string // Логин пользователя (обязателен при включенной привязке)
	Location string
	Floor    string
	Room     string
	TimeSlot string
}

// Response подтверждение бронирования
type Response struct {
	Booking domain.ValidatedBooking
	Message string
}

func (r *Request) toIntent() domain.BookingIntent {
	return domain.BookingIntent{
		UserID:   r.UserID,
		Location: r.Location,
		Floor:    r.Floor,
		Room:     r.Room,
		TimeSlot: r.TimeSlot,
	}
}
