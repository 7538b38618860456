package book_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// validateRequest проверяет, что заполнены все обязательные поля
func validateRequest(intent domain.BookingIntent, requireUser bool) error {
	var missing []string

	if requireUser && !intent.HasUser() {
		missing = append(missing, "username")
	}
	if intent.Location == "" {
		missing = append(missing, "location")
	}
	if intent.Floor == "" {
		missing = append(missing, "floor")
	}
	if intent.Room == "" {
		missing = append(missing, "room")
	}
	if intent.TimeSlot == "" {
		missing = append(missing, "timeSlot")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}

// confirmationMessage формирует текст подтверждения бронирования
func confirmationMessage(b *domain.ValidatedBooking) string {
	msg := fmt.Sprintf("Successfully booked %s on floor %s at %s for %s", b.Room, b.Floor, b.Location, b.TimeSlot)
	if b.UserID != "" {
		msg += " for user " + b.UserID
	}
	return msg
}
