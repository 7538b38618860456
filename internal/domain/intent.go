package domain

// BookingIntent represents an unvalidated booking request
type BookingIntent struct {
	UserID   string // Пусто, если привязка к пользователю не используется
	Location string
	Floor    string
	Room     string
	TimeSlot string
}

// IsComplete returns true if location, floor, room and time slot are all set
func (i BookingIntent) IsComplete() bool {
	return i.Location != "" && i.Floor != "" && i.Room != "" && i.TimeSlot != ""
}

// HasUser returns true if the intent carries a user identifier
func (i BookingIntent) HasUser() bool {
	return i.UserID != ""
}

// ValidatedBooking is a BookingIntent confirmed against the catalog.
// Ничего не сохраняется и слот не помечается занятым.
type ValidatedBooking struct {
	UserID   string
	Location string
	Floor    string
	Room     string
	TimeSlot string
}

// UserAssignment рабочее место пользователя из справочника пользователей
type UserAssignment struct {
	UserID   string `json:"userId"`
	Location string `json:"location"`
	Floor    string `json:"floor"`
}

// Matches returns true if the intent targets the user's own location and floor
func (a *UserAssignment) Matches(intent BookingIntent) bool {
	return a.Location == intent.Location && a.Floor == intent.Floor
}
