package userservice

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// Assignment модель рабочего места из UserService
type Assignment struct {
	UserID   string `json:"user_id"`
	Location string `json:"location"`
	Floor    string `json:"floor"`
}

func (a *Assignment) toDomain(requestedID string) *domain.UserAssignment {
	userID := a.UserID
	if userID == "" {
		userID = requestedID
	}
	return &domain.UserAssignment{
		UserID:   userID,
		Location: a.Location,
		Floor:    a.Floor,
	}
}
