package get_user_location

import "github.com/m04kA/SMC-MeetingRoomService/internal/domain"

// UserLocationResponse HTTP response model
type UserLocationResponse struct {
	Location string `json:"location"`
	Floor    string `json:"floor"`
}

// FromDomain конвертирует рабочее место в HTTP response
func FromDomain(a *domain.UserAssignment) *UserLocationResponse {
	return &UserLocationResponse{
		Location: a.Location,
		Floor:    a.Floor,
	}
}
