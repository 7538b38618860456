package book_room

import bookRoom "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/book_room"

// BookRoomRequest HTTP request model
type BookRoomRequest struct {
	Username string `json:"username"`
	Location string `json:"location"`
	Floor    string `json:"floor"`
	Room     string `json:"room"`
	TimeSlot string `json:"timeSlot"`
}

// BookRoomResponse HTTP response model
type BookRoomResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookRoomRequest) ToUseCaseRequest() *bookRoom.Request {
	return &bookRoom.Request{
		UserID:   r.Username,
		Location: r.Location,
		Floor:    r.Floor,
		Room:     r.Room,
		TimeSlot: r.TimeSlot,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookRoom.Response) *BookRoomResponse {
	return &BookRoomResponse{
		Success: true,
		Message: resp.Message,
	}
}
