package list_rooms

import "github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"

// RoomResponse комната с её временными слотами
type RoomResponse struct {
	RoomName  string   `json:"roomName"`
	TimeSlots []string `json:"timeSlots"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(rooms []catalog.RoomSlots) []RoomResponse {
	result := make([]RoomResponse, len(rooms))
	for i, room := range rooms {
		slots := room.TimeSlots
		if slots == nil {
			slots = []string{}
		}
		result[i] = RoomResponse{
			RoomName:  room.Room,
			TimeSlots: slots,
		}
	}
	return result
}
