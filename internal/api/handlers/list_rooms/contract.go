package list_rooms

import "github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"

type CatalogService interface {
	ListRoomsWithSlots(location, floor string) ([]catalog.RoomSlots, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
