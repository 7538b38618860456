package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
)

const (
	msgInvalidLocation = "Invalid or missing location parameter"
	msgInvalidFloor    = "Invalid or missing floor parameter for the specified location"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms?location=&floor=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	location := query.Get("location")
	floor := query.Get("floor")

	rooms, err := h.service.ListRoomsWithSlots(location, floor)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownLocation):
			h.logger.Warn("GET /rooms - Unknown location: location=%q", location)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		case errors.Is(err, catalog.ErrUnknownFloor):
			h.logger.Warn("GET /rooms - Unknown floor: location=%q, floor=%q", location, floor)
			handlers.RespondBadRequest(w, msgInvalidFloor)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: location=%q, floor=%q, error=%v", location, floor, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: location=%q, floor=%q, count=%d", location, floor, len(rooms))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(rooms))
}
