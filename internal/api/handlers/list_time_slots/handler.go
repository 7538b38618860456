package list_time_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
)

const (
	msgMissingRoom = "Missing room parameter"
	msgInvalidRoom = "Invalid room parameter"
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

// Handle GET /api/v1/timeslots?room=
// Комната ищется только по имени: имена комнат уникальны в каталоге
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	if room == "" {
		h.logger.Warn("GET /timeslots - Missing room")
		handlers.RespondBadRequest(w, msgMissingRoom)
		return
	}

	slots, err := h.service.ListTimeSlots(room)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownRoom):
			h.logger.Warn("GET /timeslots - Unknown room: room=%q", room)
			handlers.RespondBadRequest(w, msgInvalidRoom)

		default:
			h.logger.Error("GET /timeslots - Failed to list slots: room=%q, error=%v", room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeslots - Slots retrieved successfully: room=%q, count=%d", room, len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
