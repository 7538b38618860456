package list_floors

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
)

const msgInvalidLocation = "Invalid or missing location parameter"

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

// Handle GET /api/v1/floors?location=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	location := r.URL.Query().Get("location")

	floors, err := h.service.ListFloors(location)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownLocation):
			h.logger.Warn("GET /floors - Unknown location: location=%q", location)
			handlers.RespondBadRequest(w, msgInvalidLocation)

		default:
			h.logger.Error("GET /floors - Failed to list floors: location=%q, error=%v", location, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /floors - Floors retrieved successfully: location=%q, count=%d", location, len(floors))
	handlers.RespondJSON(w, http.StatusOK, floors)
}
