package list_locations

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
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

// Handle GET /api/v1/locations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locations := h.service.ListLocations()

	h.logger.Info("GET /locations - Locations retrieved successfully: count=%d", len(locations))
	handlers.RespondJSON(w, http.StatusOK, locations)
}
