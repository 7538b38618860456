package get_user_location

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

const msgUserNotFound = "User not found"

type Handler struct {
	directory UserDirectory
	logger    Logger
}

func NewHandler(directory UserDirectory, logger Logger) *Handler {
	return &Handler{
		directory: directory,
		logger:    logger,
	}
}

// Handle GET /api/v1/users/{userId}/location
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	assignment, err := h.directory.GetUserAssignment(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.logger.Warn("GET /users/{id}/location - User not found: user_id=%q", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/{id}/location - Failed to get assignment: user_id=%q, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/location - Assignment retrieved successfully: user_id=%q", userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(assignment))
}
