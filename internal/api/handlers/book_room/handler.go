package book_room

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	bookRoom "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/book_room"
)

const (
	msgInvalidRequestBody = "Invalid request body"
	msgMissingDetails     = "Missing booking details"
	msgUserNotFound       = "User not found"
	msgInvalidDetails     = "Invalid booking details provided."
)

type Handler struct {
	useCase BookRoomUseCase
	logger  Logger
}

func NewHandler(useCase BookRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Пустое тело обрабатывается как заявка без полей
	var req BookRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, bookRoom.ErrMissingFields):
			h.logger.Warn("POST /book - Missing fields: %v", err)
			handlers.RespondBadRequest(w, msgMissingDetails)

		case errors.Is(err, bookRoom.ErrUserNotFound):
			h.logger.Warn("POST /book - User not found: username=%q", req.Username)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookRoom.ErrInvalidDetails):
			h.logger.Warn("POST /book - Invalid details: username=%q, room=%q", req.Username, req.Room)
			handlers.RespondBadRequest(w, msgInvalidDetails)

		default:
			h.logger.Error("POST /book - Failed to book room: username=%q, room=%q, error=%v", req.Username, req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /book - Room booked successfully: username=%q, room=%q, slot=%q",
		req.Username, result.Booking.Room, result.Booking.TimeSlot)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
