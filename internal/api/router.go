package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	bookRoomHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/book_room"
	getUserLocationHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/get_user_location"
	listFloorsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_floors"
	listLocationsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_locations"
	listRoomsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_rooms"
	listTimeSlotsHandler "github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers/list_time_slots"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
	bookRoomUC "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/book_room"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/metrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UserDirectory справочник рабочих мест пользователей
type UserDirectory interface {
	GetUserAssignment(ctx context.Context, userID string) (*domain.UserAssignment, error)
}

// Dependencies зависимости HTTP слоя
type Dependencies struct {
	Catalog   *catalog.Validator
	BookRoom  *bookRoomUC.UseCase
	Directory UserDirectory // nil - маршрут /users/{userId}/location не регистрируется

	Metrics     *metrics.Metrics // nil - метрики выключены
	MetricsPath string

	RateLimiter *middleware.RateLimiter // nil - без ограничения частоты
	CORSOrigins []string

	Logger Logger
}

// NewRouter собирает маршруты и middleware сервиса
func NewRouter(deps Dependencies) http.Handler {
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if deps.Metrics != nil {
		r.Use(middleware.MetricsMiddleware(deps.Metrics))
		r.Handle(deps.MetricsPath, deps.Metrics.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// CATALOG
	// ============================================================

	api.HandleFunc("/locations", listLocationsHandler.NewHandler(deps.Catalog, deps.Logger).Handle).Methods(http.MethodGet)
	api.HandleFunc("/floors", listFloorsHandler.NewHandler(deps.Catalog, deps.Logger).Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms", listRoomsHandler.NewHandler(deps.Catalog, deps.Logger).Handle).Methods(http.MethodGet)
	api.HandleFunc("/timeslots", listTimeSlotsHandler.NewHandler(deps.Catalog, deps.Logger).Handle).Methods(http.MethodGet)

	// ============================================================
	// BOOKING
	// ============================================================

	api.HandleFunc("/book", bookRoomHandler.NewHandler(deps.BookRoom, deps.Logger).Handle).Methods(http.MethodPost)

	if deps.Directory != nil {
		api.HandleFunc("/users/{userId}/location",
			getUserLocationHandler.NewHandler(deps.Directory, deps.Logger).Handle).Methods(http.MethodGet)
	}

	var h http.Handler = r
	if deps.RateLimiter != nil {
		h = deps.RateLimiter.Middleware(h)
	}
	h = middleware.AccessLog(deps.Logger)(h)
	h = middleware.RequestID(h)

	origins := deps.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	}).Handler(h)
}
