package book_room

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/catalog"
)

// Options настройки use case
type Options struct {
	// RequireUserBinding включает обязательный логин пользователя и сверку
	// заявки с его рабочим местом из справочника
	RequireUserBinding bool
}

// UseCase use case бронирования комнаты.
// Бронирование нигде не сохраняется: после успешной проверки возвращается
// только подтверждение.
type UseCase struct {
	validator CatalogValidator
	directory UserDirectory
	recorder  OutcomeRecorder
	opts      Options
	logger    Logger
}

// NewUseCase создает новый экземпляр use case.
// directory может быть nil, если привязка к пользователю выключена.
// recorder может быть nil, если метрики выключены.
func NewUseCase(
	validator CatalogValidator,
	directory UserDirectory,
	recorder OutcomeRecorder,
	opts Options,
	logger Logger,
) *UseCase {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	return &UseCase{
		validator: validator,
		directory: directory,
		recorder:  recorder,
		opts:      opts,
		logger:    logger,
	}
}

// Execute выполняет проверку заявки и возвращает подтверждение
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, outcome, err := uc.execute(ctx, req)
	uc.recorder.RecordBookingOutcome(outcome)
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, string, error) {
	intent := req.toIntent()

	uc.logger.Info("BookRoom: user=%q, location=%q, floor=%q, room=%q, slot=%q",
		intent.UserID, intent.Location, intent.Floor, intent.Room, intent.TimeSlot)

	// 1. Проверяем обязательные поля (раньше любых проверок по каталогу)
	if err := validateRequest(intent, uc.opts.RequireUserBinding); err != nil {
		uc.logger.Warn("BookRoom: validation failed: %v", err)
		return nil, OutcomeMissingFields, err
	}

	// 2. Получаем рабочее место пользователя
	var assignment *domain.UserAssignment
	if uc.opts.RequireUserBinding {
		if uc.directory == nil {
			uc.logger.Error("BookRoom: user binding is enabled but no user directory is configured")
			return nil, OutcomeInternal, fmt.Errorf("%w: user directory is not configured", ErrInternal)
		}

		var err error
		assignment, err = uc.directory.GetUserAssignment(ctx, intent.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				uc.logger.Warn("BookRoom: user %q not found", intent.UserID)
				return nil, OutcomeUserNotFound, ErrUserNotFound
			}
			uc.logger.Error("BookRoom: failed to get assignment for user %q: %v", intent.UserID, err)
			return nil, OutcomeInternal, fmt.Errorf("%w: failed to get user assignment: %v", ErrInternal, err)
		}
	}

	// 3. Проверяем заявку по каталогу
	booking, err := uc.validator.ValidateBooking(intent)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrMissingFields):
			return nil, OutcomeMissingFields, ErrMissingFields
		case errors.Is(err, catalog.ErrInvalidDetails):
			uc.logger.Warn("BookRoom: booking details do not match the catalog")
			return nil, OutcomeInvalidDetails, ErrInvalidDetails
		default:
			uc.logger.Error("BookRoom: failed to validate booking: %v", err)
			return nil, OutcomeInternal, fmt.Errorf("%w: %v", ErrInternal, err)
		}
	}

	// 4. Сверяем с рабочим местом пользователя
	if assignment != nil {
		if err := uc.validator.CheckAssignment(intent, assignment); err != nil {
			uc.logger.Warn("BookRoom: user %q is assigned to %s/%s, requested %s/%s",
				intent.UserID, assignment.Location, assignment.Floor, intent.Location, intent.Floor)
			return nil, OutcomeInvalidDetails, ErrInvalidDetails
		}
	}

	uc.logger.Info("BookRoom: successful booking: user=%q, location=%q, floor=%q, room=%q, slot=%q",
		booking.UserID, booking.Location, booking.Floor, booking.Room, booking.TimeSlot)

	return &Response{
		Booking: *booking,
		Message: confirmationMessage(booking),
	}, OutcomeConfirmed, nil
}
