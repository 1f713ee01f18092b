package create_reservation

import (
	"errors"
	"net/http"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	createReservation "github.com/asidorov/MRS-ReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgUserNotFound       = "пользователь не найден"
	msgRoomNotFound       = "переговорная не найдена"
	msgRoomInactive       = "переговорная недоступна для бронирования"
	msgInvalidTimeRange   = "время окончания должно быть позже времени начала"
	msgStartNotInFuture   = "бронирование должно начинаться в будущем"
	msgTimeConflict       = "переговорная уже забронирована на это время"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrTimeConflict):
			h.logger.Warn("POST /reservations - Time conflict: user_id=%d, room_id=%d", req.UserID, req.RoomID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, createReservation.ErrUserNotFound):
			h.logger.Warn("POST /reservations - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /reservations - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomInactive):
			h.logger.Warn("POST /reservations - Room inactive: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomInactive)

		case errors.Is(err, createReservation.ErrInvalidTimeRange):
			h.logger.Warn("POST /reservations - Invalid time range: user_id=%d, room_id=%d", req.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createReservation.ErrStartNotInFuture):
			h.logger.Warn("POST /reservations - Start not in future: user_id=%d, room_id=%d", req.UserID, req.RoomID)
			handlers.RespondBadRequest(w, msgStartNotInFuture)

		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, room_id=%d, error=%v",
				req.UserID, req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, user_id=%d, room_id=%d",
		result.ID, req.UserID, req.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
