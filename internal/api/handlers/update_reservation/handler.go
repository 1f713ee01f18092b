package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/asidorov/MRS-ReservationService/internal/api/handlers"
	updateReservation "github.com/asidorov/MRS-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgNotFound             = "бронирование не найдено"
	msgCancelled            = "бронирование отменено и не может быть изменено"
	msgAlreadyStarted       = "бронирование уже началось и не может быть изменено"
	msgUserNotFound         = "пользователь не найден"
	msgRoomNotFound         = "переговорная не найдена"
	msgRoomInactive         = "переговорная недоступна для бронирования"
	msgInvalidTimeRange     = "время окончания должно быть позже времени начала"
	msgStartNotInFuture     = "бронирование должно начинаться в будущем"
	msgTimeConflict         = "переговорная уже забронирована на это время"
	msgInvalidInput         = "некорректные данные бронирования"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем reservationId из URL
	vars := mux.Vars(r)
	reservationIDStr := vars["reservationId"]

	reservationID, err := strconv.ParseInt(reservationIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrReservationCancelled):
			h.logger.Warn("PUT /reservations/{id} - Reservation cancelled: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgCancelled)

		case errors.Is(err, updateReservation.ErrAlreadyStarted):
			h.logger.Warn("PUT /reservations/{id} - Reservation already started: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgAlreadyStarted)

		case errors.Is(err, updateReservation.ErrTimeConflict):
			h.logger.Warn("PUT /reservations/{id} - Time conflict: reservation_id=%d, room_id=%d", reservationID, req.RoomID)
			handlers.RespondConflict(w, msgTimeConflict)

		case errors.Is(err, updateReservation.ErrUserNotFound):
			h.logger.Warn("PUT /reservations/{id} - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, updateReservation.ErrRoomNotFound):
			h.logger.Warn("PUT /reservations/{id} - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateReservation.ErrRoomInactive):
			h.logger.Warn("PUT /reservations/{id} - Room inactive: room_id=%d", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomInactive)

		case errors.Is(err, updateReservation.ErrInvalidTimeRange):
			h.logger.Warn("PUT /reservations/{id} - Invalid time range: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, updateReservation.ErrStartNotInFuture):
			h.logger.Warn("PUT /reservations/{id} - Start not in future: reservation_id=%d", reservationID)
			handlers.RespondBadRequest(w, msgStartNotInFuture)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("PUT /reservations/{id} - Reservation updated successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, response)
}
